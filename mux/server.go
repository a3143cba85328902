// Package mux serves a read-only JSON API over the latest pass snapshots
// and sensors using gorilla/mux.
package mux

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/alpenpass"
	"github.com/gorilla/mux"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *mux.Router

	// Addr to listen on, e.g. ":8080". Set before calling Open.
	Addr string

	SnapshotService alpenpass.SnapshotService
	SensorService   alpenpass.SensorService
	Logger          *slog.Logger
}

// NewServer returns a Server with its routes registered.
func NewServer(snapshots alpenpass.SnapshotService, sensors alpenpass.SensorService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router:          mux.NewRouter(),
		SnapshotService: snapshots,
		SensorService:   sensors,
		Logger:          logger,
	}
	s.server = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Error(w, r, alpenpass.Errorf(alpenpass.ENOTFOUND, "route not found"))
	})
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/passes", s.handlePasses).Methods(http.MethodGet)
	s.router.HandleFunc("/passes/{key}", s.handlePass).Methods(http.MethodGet)
	s.router.HandleFunc("/sensors", s.handleSensors).Methods(http.MethodGet)
	return s
}

// ServeHTTP lets the server be used as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()
	return nil
}

// URL returns the base URL of a running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePasses lists snapshots. ?open=true and ?restricted=true narrow the
// list with the pass predicates; pagination then applies to the narrowed list.
func (s *Server) handlePasses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, err := queryInt(q.Get("limit"), "limit")
	if err != nil {
		s.Error(w, r, err)
		return
	}
	offset, err := queryInt(q.Get("offset"), "offset")
	if err != nil {
		s.Error(w, r, err)
		return
	}

	open, restricted := q.Get("open") == "true", q.Get("restricted") == "true"
	filtered := open || restricted

	filter := alpenpass.SnapshotFilter{}
	if !filtered {
		filter.Limit, filter.Offset = limit, offset
	}
	snaps, err := s.SnapshotService.FindSnapshots(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if !filtered {
		s.JSON(w, r, http.StatusOK, snaps)
		return
	}

	result := make([]*alpenpass.Snapshot, 0, len(snaps))
	for _, snap := range snaps {
		if open && !snap.Pass.IsOpen() {
			continue
		}
		if restricted && !snap.Pass.HasRestrictions() {
			continue
		}
		result = append(result, snap)
	}
	s.JSON(w, r, http.StatusOK, paginate(result, limit, offset))
}

// paginate returns the page of snaps selected by limit and offset.
// A zero limit means no limit.
func paginate(snaps []*alpenpass.Snapshot, limit, offset int) []*alpenpass.Snapshot {
	if offset >= len(snaps) {
		return []*alpenpass.Snapshot{}
	}
	snaps = snaps[offset:]
	if limit > 0 && limit < len(snaps) {
		snaps = snaps[:limit]
	}
	return snaps
}

// queryInt parses an optional non-negative query parameter.
func queryInt(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, alpenpass.Errorf(alpenpass.EINVALID, "invalid %s %q", name, v)
	}
	return n, nil
}

func (s *Server) handlePass(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if _, err := alpenpass.LookupCatalog(key); err != nil {
		s.Error(w, r, err)
		return
	}

	snap, err := s.SnapshotService.FindSnapshotByKey(r.Context(), key)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.JSON(w, r, http.StatusOK, snap)
}

func (s *Server) handleSensors(w http.ResponseWriter, r *http.Request) {
	if s.SensorService == nil {
		s.Error(w, r, alpenpass.Errorf(alpenpass.EUNAVAILABLE, "sensors not available"))
		return
	}
	s.JSON(w, r, http.StatusOK, s.SensorService.Sensors())
}

// JSON writes v as a JSON response.
func (s *Server) JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("failed to encode response", "path", r.URL.Path, "err", err)
	}
}

// Error writes err as a JSON error with the status of its code.
// Internal errors are logged and their message hidden.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := alpenpass.ErrorCode(err), alpenpass.ErrorMessage(err)
	if code == alpenpass.EINTERNAL {
		s.Logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	s.JSON(w, r, ErrorStatusCode(code), map[string]string{"error": message})
}

var codes = map[string]int{
	alpenpass.ECONFLICT:    http.StatusConflict,
	alpenpass.EINVALID:     http.StatusBadRequest,
	alpenpass.ENOTFOUND:    http.StatusNotFound,
	alpenpass.EUNAVAILABLE: http.StatusServiceUnavailable,
	alpenpass.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode maps an application error code to an HTTP status.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}
