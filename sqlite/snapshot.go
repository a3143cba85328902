package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/alpenpass"
	"github.com/google/uuid"
)

var _ alpenpass.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements alpenpass.SnapshotService using SQLite.
// One row per catalog key holds the latest snapshot.
type SnapshotService struct {
	db  *DB
	now func() time.Time
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db, now: time.Now}
}

// hashPass computes the xxHash of the pass's JSON form as a hex string.
func hashPass(p *alpenpass.Pass) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], xxhash.Sum64(b))
	return hex.EncodeToString(sum[:]), nil
}

// SaveSnapshot upserts the snapshot of s.Key. The row ID of an existing
// key is kept.
func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *alpenpass.Snapshot) (bool, error) {
	if err := snap.Validate(); err != nil {
		return false, err
	}

	hash, err := hashPass(snap.Pass)
	if err != nil {
		return false, fmt.Errorf("failed to hash pass: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var id, oldHash string
	err = tx.QueryRowContext(ctx, `SELECT id, content_hash FROM snapshots WHERE key = ?`, snap.Key).Scan(&id, &oldHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		id = uuid.New().String()
	case err != nil:
		return false, err
	}

	fetchedAt := s.now().UTC().Truncate(time.Second)
	p := snap.Pass

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (key, id, name, route, status, temperature, last_update, url, elevation, notes, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			name = excluded.name,
			route = excluded.route,
			status = excluded.status,
			temperature = excluded.temperature,
			last_update = excluded.last_update,
			url = excluded.url,
			elevation = excluded.elevation,
			notes = excluded.notes,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, snap.Key, id, p.Name, p.Route, p.Status, nullFloat(p.Temperature), p.LastUpdate, p.URL,
		nullInt(p.Elevation), p.Notes, hash, fetchedAt.Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}

	snap.ID = id
	snap.ContentHash = hash
	snap.FetchedAt = fetchedAt
	return oldHash != hash, nil
}

const snapshotColumns = "key, id, name, route, status, temperature, last_update, url, elevation, notes, content_hash, fetched_at"

// FindSnapshotByKey retrieves the snapshot of a catalog key.
func (s *SnapshotService) FindSnapshotByKey(ctx context.Context, key string) (*alpenpass.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+snapshotColumns+` FROM snapshots WHERE key = ?`, key)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, alpenpass.Errorf(alpenpass.ENOTFOUND, "snapshot %q not found", key)
	}
	return snap, err
}

// FindSnapshots retrieves snapshots matching the filter, ordered by key.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter alpenpass.SnapshotFilter) ([]*alpenpass.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT ` + snapshotColumns + ` FROM snapshots WHERE 1=1`)
	if len(filter.Keys) > 0 {
		query.WriteString(" AND key IN (?" + strings.Repeat(", ?", len(filter.Keys)-1) + ")")
		for _, k := range filter.Keys {
			args = append(args, k)
		}
	}
	query.WriteString(" ORDER BY key ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snaps := []*alpenpass.Snapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// DeleteSnapshot removes the snapshot of a catalog key.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return alpenpass.Errorf(alpenpass.ENOTFOUND, "snapshot %q not found", key)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*alpenpass.Snapshot, error) {
	var (
		snap        alpenpass.Snapshot
		p           alpenpass.Pass
		temperature sql.NullFloat64
		elevation   sql.NullInt64
		fetchedAt   string
	)
	err := row.Scan(&snap.Key, &snap.ID, &p.Name, &p.Route, &p.Status, &temperature, &p.LastUpdate,
		&p.URL, &elevation, &p.Notes, &snap.ContentHash, &fetchedAt)
	if err != nil {
		return nil, err
	}

	if temperature.Valid {
		p.Temperature = &temperature.Float64
	}
	if elevation.Valid {
		e := int(elevation.Int64)
		p.Elevation = &e
	}
	snap.Pass = &p

	snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
