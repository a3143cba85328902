package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/alpenpass"
	"github.com/fwojciec/alpenpass/goquery"
	alpenhttp "github.com/fwojciec/alpenpass/http"
	"github.com/fwojciec/alpenpass/matchr"
	alpennats "github.com/fwojciec/alpenpass/nats"
	"github.com/fwojciec/alpenpass/poll"
	"github.com/fwojciec/alpenpass/scrape"
	alpenslog "github.com/fwojciec/alpenpass/slog"
	"github.com/fwojciec/alpenpass/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used by watch unless --db is given. Set before calling Run().
	DBPath string

	// Fetcher replaces the HTTP fetcher when set. Used for end-to-end testing.
	Fetcher alpenpass.Fetcher

	// SQLite database opened by watch.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("alpenpass"),
		kong.Description("Status of Swiss alpine passes from alpen-paesse.ch."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars(vars),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'alpenpass --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// The catalog is static and needs no network.
	if kongCtx.Command() == "catalog" {
		return kongCtx.Run(deps)
	}

	lang, err := alpenpass.ParseLanguage(cli.Language)
	if err != nil {
		return fmt.Errorf("invalid configuration: %s", alpenpass.ErrorMessage(err))
	}
	deps.Language = lang

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = alpenhttp.NewFetcher(
			alpenhttp.WithTimeout(cli.Timeout),
			alpenhttp.WithUserAgent(cli.UserAgent),
		)
	}
	fetcher = alpenslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	passParser, err := goquery.NewParser(alpenpass.BaseURL, goquery.WithLogger(deps.Logger))
	if err != nil {
		return err
	}
	passes, err := scrape.NewService(fetcher, passParser, string(lang), scrape.WithLogger(deps.Logger))
	if err != nil {
		return err
	}
	deps.Passes = alpenslog.NewLoggingPassService(passes, deps.Logger)

	if kongCtx.Command() == "watch" {
		if err := m.wireWatch(&cli.Watch, deps, stderr); err != nil {
			return err
		}
		defer m.Close()
		if deps.closeNATS != nil {
			defer deps.closeNATS()
		}
	}

	return kongCtx.Run(deps)
}

// wireWatch opens the snapshot store, the optional NATS connection and
// builds the coordinator for the watch command.
func (m *Main) wireWatch(cmd *WatchCmd, deps *Dependencies, stderr io.Writer) error {
	path := cmd.DB
	if path == "" {
		path = m.DBPath
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ALPENPASS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	deps.Snapshots = alpenslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), deps.Logger)

	if cmd.NATS != "" {
		nc, err := alpennats.Connect(cmd.NATS)
		if err != nil {
			m.Close()
			return err
		}
		deps.closeNATS = nc.Close
		deps.Publisher = alpennats.NewPublisher(nc, alpennats.WithSubject(cmd.Subject))
	}

	coordinator, err := poll.NewCoordinator(deps.Passes, cmd.Passes,
		poll.WithMatcher(matchr.NewMatcher(matchr.DefaultThreshold)),
		poll.WithInterval(cmd.Interval),
		poll.WithMinSpacing(cmd.MinSpacing),
		poll.WithLogger(deps.Logger),
		poll.WithOnUpdate(storeUpdate(deps)),
	)
	if err != nil {
		m.Close()
		if deps.closeNATS != nil {
			deps.closeNATS()
		}
		return fmt.Errorf("invalid configuration: %s", alpenpass.ErrorMessage(err))
	}
	deps.Coordinator = coordinator
	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("ALPENPASS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "alpenpass.db"
	}
	dir := filepath.Join(home, ".alpenpass")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "alpenpass.db")
}
