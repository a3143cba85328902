package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/alpenpass"
	alpenhttp "github.com/fwojciec/alpenpass/http"
	alpennats "github.com/fwojciec/alpenpass/nats"
	"github.com/fwojciec/alpenpass/poll"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Language    alpenpass.Language
	Passes      alpenpass.PassService
	Snapshots   alpenpass.SnapshotService
	Publisher   alpenpass.Publisher
	Coordinator *poll.Coordinator

	closeNATS func()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Language  string        `short:"l" default:"de" env:"ALPENPASS_LANGUAGE" help:"Page language (en or de)"`
	Timeout   time.Duration `default:"10s" help:"HTTP request timeout"`
	UserAgent string        `name:"user-agent" help:"HTTP user agent" default:"${user_agent}"`
	Verbose   bool          `short:"v" help:"Log every fetch and lookup"`

	List    ListCmd    `cmd:"" help:"List all passes"`
	Show    ShowCmd    `cmd:"" help:"Show one pass"`
	Catalog CatalogCmd `cmd:"" help:"List the known passes and their keys"`
	Watch   WatchCmd   `cmd:"" help:"Poll selected passes, store and publish changes"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Open       bool `xor:"filter" help:"Only passes reported open"`
	Restricted bool `xor:"filter" help:"Only passes with closures or restrictions"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Pass name or part of it"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct{}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Passes     []string      `name:"pass" short:"p" required:"" help:"Catalog key to watch (repeatable)"`
	Interval   time.Duration `default:"1h" help:"Time between updates"`
	MinSpacing time.Duration `name:"min-spacing" default:"1m" help:"Minimum time between page fetches"`
	DB         string        `name:"db" help:"Database path (default: $ALPENPASS_DB or ~/.alpenpass/alpenpass.db)"`
	NATS       string        `name:"nats" env:"NATS_URL" help:"NATS server URL; changes are published when set"`
	Subject    string        `default:"${nats_subject}" help:"NATS subject prefix"`
	Listen     string        `help:"Serve the HTTP API on this address, e.g. :8080"`
}

// vars are interpolated into the CLI struct tags.
var vars = map[string]string{
	"user_agent":   alpenhttp.DefaultUserAgent,
	"nats_subject": alpennats.DefaultSubject,
}
