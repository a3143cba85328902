package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fwojciec/alpenpass"
	alpenmux "github.com/fwojciec/alpenpass/mux"
	"golang.org/x/sync/errgroup"
)

// Run executes the watch command. It blocks until the context is canceled.
func (c *WatchCmd) Run(deps *Dependencies) error {
	var server *alpenmux.Server
	if c.Listen != "" {
		server = alpenmux.NewServer(deps.Snapshots, deps.Coordinator, deps.Logger)
		server.Addr = c.Listen
		if err := server.Open(); err != nil {
			return fmt.Errorf("failed to listen on %q: %w", c.Listen, err)
		}
		fmt.Fprintf(deps.Stderr, "Serving API on %s\n", server.URL())
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		return deps.Coordinator.Run(ctx)
	})
	if server != nil {
		g.Go(func() error {
			<-ctx.Done()
			return server.Close()
		})
	}

	fmt.Fprintf(deps.Stderr, "Watching %d passes every %s\n", len(deps.Coordinator.Entries()), c.Interval)
	return g.Wait()
}

// storeUpdate saves every updated pass and publishes those whose content
// changed since the previous snapshot.
func storeUpdate(deps *Dependencies) func(ctx context.Context, data map[string]*alpenpass.Pass) error {
	return func(ctx context.Context, data map[string]*alpenpass.Pass) error {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var errs []error
		for _, key := range keys {
			snap := &alpenpass.Snapshot{Key: key, Pass: data[key]}
			changed, err := deps.Snapshots.SaveSnapshot(ctx, snap)
			if err != nil {
				errs = append(errs, fmt.Errorf("save %s: %w", key, err))
				continue
			}
			if changed && deps.Publisher != nil {
				if err := deps.Publisher.Publish(ctx, snap); err != nil {
					errs = append(errs, fmt.Errorf("publish %s: %w", key, err))
				}
			}
		}
		return errors.Join(errs...)
	}
}
