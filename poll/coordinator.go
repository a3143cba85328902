// Package poll refreshes the selected catalog passes on a schedule and
// derives their sensors from the latest successful update.
package poll

import (
	"context"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/fwojciec/alpenpass"
	"golang.org/x/time/rate"
)

// DefaultInterval is the time between scheduled updates.
const DefaultInterval = time.Hour

// DefaultMinSpacing is the minimum time between two page fetches started
// by Update, however often it is called.
const DefaultMinSpacing = time.Minute

var _ alpenpass.SensorService = (*Coordinator)(nil)

// UpdateFunc receives the data of every successful update, keyed by
// catalog key.
type UpdateFunc func(ctx context.Context, data map[string]*alpenpass.Pass) error

// Coordinator owns the latest data of the selected passes. A failed update
// keeps the previous data but marks it stale, so sensors turn unavailable
// instead of being cleared.
type Coordinator struct {
	passes   alpenpass.PassService
	entries  []alpenpass.CatalogEntry
	matcher  alpenpass.NameMatcher
	interval time.Duration
	spacing  time.Duration
	limiter  *rate.Limiter
	onUpdate UpdateFunc
	logger   *slog.Logger

	// updating is held for the duration of one Update.
	updating sync.Mutex

	mu         sync.RWMutex
	data       map[string]*alpenpass.Pass
	success    bool
	lastUpdate time.Time
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithMatcher sets a fuzzy matcher for selected passes whose catalog name
// is not a substring of any scraped name or the other way round.
func WithMatcher(m alpenpass.NameMatcher) Option {
	return func(c *Coordinator) {
		c.matcher = m
	}
}

// WithInterval sets the time between updates in Run.
// Defaults to DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		c.interval = d
	}
}

// WithMinSpacing sets the minimum time between fetches. Zero disables
// the limit. Defaults to DefaultMinSpacing.
func WithMinSpacing(d time.Duration) Option {
	return func(c *Coordinator) {
		c.spacing = d
	}
}

// WithOnUpdate registers fn to be called after every successful update.
// An error from fn is logged and does not fail the update.
func WithOnUpdate(fn UpdateFunc) Option {
	return func(c *Coordinator) {
		c.onUpdate = fn
	}
}

// WithLogger sets the logger for failed lookups and updates.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// NewCoordinator creates a Coordinator for the selected catalog keys.
// Returns EINVALID if keys is empty or contains an unknown key.
func NewCoordinator(passes alpenpass.PassService, keys []string, opts ...Option) (*Coordinator, error) {
	if err := alpenpass.ValidateSelection(keys); err != nil {
		return nil, err
	}

	c := &Coordinator{
		passes:   passes,
		interval: DefaultInterval,
		spacing:  DefaultMinSpacing,
		data:     map[string]*alpenpass.Pass{},
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		entry, _ := alpenpass.LookupCatalog(k)
		c.entries = append(c.entries, entry)
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.interval <= 0 {
		c.interval = DefaultInterval
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	limit := rate.Inf
	if c.spacing > 0 {
		limit = rate.Every(c.spacing)
	}
	c.limiter = rate.NewLimiter(limit, 1)

	return c, nil
}

// Update fetches the passes once and replaces the data of the selected
// passes. Returns ECONFLICT if another update is running and EUNAVAILABLE
// if none of the selected passes could be resolved.
func (c *Coordinator) Update(ctx context.Context) (map[string]*alpenpass.Pass, error) {
	if !c.updating.TryLock() {
		return nil, alpenpass.Errorf(alpenpass.ECONFLICT, "update already in progress")
	}
	defer c.updating.Unlock()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	data, err := c.fetch(ctx)
	if err != nil {
		c.mu.Lock()
		c.success = false
		c.mu.Unlock()
		return nil, err
	}

	c.mu.Lock()
	c.data = data
	c.success = true
	c.lastUpdate = time.Now()
	c.mu.Unlock()

	if c.onUpdate != nil {
		if err := c.onUpdate(ctx, maps.Clone(data)); err != nil {
			c.logger.Error("update hook failed", "err", err)
		}
	}
	return maps.Clone(data), nil
}

// fetch resolves every selected entry to a scraped pass. Entries are
// matched against one page fetch by substring, then by the fuzzy matcher,
// and the rest are looked up one by one.
func (c *Coordinator) fetch(ctx context.Context) (map[string]*alpenpass.Pass, error) {
	passes, err := c.passes.FindPasses(ctx)
	if err != nil {
		return nil, err
	}

	data := make(map[string]*alpenpass.Pass, len(c.entries))
	var missing []alpenpass.CatalogEntry
	for _, entry := range c.entries {
		if p := c.match(entry, passes); p != nil {
			data[entry.Key] = withCatalog(p, entry)
			continue
		}
		missing = append(missing, entry)
	}

	for _, entry := range missing {
		p, err := c.passes.FindPassByName(ctx, entry.Name)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			c.logger.Warn("pass lookup failed", "key", entry.Key, "name", entry.Name, "err", err)
			continue
		}
		data[entry.Key] = withCatalog(p, entry)
	}

	if len(data) == 0 {
		return nil, alpenpass.Errorf(alpenpass.EUNAVAILABLE, "no data retrieved from any passes")
	}
	return data, nil
}

func (c *Coordinator) match(entry alpenpass.CatalogEntry, passes []*alpenpass.Pass) *alpenpass.Pass {
	for _, p := range passes {
		if entry.MatchesName(p.Name) {
			return p
		}
	}
	if c.matcher == nil {
		return nil
	}
	for _, p := range passes {
		if c.matcher.MatchName(entry, p.Name) {
			return p
		}
	}
	return nil
}

// withCatalog returns a copy of p completed with catalog data the page
// does not carry.
func withCatalog(p *alpenpass.Pass, entry alpenpass.CatalogEntry) *alpenpass.Pass {
	clone := *p
	if clone.Elevation == nil {
		elevation := entry.Elevation
		clone.Elevation = &elevation
	}
	return &clone
}

// Data returns the data of the last successful update, keyed by catalog key.
func (c *Coordinator) Data() map[string]*alpenpass.Pass {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.data)
}

// LastUpdateSuccess reports whether the most recent update succeeded.
func (c *Coordinator) LastUpdateSuccess() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.success
}

// LastUpdate returns the time of the last successful update.
func (c *Coordinator) LastUpdate() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdate
}

// Entries returns the selected catalog entries in selection order.
func (c *Coordinator) Entries() []alpenpass.CatalogEntry {
	return append([]alpenpass.CatalogEntry(nil), c.entries...)
}

// Sensors returns three sensors per selected pass in selection order.
func (c *Coordinator) Sensors() []alpenpass.Sensor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	sensors := make([]alpenpass.Sensor, 0, 3*len(c.entries))
	for _, entry := range c.entries {
		sensors = append(sensors, alpenpass.PassSensors(entry, c.data[entry.Key], c.success)...)
	}
	return sensors
}

// Run updates immediately and then once per interval until ctx is done.
// Failed updates are logged; Run returns nil when ctx is canceled.
func (c *Coordinator) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if _, err := c.Update(ctx); err != nil && ctx.Err() == nil {
			c.logger.Error("update failed", "err", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
