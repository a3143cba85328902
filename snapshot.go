package alpenpass

import (
	"context"
	"time"
)

// Snapshot is the latest known state of one catalog pass. Only the most
// recent snapshot per key is kept; saving replaces the previous one.
type Snapshot struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Pass        *Pass     `json:"pass"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Key == "" {
		return Errorf(EINVALID, "snapshot key required")
	}
	if s.Pass == nil {
		return Errorf(EINVALID, "snapshot pass required")
	}
	return s.Pass.Validate()
}

// SnapshotService stores the latest snapshot per catalog key.
type SnapshotService interface {
	// SaveSnapshot replaces the stored snapshot for s.Key and sets ID,
	// ContentHash and FetchedAt. Reports whether the pass content differs
	// from the snapshot it replaced; a first save is always a change.
	SaveSnapshot(ctx context.Context, s *Snapshot) (changed bool, err error)

	// FindSnapshotByKey retrieves the snapshot of a catalog key.
	// Returns ENOTFOUND if no snapshot was saved for the key.
	FindSnapshotByKey(ctx context.Context, key string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, ordered by key.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot removes the snapshot of a catalog key.
	// Returns ENOTFOUND if no snapshot was saved for the key.
	DeleteSnapshot(ctx context.Context, key string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	Keys []string `json:"keys"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Publisher announces snapshots to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, s *Snapshot) error
}
