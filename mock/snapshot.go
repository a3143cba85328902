package mock

import (
	"context"

	"github.com/fwojciec/alpenpass"
)

var _ alpenpass.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of alpenpass.SnapshotService.
type SnapshotService struct {
	SaveSnapshotFn      func(ctx context.Context, s *alpenpass.Snapshot) (bool, error)
	FindSnapshotByKeyFn func(ctx context.Context, key string) (*alpenpass.Snapshot, error)
	FindSnapshotsFn     func(ctx context.Context, filter alpenpass.SnapshotFilter) ([]*alpenpass.Snapshot, error)
	DeleteSnapshotFn    func(ctx context.Context, key string) error
}

func (s *SnapshotService) SaveSnapshot(ctx context.Context, snap *alpenpass.Snapshot) (bool, error) {
	return s.SaveSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByKey(ctx context.Context, key string) (*alpenpass.Snapshot, error) {
	return s.FindSnapshotByKeyFn(ctx, key)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter alpenpass.SnapshotFilter) ([]*alpenpass.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, key string) error {
	return s.DeleteSnapshotFn(ctx, key)
}

var _ alpenpass.Publisher = (*Publisher)(nil)

// Publisher is a mock implementation of alpenpass.Publisher.
type Publisher struct {
	PublishFn func(ctx context.Context, s *alpenpass.Snapshot) error
}

func (p *Publisher) Publish(ctx context.Context, s *alpenpass.Snapshot) error {
	return p.PublishFn(ctx, s)
}
