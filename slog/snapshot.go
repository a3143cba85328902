package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alpenpass"
)

// Ensure LoggingSnapshotService implements alpenpass.SnapshotService.
var _ alpenpass.SnapshotService = (*LoggingSnapshotService)(nil)

// LoggingSnapshotService wraps a SnapshotService with logging of writes.
// Reads are delegated without logging.
type LoggingSnapshotService struct {
	next   alpenpass.SnapshotService
	logger *slog.Logger
}

// NewLoggingSnapshotService creates a new LoggingSnapshotService.
func NewLoggingSnapshotService(next alpenpass.SnapshotService, logger *slog.Logger) *LoggingSnapshotService {
	return &LoggingSnapshotService{next: next, logger: logger}
}

// SaveSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) SaveSnapshot(ctx context.Context, snap *alpenpass.Snapshot) (changed bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("save snapshot",
			"key", snap.Key,
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveSnapshot(ctx, snap)
}

// FindSnapshotByKey delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshotByKey(ctx context.Context, key string) (*alpenpass.Snapshot, error) {
	return s.next.FindSnapshotByKey(ctx, key)
}

// FindSnapshots delegates to the wrapped service.
func (s *LoggingSnapshotService) FindSnapshots(ctx context.Context, filter alpenpass.SnapshotFilter) ([]*alpenpass.Snapshot, error) {
	return s.next.FindSnapshots(ctx, filter)
}

// DeleteSnapshot delegates to the wrapped service and logs the operation.
func (s *LoggingSnapshotService) DeleteSnapshot(ctx context.Context, key string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete snapshot",
			"key", key,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteSnapshot(ctx, key)
}
