package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/alpenpass"
)

// Ensure LoggingPassService implements alpenpass.PassService.
var _ alpenpass.PassService = (*LoggingPassService)(nil)

// LoggingPassService wraps a PassService with logging.
type LoggingPassService struct {
	next   alpenpass.PassService
	logger *slog.Logger
}

// NewLoggingPassService creates a new LoggingPassService.
func NewLoggingPassService(next alpenpass.PassService, logger *slog.Logger) *LoggingPassService {
	return &LoggingPassService{next: next, logger: logger}
}

// FindPasses delegates to the wrapped service and logs the operation.
func (s *LoggingPassService) FindPasses(ctx context.Context) (passes []*alpenpass.Pass, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find passes",
			"count", len(passes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPasses(ctx)
}

// FindPassByName delegates to the wrapped service and logs the operation.
func (s *LoggingPassService) FindPassByName(ctx context.Context, name string) (pass *alpenpass.Pass, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find pass",
			"name", name,
			"found", pass != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPassByName(ctx, name)
}

// FindOpenPasses delegates to the wrapped service and logs the operation.
func (s *LoggingPassService) FindOpenPasses(ctx context.Context) (passes []*alpenpass.Pass, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find open passes",
			"count", len(passes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindOpenPasses(ctx)
}

// FindPassesWithRestrictions delegates to the wrapped service and logs the operation.
func (s *LoggingPassService) FindPassesWithRestrictions(ctx context.Context) (passes []*alpenpass.Pass, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find restricted passes",
			"count", len(passes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPassesWithRestrictions(ctx)
}
