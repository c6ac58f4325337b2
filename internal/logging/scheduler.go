package logging

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CleanupScheduler runs a Cleaner immediately and then on every interval.
type CleanupScheduler struct {
	cleaner  *Cleaner
	interval time.Duration
	logger   *zap.Logger
}

// NewCleanupScheduler creates a scheduler. A nil logger discards output.
func NewCleanupScheduler(cleaner *Cleaner, interval time.Duration, logger *zap.Logger) *CleanupScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CleanupScheduler{cleaner: cleaner, interval: interval, logger: logger}
}

// Run blocks until ctx is done. It always returns nil so it can share an
// errgroup with the server.
func (s *CleanupScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runCleanup()
	for {
		select {
		case <-ticker.C:
			s.runCleanup()
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *CleanupScheduler) runCleanup() {
	deleted, err := s.cleaner.Cleanup()
	if err != nil {
		s.logger.Warn("Journal cleanup failed", zap.Error(err))
	} else if deleted > 0 {
		s.logger.Info("Cleaned up old journal files", zap.Int("deleted", deleted))
	}
}
