package scheduler

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/usecase/commands"
)

type staySweeper interface {
	CompleteFinishedStays(ctx context.Context) (*commands.SweepResult, error)
	ExpireStalePending(ctx context.Context, ttl time.Duration) (*commands.SweepResult, error)
}

// Scheduler periodically runs the time-driven booking transitions.
type Scheduler struct {
	stays      staySweeper
	interval   time.Duration
	pendingTTL time.Duration
	logger     *slog.Logger
}

func New(stays staySweeper, interval, pendingTTL time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		stays:      stays,
		interval:   interval,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		"interval", s.interval.String(),
		"pending_ttl", s.pendingTTL.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one sweep. Each sweep is independent; a failure in one does not
// skip the other.
func (s *Scheduler) Tick(ctx context.Context) {
	completed, err := s.stays.CompleteFinishedStays(ctx)
	if err != nil {
		s.logger.Error("failed to complete finished stays", "error", err.Error())
	} else if completed.Completed > 0 || completed.Failed > 0 {
		s.logger.Info("stays completed", "completed", completed.Completed, "failed", completed.Failed)
	}

	if s.pendingTTL <= 0 {
		return
	}
	expired, err := s.stays.ExpireStalePending(ctx, s.pendingTTL)
	if err != nil {
		s.logger.Error("failed to expire stale bookings", "error", err.Error())
		return
	}
	if expired.Expired > 0 || expired.Failed > 0 {
		s.logger.Info("stale bookings expired", "expired", expired.Expired, "failed", expired.Failed)
	}
}
