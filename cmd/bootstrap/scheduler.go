package bootstrap

import (
	"context"
	"log/slog"

	"staybook/internal/pkg/config"
	"staybook/internal/scheduler"
	"staybook/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(startScheduler),
)

func NewScheduler(stays commands.StayCommands, cfg config.Config, logger *slog.Logger) *scheduler.Scheduler {
	return scheduler.New(stays, cfg.Booking.SweepInterval, cfg.Booking.PendingTTL, logger)
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				s.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
