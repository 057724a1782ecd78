package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"staybook/cmd/bootstrap"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func sweepCmd() *cobra.Command {
	var pendingTTL time.Duration

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one pass of stay completion and stale-booking expiry",
		Long: `Runs the same transitions as the server's background scheduler, once.

Completion moves confirmed bookings whose checkout date has passed to
completed. Expiry cancels pending, unpaid bookings older than --pending-ttl
and releases their nights; it is skipped when the ttl is zero.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSweep(cmd, pendingTTL)
		},
	}

	cmd.Flags().DurationVar(&pendingTTL, "pending-ttl", -1, "override BOOKING_PENDING_TTL (e.g. 48h)")
	return cmd
}

func runSweep(cmd *cobra.Command, ttlOverride time.Duration) error {
	var stays commands.StayCommands
	var cfg config.Config

	app := fx.New(
		bootstrap.Infra,
		fx.NopLogger,
		fx.Populate(&stays, &cfg),
	)
	ctx := cmd.Context()
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("shutdown failed", "error", err)
		}
	}()

	ttl := cfg.Booking.PendingTTL
	if ttlOverride >= 0 {
		ttl = ttlOverride
	}

	completed, err := stays.CompleteFinishedStays(ctx)
	if err != nil {
		return fmt.Errorf("complete stays: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "completed: %d (failed %d)\n", completed.Completed, completed.Failed)

	if ttl <= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "expiry skipped: pending ttl is zero")
		return nil
	}
	expired, err := stays.ExpireStalePending(ctx, ttl)
	if err != nil {
		return fmt.Errorf("expire pending: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "expired: %d (failed %d)\n", expired.Expired, expired.Failed)
	return nil
}
