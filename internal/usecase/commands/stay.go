package commands

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/metrics"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

const sweepBatchSize = 100

type SweepResult struct {
	Completed int
	Expired   int
	Failed    int
}

// StayCommands are the time-driven transitions run by the sweeper.
type StayCommands interface {
	CompleteFinishedStays(ctx context.Context) (*SweepResult, error)
	// ExpireStalePending cancels pending bookings older than ttl that were
	// never paid. A non-positive ttl disables it.
	ExpireStalePending(ctx context.Context, ttl time.Duration) (*SweepResult, error)
}

type stayUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	notify *notifier
}

func NewStayCommands(uow shared.UnitOfWork, clk clock.Clock) StayCommands {
	return &stayUseCaseImpl{uow: uow, clock: clk, notify: newNotifier(uow, clk)}
}

func (uc *stayUseCaseImpl) CompleteFinishedStays(ctx context.Context) (*SweepResult, error) {
	today := clock.Today(uc.clock)
	list := func(ctx context.Context, tx shared.Tx) ([]uuid.UUID, error) {
		return tx.Bookings().ListCompletable(ctx, tx.DB(), today, sweepBatchSize)
	}
	apply := func(b *booking.Booking, now time.Time) error {
		return b.Complete(today, now)
	}

	n, failed, err := uc.sweep(ctx, "complete", TopicBookingCompleted, list, apply)
	if err != nil {
		return nil, err
	}
	return &SweepResult{Completed: n, Failed: failed}, nil
}

func (uc *stayUseCaseImpl) ExpireStalePending(ctx context.Context, ttl time.Duration) (*SweepResult, error) {
	if ttl <= 0 {
		return &SweepResult{}, nil
	}
	cutoff := uc.clock.Now().Add(-ttl)
	list := func(ctx context.Context, tx shared.Tx) ([]uuid.UUID, error) {
		return tx.Bookings().ListStalePending(ctx, tx.DB(), cutoff, sweepBatchSize)
	}
	apply := func(b *booking.Booking, now time.Time) error {
		return b.Expire(now)
	}

	n, failed, err := uc.sweep(ctx, "expire", TopicBookingCancelled, list, apply)
	if err != nil {
		return nil, err
	}
	return &SweepResult{Expired: n, Failed: failed}, nil
}

// sweep lists candidates once, then moves each booking in its own
// transaction so one bad row cannot hold back the rest. A booking that
// changed state after listing is skipped.
func (uc *stayUseCaseImpl) sweep(
	ctx context.Context,
	name, topic string,
	list func(ctx context.Context, tx shared.Tx) ([]uuid.UUID, error),
	apply func(b *booking.Booking, now time.Time) error,
) (moved, failed int, err error) {
	var ids []uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		ids, lerr = list(ctx, tx)
		return lerr
	})
	if err != nil {
		return 0, 0, errs.Wrapf(err, "failed to list bookings for %s sweep", name)
	}

	for _, id := range ids {
		if ctx.Err() != nil {
			return moved, failed, ctx.Err()
		}

		var updated *booking.Booking
		terr := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			updated = nil
			b, err := lockBooking(ctx, tx, id)
			if err != nil {
				return err
			}
			if err := apply(b, uc.clock.Now()); err != nil {
				return markDomainErr(err)
			}
			if err := tx.Bookings().Save(ctx, tx.DB(), b); err != nil {
				return errs.Wrap(err, "failed to save booking")
			}
			updated = b
			return nil
		})
		switch {
		case terr == nil:
			moved++
			metrics.SweepBookingsTotal.WithLabelValues(name).Inc()
			uc.notify.send(ctx, noticeFor(topic, updated))
		case errs.Is(terr, errs.ErrInvalidState):
			slog.Debug("booking changed before sweep", "sweep", name, "booking_id", id)
		default:
			failed++
			slog.Error("sweep transition failed", "sweep", name, "booking_id", id, "error", terr.Error())
		}
	}
	return moved, failed, nil
}
