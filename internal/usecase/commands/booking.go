package commands

import (
	"context"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/metrics"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error)
	Approve(ctx context.Context, ownerID, bookingID uuid.UUID) error
	Decline(ctx context.Context, ownerID, bookingID uuid.UUID) error
	Cancel(ctx context.Context, guestID, bookingID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	notify *notifier
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:    uow,
		clock:  clk,
		notify: newNotifier(uow, clk),
	}
}

// Create checks the range against the ledger first, but the occupancy insert
// inside the same transaction is what actually rejects a concurrent overlap.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, guestID uuid.UUID, in CreateBookingInput) (*CreateBookingResult, error) {
	stay, err := availability.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, markDomainErr(err)
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil
		now := uc.clock.Now()

		prop, err := tx.Reads().PropertyByID(ctx, in.PropertyID)
		if err != nil {
			return repoErr(err, ErrPropertyNotFound, "failed to load property")
		}

		b, err := booking.New(prop.Spec(), guestID, stay, in.Guests, now)
		if err != nil {
			return markDomainErr(err)
		}

		free, err := rangeFree(ctx, tx, prop.ID, stay, uuid.Nil, clock.Today(uc.clock))
		if err != nil {
			return err
		}
		if !free {
			return ErrRangeUnavailable
		}

		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindRangeTaken) {
				return errs.WithCause(ErrRangeUnavailable, err)
			}
			return errs.Wrap(err, "failed to create booking")
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.BookingTransitionsTotal.WithLabelValues("create").Inc()
	uc.notify.send(ctx, noticeFor(TopicBookingRequested, created))
	return &CreateBookingResult{BookingID: created.ID()}, nil
}

func (uc *bookingUseCaseImpl) Approve(ctx context.Context, ownerID, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "approve", TopicBookingConfirmed, func(b *booking.Booking, now time.Time) error {
		if b.OwnerID() != ownerID {
			return ErrNotBookingOwner
		}
		return b.Approve(now)
	})
}

func (uc *bookingUseCaseImpl) Decline(ctx context.Context, ownerID, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "decline", TopicBookingDeclined, func(b *booking.Booking, now time.Time) error {
		if b.OwnerID() != ownerID {
			return ErrNotBookingOwner
		}
		return b.Decline(now)
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, guestID, bookingID uuid.UUID) error {
	return uc.transition(ctx, bookingID, "cancel", TopicBookingCancelled, func(b *booking.Booking, now time.Time) error {
		if b.GuestID() != guestID {
			return ErrNotBookingGuest
		}
		return b.CancelByGuest(now)
	})
}

// transition locks the booking, applies an owner or guest action and saves
// it. Save releases the nights when the booking stops holding them.
func (uc *bookingUseCaseImpl) transition(
	ctx context.Context,
	bookingID uuid.UUID,
	action, topic string,
	apply func(b *booking.Booking, now time.Time) error,
) error {
	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := lockBooking(ctx, tx, bookingID)
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
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(action).Inc()
	uc.notify.send(ctx, noticeFor(topic, updated))
	return nil
}

func lockBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().GetForUpdate(ctx, tx.DB(), id)
	if err != nil {
		return nil, repoErr(err, ErrBookingNotFound, "failed to lock booking")
	}
	return b, nil
}

// rangeFree evaluates stay on the ledger, ignoring nights held by exclude.
func rangeFree(ctx context.Context, tx shared.Tx, propertyID uuid.UUID, stay availability.DateRange, exclude uuid.UUID, today time.Time) (bool, error) {
	blocked, err := tx.Availability().BlockedDays(ctx, tx.DB(), propertyID, stay)
	if err != nil {
		return false, errs.Wrap(err, "failed to load blocked days")
	}
	booked, err := tx.Availability().BookedNights(ctx, tx.DB(), propertyID, stay, exclude)
	if err != nil {
		return false, errs.Wrap(err, "failed to load booked nights")
	}
	return availability.NewLedger(today, blocked, booked).IsFree(stay), nil
}
