package commands

import (
	"context"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityCommands interface {
	SetDay(ctx context.Context, ownerID, propertyID uuid.UUID, date time.Time, isOpen bool) error
	SetRange(ctx context.Context, ownerID, propertyID uuid.UUID, start, end time.Time, isOpen bool) error
}

type availabilityUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAvailabilityCommands(uow shared.UnitOfWork, clk clock.Clock) AvailabilityCommands {
	return &availabilityUseCaseImpl{uow: uow, clock: clk}
}

func (uc *availabilityUseCaseImpl) SetDay(ctx context.Context, ownerID, propertyID uuid.UUID, date time.Time, isOpen bool) error {
	day := availability.DateOf(date)
	return uc.SetRange(ctx, ownerID, propertyID, day, day.AddDate(0, 0, 1), isOpen)
}

// SetRange writes every day of [start, end) in one statement inside one
// transaction, so either all days change or none do.
func (uc *availabilityUseCaseImpl) SetRange(ctx context.Context, ownerID, propertyID uuid.UUID, start, end time.Time, isOpen bool) error {
	rng, err := availability.NewDateRange(start, end)
	if err != nil {
		return markDomainErr(err)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := tx.Reads().PropertyByID(ctx, propertyID)
		if err != nil {
			return repoErr(err, ErrPropertyNotFound, "failed to load property")
		}
		if prop.OwnerID != ownerID {
			return ErrNotPropertyOwner
		}
		if err := tx.Availability().SetDays(ctx, tx.DB(), propertyID, rng.Dates(), isOpen, uc.clock.Now()); err != nil {
			return errs.Wrap(err, "failed to write availability")
		}
		return nil
	})
}
