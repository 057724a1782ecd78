package queries

import (
	"context"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPropertyNotFound = errs.Sentinel("property not found", errs.ErrNotFound)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
}

// AvailabilityReadStore reads the two persisted sources of unavailability;
// "past" is derived from the clock.
type AvailabilityReadStore interface {
	BlockedDays(ctx context.Context, propertyID uuid.UUID, r availability.DateRange) ([]time.Time, error)
	BookedNights(ctx context.Context, propertyID uuid.UUID, r availability.DateRange) ([]time.Time, error)
}

type AvailabilityQueries interface {
	IsRangeFree(ctx context.Context, propertyID uuid.UUID, start, end time.Time) (bool, error)
	Calendar(ctx context.Context, propertyID uuid.UUID, start, end time.Time) ([]DayView, error)
}

type availabilityQueriesImpl struct {
	properties PropertyReadStore
	store      AvailabilityReadStore
	clock      clock.Clock
}

func NewAvailabilityQueries(properties PropertyReadStore, store AvailabilityReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{properties: properties, store: store, clock: clk}
}

func (q *availabilityQueriesImpl) IsRangeFree(ctx context.Context, propertyID uuid.UUID, start, end time.Time) (bool, error) {
	rng, ledger, err := q.load(ctx, propertyID, start, end)
	if err != nil {
		return false, err
	}
	return ledger.IsFree(rng), nil
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, propertyID uuid.UUID, start, end time.Time) ([]DayView, error) {
	rng, ledger, err := q.load(ctx, propertyID, start, end)
	if err != nil {
		return nil, err
	}
	days := ledger.Days(rng)
	out := make([]DayView, len(days))
	for i, d := range days {
		out[i] = DayView{Date: availability.FormatDate(d.Date), State: string(d.State)}
	}
	return out, nil
}

func (q *availabilityQueriesImpl) load(ctx context.Context, propertyID uuid.UUID, start, end time.Time) (availability.DateRange, *availability.Ledger, error) {
	rng, err := availability.NewDateRange(start, end)
	if err != nil {
		return availability.DateRange{}, nil, errs.Mark(err, errs.ErrValidation)
	}
	if _, err := q.properties.FindByID(ctx, propertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return availability.DateRange{}, nil, errs.WithCause(ErrPropertyNotFound, err)
		}
		return availability.DateRange{}, nil, err
	}
	blocked, err := q.store.BlockedDays(ctx, propertyID, rng)
	if err != nil {
		return availability.DateRange{}, nil, err
	}
	booked, err := q.store.BookedNights(ctx, propertyID, rng)
	if err != nil {
		return availability.DateRange{}, nil, err
	}
	return rng, availability.NewLedger(clock.Today(q.clock), blocked, booked), nil
}
