package queries

import (
	"context"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

var (
	ErrBookingNotFound = errs.Sentinel("booking not found", errs.ErrNotFound)
	ErrBookingAccess   = errs.Sentinel("booking belongs to another user", errs.ErrForbidden)
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID is visible to the booking's guest and the property owner only.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.WithCause(ErrBookingNotFound, err)
		}
		return nil, err
	}
	if actorID != v.GuestID && actorID != v.OwnerID {
		return nil, ErrBookingAccess
	}
	return v, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID uuid.UUID, limit int) ([]*BookingView, error) {
	return q.store.ListByGuest(ctx, guestID, clampLimit(limit))
}

func (q *bookingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*BookingView, error) {
	return q.store.ListByOwner(ctx, ownerID, clampLimit(limit))
}

func clampLimit(limit int) int32 {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return int32(limit) // #nosec G115 -- bounded above
	}
}
