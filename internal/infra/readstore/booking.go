package readstore

import (
	"context"

	"staybook/internal/domain/availability"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViewRow, error)
	ListBookingViewsByGuest(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByGuestParams) ([]sqlc.BookingViewRow, error)
	ListBookingViewsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsByOwnerParams) ([]sqlc.BookingViewRow, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByGuest(ctx, r.db, sqlc.ListBookingViewsByGuestParams{GuestID: guestID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by guest", err)
	}
	return toBookingViews(rows), nil
}

func (r *BookingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByOwner(ctx, r.db, sqlc.ListBookingViewsByOwnerParams{OwnerID: ownerID, Limit: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by owner", err)
	}
	return toBookingViews(rows), nil
}

func toBookingViews(rows []sqlc.BookingViewRow) []*queries.BookingView {
	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toBookingView(row))
	}
	return out
}

func toBookingView(row sqlc.BookingViewRow) *queries.BookingView {
	checkIn := pgconv.DateFromPgtype(row.CheckIn)
	checkOut := pgconv.DateFromPgtype(row.CheckOut)
	return &queries.BookingView{
		ID:                row.ID,
		PropertyID:        row.PropertyID,
		PropertyTitle:     row.PropertyTitle,
		GuestID:           row.GuestID,
		OwnerID:           row.OwnerID,
		CheckIn:           availability.FormatDate(checkIn),
		CheckOut:          availability.FormatDate(checkOut),
		Nights:            int(checkOut.Sub(checkIn).Hours() / 24),
		Guests:            int(row.Guests),
		TotalCents:        row.TotalCents,
		Currency:          row.Currency,
		FulfillmentStatus: row.FulfillmentStatus,
		PaymentStatus:     row.PaymentStatus,
		SessionRef:        pgconv.StringPtrFromPgtype(row.SessionRef),
		PaymentIntentRef:  pgconv.StringPtrFromPgtype(row.PaymentIntentRef),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
