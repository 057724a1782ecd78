package repository

import (
	"context"
	"time"

	"staybook/internal/domain/booking"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingNightsPkey = "booking_nights_pkey"

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	ReserveBookingNights(ctx context.Context, db sqlc.DBTX, arg sqlc.ReserveBookingNightsParams) (int64, error)
	ReleaseBookingNights(ctx context.Context, db sqlc.DBTX, bookingID uuid.UUID) (int64, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	GetBookingBySessionRefForUpdate(ctx context.Context, db sqlc.DBTX, sessionRef pgtype.Text) (sqlc.Bookings, error)
	GetBookingByPaymentIntentRefForUpdate(ctx context.Context, db sqlc.DBTX, paymentIntentRef pgtype.Text) (sqlc.Bookings, error)
	UpdateBookingState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStateParams) error
	ListCompletableBookingIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCompletableBookingIDsParams) ([]uuid.UUID, error)
	ListStalePendingBookingIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePendingBookingIDsParams) ([]uuid.UUID, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// Create inserts the booking and claims one occupancy row per night. A
// concurrent claim on any of those nights fails the whole insert.
func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	reserved, err := r.queries.ReserveBookingNights(ctx, tx, sqlc.ReserveBookingNightsParams{
		PropertyID: b.PropertyID(),
		BookingID:  b.ID(),
		CheckIn:    pgconv.DateToPgtype(b.Stay().Start()),
		CheckOut:   pgconv.DateToPgtype(b.Stay().End()),
	})
	if err != nil {
		if pgconv.IsUniqueViolation(err, bookingNightsPkey) {
			return infra.WrapRepoErr("stay range already taken", err, infra.KindRangeTaken)
		}
		return infra.WrapRepoErr("failed to reserve booking nights", err)
	}
	if reserved != int64(b.Stay().Nights()) {
		return infra.WrapRepoErr("reserved nights do not match the stay", nil, infra.KindDBFailure)
	}
	return nil
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return converter.BookingFromRow(row)
}

func (r *BookingRepository) FindBySessionRefForUpdate(ctx context.Context, tx sqlc.DBTX, sessionRef string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingBySessionRefForUpdate(ctx, tx, pgconv.StringToPgtype(sessionRef))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by session", err)
	}
	return converter.BookingFromRow(row)
}

func (r *BookingRepository) FindByPaymentIntentRefForUpdate(ctx context.Context, tx sqlc.DBTX, paymentIntentRef string) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByPaymentIntentRefForUpdate(ctx, tx, pgconv.StringToPgtype(paymentIntentRef))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking by payment intent", err)
	}
	return converter.BookingFromRow(row)
}

// Save writes both status axes and drops the occupancy rows once the
// booking no longer holds its range.
func (r *BookingRepository) Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.UpdateBookingState(ctx, tx, converter.BookingToUpdateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if b.HoldsRange() {
		return nil
	}
	if _, err := r.queries.ReleaseBookingNights(ctx, tx, b.ID()); err != nil {
		return infra.WrapRepoErr("failed to release booking nights", err)
	}
	return nil
}

func (r *BookingRepository) ListCompletable(ctx context.Context, tx sqlc.DBTX, today time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListCompletableBookingIDs(ctx, tx, sqlc.ListCompletableBookingIDsParams{
		Today:   pgconv.DateToPgtype(today),
		MaxRows: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list completable bookings", err)
	}
	return ids, nil
}

func (r *BookingRepository) ListStalePending(ctx context.Context, tx sqlc.DBTX, createdBefore time.Time, limit int32) ([]uuid.UUID, error) {
	ids, err := r.queries.ListStalePendingBookingIDs(ctx, tx, sqlc.ListStalePendingBookingIDsParams{
		CreatedBefore: pgconv.TimeToPgtype(createdBefore),
		MaxRows:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale pending bookings", err)
	}
	return ids, nil
}
