package repository

import (
	"context"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AvailabilityQueries interface {
	ListBlockedDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockedDaysParams) ([]pgtype.Date, error)
	ListBookedNights(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookedNightsParams) ([]pgtype.Date, error)
	UpsertAvailabilityDays(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertAvailabilityDaysParams) (int64, error)
}

type AvailabilityRepository struct {
	queries AvailabilityQueries
}

func NewAvailabilityRepository(queries AvailabilityQueries) *AvailabilityRepository {
	return &AvailabilityRepository{queries: queries}
}

func (r *AvailabilityRepository) BlockedDays(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, rng availability.DateRange) ([]time.Time, error) {
	days, err := r.queries.ListBlockedDays(ctx, tx, sqlc.ListBlockedDaysParams{
		PropertyID: propertyID,
		StartDate:  pgconv.DateToPgtype(rng.Start()),
		EndDate:    pgconv.DateToPgtype(rng.End()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked days", err)
	}
	return pgconv.DatesFromPgtype(days), nil
}

func (r *AvailabilityRepository) BookedNights(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, rng availability.DateRange, excludeBookingID uuid.UUID) ([]time.Time, error) {
	nights, err := r.queries.ListBookedNights(ctx, tx, sqlc.ListBookedNightsParams{
		PropertyID:       propertyID,
		StartDate:        pgconv.DateToPgtype(rng.Start()),
		EndDate:          pgconv.DateToPgtype(rng.End()),
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked nights", err)
	}
	return pgconv.DatesFromPgtype(nights), nil
}

// SetDays is a single upsert statement, so a partial write is never visible.
func (r *AvailabilityRepository) SetDays(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, days []time.Time, isOpen bool, now time.Time) error {
	if len(days) == 0 {
		return nil
	}
	n, err := r.queries.UpsertAvailabilityDays(ctx, tx, sqlc.UpsertAvailabilityDaysParams{
		PropertyID: propertyID,
		Days:       pgconv.DatesToPgtype(days),
		IsOpen:     isOpen,
		UpdatedAt:  pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to upsert availability days", err)
	}
	if n != int64(len(days)) {
		return infra.WrapRepoErr("availability upsert wrote an unexpected number of days", nil, infra.KindDBFailure)
	}
	return nil
}
