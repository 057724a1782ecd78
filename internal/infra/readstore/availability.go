package readstore

import (
	"context"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/infra/repository"
	sqlc "staybook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// AvailabilityReadStore answers calendar reads outside of a transaction by
// running the repository's queries against the pool.
type AvailabilityReadStore struct {
	repo *repository.AvailabilityRepository
	db   sqlc.DBTX
}

func NewAvailabilityReadStore(queries repository.AvailabilityQueries, db sqlc.DBTX) *AvailabilityReadStore {
	return &AvailabilityReadStore{
		repo: repository.NewAvailabilityRepository(queries),
		db:   db,
	}
}

func (r *AvailabilityReadStore) BlockedDays(ctx context.Context, propertyID uuid.UUID, rng availability.DateRange) ([]time.Time, error) {
	return r.repo.BlockedDays(ctx, r.db, propertyID, rng)
}

func (r *AvailabilityReadStore) BookedNights(ctx context.Context, propertyID uuid.UUID, rng availability.DateRange) ([]time.Time, error) {
	return r.repo.BookedNights(ctx, r.db, propertyID, rng, uuid.Nil)
}
