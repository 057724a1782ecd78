package readstore

import (
	"context"

	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyQueries interface {
	GetProperty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetPropertyRow, error)
}

// PropertyReadStore reads the catalog projection. The catalog itself is
// owned elsewhere; nothing here writes properties.
type PropertyReadStore struct {
	queries PropertyQueries
	db      sqlc.DBTX
}

func NewPropertyReadStore(queries PropertyQueries, db sqlc.DBTX) *PropertyReadStore {
	return &PropertyReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyReadStore) Get(ctx context.Context, id uuid.UUID) (sqlc.GetPropertyRow, error) {
	row, err := r.queries.GetProperty(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.GetPropertyRow{}, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return sqlc.GetPropertyRow{}, infra.WrapRepoErr("failed to get property", err)
	}
	return row, nil
}

func (r *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	row, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &queries.PropertyView{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		MaxGuests: int(row.MaxGuests),
	}, nil
}
