package queries

import (
	"context"

	"staybook/internal/infra"

	"github.com/google/uuid"
)

type PayoutReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*PayoutStatusView, error)
}

type PayoutQueries interface {
	Status(ctx context.Context, ownerID uuid.UUID) (*PayoutStatusView, error)
}

type payoutQueriesImpl struct {
	store PayoutReadStore
}

func NewPayoutQueries(store PayoutReadStore) PayoutQueries {
	return &payoutQueriesImpl{store: store}
}

// Status reports an owner without an account as HasAccount=false rather than
// as an error.
func (q *payoutQueriesImpl) Status(ctx context.Context, ownerID uuid.UUID) (*PayoutStatusView, error) {
	v, err := q.store.FindByOwner(ctx, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &PayoutStatusView{}, nil
		}
		return nil, err
	}
	return v, nil
}
