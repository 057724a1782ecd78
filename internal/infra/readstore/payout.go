package readstore

import (
	"context"

	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type PayoutAccountViewQueries interface {
	GetPayoutAccount(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.PayoutAccounts, error)
}

type PayoutReadStore struct {
	queries PayoutAccountViewQueries
	db      sqlc.DBTX
}

func NewPayoutReadStore(queries PayoutAccountViewQueries, db sqlc.DBTX) *PayoutReadStore {
	return &PayoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PayoutReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.PayoutStatusView, error) {
	row, err := r.queries.GetPayoutAccount(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payout account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payout account", err)
	}
	return &queries.PayoutStatusView{
		HasAccount:     row.ExternalRef.Valid,
		AccountRef:     pgconv.StringPtrFromPgtype(row.ExternalRef),
		IsComplete:     row.OnboardingComplete,
		ChargesEnabled: row.ChargesEnabled,
		PayoutsEnabled: row.PayoutsEnabled,
	}, nil
}
