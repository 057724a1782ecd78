package repository

import (
	"context"

	"staybook/internal/domain/payout"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PayoutAccountQueries interface {
	InsertPayoutAccountIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPayoutAccountIfAbsentParams) (int64, error)
	GetPayoutAccount(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.PayoutAccounts, error)
	GetPayoutAccountForUpdate(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) (sqlc.PayoutAccounts, error)
	GetPayoutAccountByExternalRefForUpdate(ctx context.Context, db sqlc.DBTX, externalRef pgtype.Text) (sqlc.PayoutAccounts, error)
	UpdatePayoutAccount(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePayoutAccountParams) error
}

type PayoutAccountRepository struct {
	queries PayoutAccountQueries
}

func NewPayoutAccountRepository(queries PayoutAccountQueries) *PayoutAccountRepository {
	return &PayoutAccountRepository{queries: queries}
}

func (r *PayoutAccountRepository) InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, a *payout.Account) (bool, error) {
	n, err := r.queries.InsertPayoutAccountIfAbsent(ctx, tx, sqlc.InsertPayoutAccountIfAbsentParams{
		OwnerID:   a.OwnerID(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert payout account", err)
	}
	return n == 1, nil
}

func (r *PayoutAccountRepository) Get(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*payout.Account, error) {
	row, err := r.queries.GetPayoutAccount(ctx, tx, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get payout account", err)
	}
	return converter.PayoutAccountFromRow(row), nil
}

func (r *PayoutAccountRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*payout.Account, error) {
	row, err := r.queries.GetPayoutAccountForUpdate(ctx, tx, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payout account", err)
	}
	return converter.PayoutAccountFromRow(row), nil
}

func (r *PayoutAccountRepository) GetByExternalRefForUpdate(ctx context.Context, tx sqlc.DBTX, externalRef string) (*payout.Account, error) {
	row, err := r.queries.GetPayoutAccountByExternalRefForUpdate(ctx, tx, pgconv.StringToPgtype(externalRef))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock payout account by external ref", err)
	}
	return converter.PayoutAccountFromRow(row), nil
}

func (r *PayoutAccountRepository) Save(ctx context.Context, tx sqlc.DBTX, a *payout.Account) error {
	if err := r.queries.UpdatePayoutAccount(ctx, tx, converter.PayoutAccountToUpdateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to update payout account", err)
	}
	return nil
}
