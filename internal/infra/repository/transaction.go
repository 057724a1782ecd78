package repository

import (
	"context"

	"staybook/internal/domain/payment"
	"staybook/internal/infra"
	"staybook/internal/infra/repository/converter"
	sqlc "staybook/internal/infra/sqlc/generated"
)

type TransactionWriteQueries interface {
	GetTransactionByIntentRefForUpdate(ctx context.Context, db sqlc.DBTX, paymentIntentRef string) (sqlc.Transactions, error)
	UpsertTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertTransactionParams) error
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{queries: queries}
}

func (r *TransactionRepository) GetByIntentRefForUpdate(ctx context.Context, tx sqlc.DBTX, paymentIntentRef string) (*payment.Transaction, error) {
	row, err := r.queries.GetTransactionByIntentRefForUpdate(ctx, tx, paymentIntentRef)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock transaction", err)
	}
	return converter.TransactionFromRow(row)
}

// Save upserts on the payment intent reference; a second row for the same
// intent is never created.
func (r *TransactionRepository) Save(ctx context.Context, tx sqlc.DBTX, t *payment.Transaction) error {
	if err := r.queries.UpsertTransaction(ctx, tx, converter.TransactionToUpsertParams(t)); err != nil {
		return infra.WrapRepoErr("failed to upsert transaction", err)
	}
	return nil
}
