package converter

import (
	"staybook/internal/domain/payment"
	"staybook/internal/infra"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

func TransactionToUpsertParams(t *payment.Transaction) sqlc.UpsertTransactionParams {
	return sqlc.UpsertTransactionParams{
		ID:               t.ID(),
		BookingID:        t.BookingID(),
		PaymentIntentRef: t.PaymentIntentRef(),
		AmountCents:      t.Amount(),
		RefundedCents:    t.RefundedAmount(),
		Currency:         t.Currency(),
		Status:           t.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(t.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(t.UpdatedAt()),
	}
}

func TransactionFromRow(row sqlc.Transactions) (*payment.Transaction, error) {
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored transaction status is invalid", err, infra.KindDBFailure)
	}
	return payment.Reconstruct(
		row.ID, row.BookingID, row.PaymentIntentRef,
		row.AmountCents, row.RefundedCents, row.Currency,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
