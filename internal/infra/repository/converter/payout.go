package converter

import (
	"staybook/internal/domain/payout"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
)

func PayoutAccountFromRow(row sqlc.PayoutAccounts) *payout.Account {
	return payout.Reconstruct(
		row.OwnerID,
		pgconv.StringPtrFromPgtype(row.ExternalRef),
		row.OnboardingComplete,
		row.ChargesEnabled,
		row.PayoutsEnabled,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func PayoutAccountToUpdateParams(a *payout.Account) sqlc.UpdatePayoutAccountParams {
	return sqlc.UpdatePayoutAccountParams{
		OwnerID:            a.OwnerID(),
		ExternalRef:        pgconv.StringPtrToPgtype(a.ExternalRef()),
		OnboardingComplete: a.OnboardingComplete(),
		ChargesEnabled:     a.ChargesEnabled(),
		PayoutsEnabled:     a.PayoutsEnabled(),
		UpdatedAt:          pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}
