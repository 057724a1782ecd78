package commands

import (
	"context"

	"staybook/internal/domain/payout"
	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"
)

type PayoutCommands interface {
	// EnsureAccount returns the owner's processor account reference, creating
	// the account on first use only.
	EnsureAccount(ctx context.Context, principal user.Principal) (string, error)
	CreateOnboardingLink(ctx context.Context, principal user.Principal) (string, error)
}

type payoutUseCaseImpl struct {
	uow     shared.UnitOfWork
	gateway shared.PayoutGateway
	clock   clock.Clock
}

func NewPayoutCommands(uow shared.UnitOfWork, gateway shared.PayoutGateway, clk clock.Clock) PayoutCommands {
	return &payoutUseCaseImpl{uow: uow, gateway: gateway, clock: clk}
}

// EnsureAccount serialises callers for one owner on the payout_accounts row
// and passes an owner-scoped idempotency key to the processor, so neither a
// retry nor a concurrent request creates a second account.
func (uc *payoutUseCaseImpl) EnsureAccount(ctx context.Context, principal user.Principal) (string, error) {
	if !principal.CanOwnProperties() {
		return "", ErrOwnerRoleRequired
	}

	var ref string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref = ""
		now := uc.clock.Now()

		if _, err := tx.PayoutAccounts().InsertIfAbsent(ctx, tx.DB(), payout.NewAccount(principal.ID(), now)); err != nil {
			return errs.Wrap(err, "failed to create payout account row")
		}
		account, err := tx.PayoutAccounts().GetForUpdate(ctx, tx.DB(), principal.ID())
		if err != nil {
			return errs.Wrap(err, "failed to lock payout account")
		}
		if account.HasExternalRef() {
			ref = *account.ExternalRef()
			return nil
		}

		created, err := uc.gateway.CreateAccount(ctx, principal.ID(), "payout-account:"+principal.ID().String())
		if err != nil {
			return errs.WithCause(ErrGatewayFailed, err)
		}
		if err := account.LinkExternal(created, now); err != nil {
			return markDomainErr(err)
		}
		if err := tx.PayoutAccounts().Save(ctx, tx.DB(), account); err != nil {
			return errs.Wrap(err, "failed to save payout account")
		}
		ref = created
		return nil
	})
	if err != nil {
		return "", err
	}
	return ref, nil
}

func (uc *payoutUseCaseImpl) CreateOnboardingLink(ctx context.Context, principal user.Principal) (string, error) {
	if !principal.CanOwnProperties() {
		return "", ErrOwnerRoleRequired
	}

	var ref string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		account, err := tx.PayoutAccounts().Get(ctx, tx.DB(), principal.ID())
		if err != nil {
			return repoErr(err, ErrPayoutAccountNotFound, "failed to load payout account")
		}
		if !account.HasExternalRef() {
			return ErrPayoutAccountNotFound
		}
		ref = *account.ExternalRef()
		return nil
	})
	if err != nil {
		return "", err
	}

	url, err := uc.gateway.CreateOnboardingLink(ctx, ref)
	if err != nil {
		return "", errs.WithCause(ErrGatewayFailed, err)
	}
	return url, nil
}
