package stripe

import (
	"context"

	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v79"
)

const accountLinkTypeOnboarding = "account_onboarding"

// CreateAccount registers an Express connected account for the owner.
func (g *Gateway) CreateAccount(ctx context.Context, ownerID uuid.UUID, idempotencyKey string) (string, error) {
	params := &stripeapi.AccountParams{
		Type: stripeapi.String(string(stripeapi.AccountTypeExpress)),
		Capabilities: &stripeapi.AccountCapabilitiesParams{
			CardPayments: &stripeapi.AccountCapabilitiesCardPaymentsParams{Requested: stripeapi.Bool(true)},
			Transfers:    &stripeapi.AccountCapabilitiesTransfersParams{Requested: stripeapi.Bool(true)},
		},
	}
	params.Context = ctx
	params.AddMetadata("owner_id", ownerID.String())
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	acct, err := g.api.Accounts.New(params)
	if err != nil {
		return "", errs.Wrap(err, "create connected account")
	}
	return acct.ID, nil
}

func (g *Gateway) CreateOnboardingLink(ctx context.Context, accountRef string) (string, error) {
	params := &stripeapi.AccountLinkParams{
		Account:    stripeapi.String(accountRef),
		RefreshURL: stripeapi.String(g.cfg.OnboardingRefreshURL),
		ReturnURL:  stripeapi.String(g.cfg.OnboardingReturnURL),
		Type:       stripeapi.String(accountLinkTypeOnboarding),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return "", errs.Wrap(err, "create account link")
	}
	return link.URL, nil
}
