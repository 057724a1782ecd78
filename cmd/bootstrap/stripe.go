package bootstrap

import (
	"staybook/internal/infra/stripe"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"go.uber.org/fx"
)

var StripeModule = fx.Module("stripe",
	fx.Provide(
		func(cfg config.Config) config.StripeConfig {
			return cfg.Stripe
		},
		fx.Annotate(
			stripe.NewGateway,
			fx.As(new(shared.PaymentGateway)),
			fx.As(new(shared.PayoutGateway)),
		),
		fx.Annotate(
			stripe.NewEventVerifier,
			fx.As(new(shared.EventVerifier)),
		),
	),
)
