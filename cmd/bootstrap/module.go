package bootstrap

import (
	"staybook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the full server graph. Infra lists what the CLI needs without the
// HTTP layer or the scheduler.
var (
	Infra = fx.Options(
		ConfigModule,
		LoggerModule,
		DBModule,
		JWTModule,
		StripeModule,
		components.PersistenceModule,
		components.UseCaseModule,
	)

	Module = fx.Options(
		Infra,
		components.HandlerModule,
		SchedulerModule,
	)
)
