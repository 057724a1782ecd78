package components

import (
	"staybook/internal/handler"
	"staybook/internal/handler/api"
	"staybook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewPayoutHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, a *api.AvailabilityHandler, p *api.PayoutHandler, w *api.WebhookHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Availability: a, Payout: p, Webhook: w}
		},
	),
	fx.Invoke(handler.NewRouter),
)
