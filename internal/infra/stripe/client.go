package stripe

import (
	"staybook/internal/pkg/config"

	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

const metadataBookingID = "booking_id"

// Gateway is the processor adapter for checkout sessions and connected
// payout accounts.
type Gateway struct {
	api *client.API
	cfg config.StripeConfig
}

func NewGateway(cfg config.StripeConfig) *Gateway {
	return NewGatewayWithBackends(cfg, nil)
}

// NewGatewayWithBackends points the client at custom backends; nil keeps the
// processor defaults.
func NewGatewayWithBackends(cfg config.StripeConfig, backends *stripeapi.Backends) *Gateway {
	return &Gateway{
		api: client.New(cfg.SecretKey, backends),
		cfg: cfg,
	}
}
