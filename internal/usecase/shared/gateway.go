package shared

import (
	"context"

	"staybook/internal/domain/webhook"

	"github.com/google/uuid"
)

type CheckoutSessionRequest struct {
	BookingID          uuid.UUID
	Description        string
	Currency           string
	Total              int64
	PlatformFee        int64
	DestinationAccount string
	IdempotencyKey     string
}

type CheckoutSessionResult struct {
	SessionRef  string
	RedirectURL string
}

type CheckoutSessionState string

const (
	CheckoutSessionOpen     CheckoutSessionState = "open"
	CheckoutSessionComplete CheckoutSessionState = "complete"
	CheckoutSessionExpired  CheckoutSessionState = "expired"
)

type CheckoutSessionStatus struct {
	SessionRef  string
	RedirectURL string
	State       CheckoutSessionState
}

// PaymentGateway opens hosted checkout sessions with the payment processor.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutSessionRequest) (*CheckoutSessionResult, error)
	GetCheckoutSession(ctx context.Context, sessionRef string) (*CheckoutSessionStatus, error)
}

// PayoutGateway manages owners' sub-merchant accounts on the processor side.
type PayoutGateway interface {
	CreateAccount(ctx context.Context, ownerID uuid.UUID, idempotencyKey string) (string, error)
	CreateOnboardingLink(ctx context.Context, accountRef string) (string, error)
}

// EventVerifier authenticates a raw webhook body and decodes it once.
type EventVerifier interface {
	Verify(payload []byte, signatureHeader string) (webhook.Event, error)
}
