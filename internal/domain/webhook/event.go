package webhook

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCheckoutSessionCompleted Kind = "checkout.session.completed"
	KindPaymentSucceeded         Kind = "payment_intent.succeeded"
	KindPaymentFailed            Kind = "payment_intent.payment_failed"
	KindAccountUpdated           Kind = "account.updated"
	KindChargeRefunded           Kind = "charge.refunded"
	KindUnknown                  Kind = "unknown"
)

func (k Kind) String() string {
	return string(k)
}

// Event is the closed set of notifications the reconciler understands. It is
// decoded once at the boundary; anything unrecognised becomes Unknown.
type Event interface {
	EventID() string
	Kind() Kind
	sealed()
}

// Header is the part every notification shares.
type Header struct {
	ID string
	// Type is the sender's raw type string, kept for logging.
	Type string
	// Created is when the sender emitted the event; zero when it did not say.
	Created time.Time
}

func (h Header) EventID() string { return h.ID }
func (Header) sealed()           {}

type CheckoutSessionCompleted struct {
	Header
	SessionRef       string
	PaymentIntentRef string
	// BookingID comes from session metadata; uuid.Nil when absent.
	BookingID     uuid.UUID
	Amount        int64
	Currency      string
	PaymentIsPaid bool
}

func (CheckoutSessionCompleted) Kind() Kind { return KindCheckoutSessionCompleted }

type PaymentSucceeded struct {
	Header
	PaymentIntentRef string
	BookingID        uuid.UUID
	Amount           int64
	Currency         string
}

func (PaymentSucceeded) Kind() Kind { return KindPaymentSucceeded }

type PaymentFailed struct {
	Header
	PaymentIntentRef string
	BookingID        uuid.UUID
	Amount           int64
	Currency         string
	Reason           string
}

func (PaymentFailed) Kind() Kind { return KindPaymentFailed }

type AccountUpdated struct {
	Header
	AccountRef       string
	DetailsSubmitted bool
	ChargesEnabled   bool
	PayoutsEnabled   bool
}

func (AccountUpdated) Kind() Kind { return KindAccountUpdated }

type ChargeRefunded struct {
	Header
	PaymentIntentRef string
	AmountRefunded   int64
	FullyRefunded    bool
}

func (ChargeRefunded) Kind() Kind { return KindChargeRefunded }

type Unknown struct {
	Header
}

func (Unknown) Kind() Kind { return KindUnknown }

// Outcome is what the reconciler did with one delivery.
type Outcome string

const (
	OutcomeApplied   Outcome = "applied"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeStale     Outcome = "stale"
	OutcomeIgnored   Outcome = "ignored"
)

func (o Outcome) String() string {
	return string(o)
}
