package stripe

import (
	"encoding/json"
	"time"

	domwebhook "staybook/internal/domain/webhook"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

var ErrMissingSignature = errs.New("missing signature header")

// EventVerifier checks the Stripe-Signature header against the endpoint
// secret and decodes the event into the closed domain variant.
type EventVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewEventVerifier(cfg config.StripeConfig) *EventVerifier {
	return &EventVerifier{secret: cfg.WebhookSecret, tolerance: cfg.WebhookTolerance}
}

func (v *EventVerifier) Verify(payload []byte, signatureHeader string) (domwebhook.Event, error) {
	if signatureHeader == "" {
		return nil, ErrMissingSignature
	}

	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		Tolerance:                v.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Wrap(err, "verify webhook signature")
	}
	return decodeEvent(ev)
}

// decodeEvent maps the kinds the reconciler handles; everything else becomes
// Unknown. A known kind whose object cannot be decoded is a validation error:
// the signature was fine, the body is not something a retry will fix.
func decodeEvent(ev stripeapi.Event) (domwebhook.Event, error) {
	header := domwebhook.Header{ID: ev.ID, Type: string(ev.Type)}
	if ev.Created > 0 {
		header.Created = time.Unix(ev.Created, 0).UTC()
	}
	if ev.Data == nil {
		return domwebhook.Unknown{Header: header}, nil
	}

	switch domwebhook.Kind(ev.Type) {
	case domwebhook.KindCheckoutSessionCompleted:
		var s stripeapi.CheckoutSession
		if err := decodeObject(ev, &s); err != nil {
			return nil, err
		}
		out := domwebhook.CheckoutSessionCompleted{
			Header:        header,
			SessionRef:    s.ID,
			BookingID:     bookingIDFrom(s.Metadata, s.ClientReferenceID),
			Amount:        s.AmountTotal,
			Currency:      string(s.Currency),
			PaymentIsPaid: s.PaymentStatus == stripeapi.CheckoutSessionPaymentStatusPaid,
		}
		if s.PaymentIntent != nil {
			out.PaymentIntentRef = s.PaymentIntent.ID
		}
		return out, nil

	case domwebhook.KindPaymentSucceeded:
		var pi stripeapi.PaymentIntent
		if err := decodeObject(ev, &pi); err != nil {
			return nil, err
		}
		return domwebhook.PaymentSucceeded{
			Header:           header,
			PaymentIntentRef: pi.ID,
			BookingID:        bookingIDFrom(pi.Metadata, ""),
			Amount:           pi.Amount,
			Currency:         string(pi.Currency),
		}, nil

	case domwebhook.KindPaymentFailed:
		var pi stripeapi.PaymentIntent
		if err := decodeObject(ev, &pi); err != nil {
			return nil, err
		}
		out := domwebhook.PaymentFailed{
			Header:           header,
			PaymentIntentRef: pi.ID,
			BookingID:        bookingIDFrom(pi.Metadata, ""),
			Amount:           pi.Amount,
			Currency:         string(pi.Currency),
		}
		if pi.LastPaymentError != nil {
			out.Reason = pi.LastPaymentError.Msg
		}
		return out, nil

	case domwebhook.KindAccountUpdated:
		var a stripeapi.Account
		if err := decodeObject(ev, &a); err != nil {
			return nil, err
		}
		return domwebhook.AccountUpdated{
			Header:           header,
			AccountRef:       a.ID,
			DetailsSubmitted: a.DetailsSubmitted,
			ChargesEnabled:   a.ChargesEnabled,
			PayoutsEnabled:   a.PayoutsEnabled,
		}, nil

	case domwebhook.KindChargeRefunded:
		var ch stripeapi.Charge
		if err := decodeObject(ev, &ch); err != nil {
			return nil, err
		}
		out := domwebhook.ChargeRefunded{
			Header:         header,
			AmountRefunded: ch.AmountRefunded,
			FullyRefunded:  ch.Refunded,
		}
		if ch.PaymentIntent != nil {
			out.PaymentIntentRef = ch.PaymentIntent.ID
		}
		return out, nil

	default:
		return domwebhook.Unknown{Header: header}, nil
	}
}

func decodeObject(ev stripeapi.Event, into any) error {
	if err := json.Unmarshal(ev.Data.Raw, into); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s object", ev.Type), errs.ErrValidation)
	}
	return nil
}

func bookingIDFrom(metadata map[string]string, fallback string) uuid.UUID {
	raw := metadata[metadataBookingID]
	if raw == "" {
		raw = fallback
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
