package stripe

import (
	"context"

	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	stripeapi "github.com/stripe/stripe-go/v79"
)

// CreateCheckoutSession opens a hosted payment page for the whole stay. The
// platform fee is kept as an application fee and the remainder is
// transferred to the owner's connected account.
func (g *Gateway) CreateCheckoutSession(ctx context.Context, req shared.CheckoutSessionRequest) (*shared.CheckoutSessionResult, error) {
	bookingID := req.BookingID.String()

	params := &stripeapi.CheckoutSessionParams{
		Mode:              stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		SuccessURL:        stripeapi.String(g.cfg.SuccessURL),
		CancelURL:         stripeapi.String(g.cfg.CancelURL),
		ClientReferenceID: stripeapi.String(bookingID),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripeapi.String(req.Currency),
					UnitAmount: stripeapi.Int64(req.Total),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeapi.String(req.Description),
					},
				},
				Quantity: stripeapi.Int64(1),
			},
		},
		PaymentIntentData: &stripeapi.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripeapi.Int64(req.PlatformFee),
			TransferData: &stripeapi.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripeapi.String(req.DestinationAccount),
			},
			Metadata: map[string]string{metadataBookingID: bookingID},
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, bookingID)
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	session, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "create checkout session")
	}
	return &shared.CheckoutSessionResult{
		SessionRef:  session.ID,
		RedirectURL: session.URL,
	}, nil
}

// GetCheckoutSession reports whether a previously opened session can still
// take a payment.
func (g *Gateway) GetCheckoutSession(ctx context.Context, sessionRef string) (*shared.CheckoutSessionStatus, error) {
	params := &stripeapi.CheckoutSessionParams{}
	params.Context = ctx

	session, err := g.api.CheckoutSessions.Get(sessionRef, params)
	if err != nil {
		return nil, errs.Wrapf(err, "get checkout session %s", sessionRef)
	}
	return &shared.CheckoutSessionStatus{
		SessionRef:  session.ID,
		RedirectURL: session.URL,
		State:       shared.CheckoutSessionState(session.Status),
	}, nil
}
