package response

import (
	"time"

	"staybook/internal/usecase/commands"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID `json:"id"`
	PropertyID        uuid.UUID `json:"propertyId"`
	PropertyTitle     string    `json:"propertyTitle"`
	GuestID           uuid.UUID `json:"guestId"`
	OwnerID           uuid.UUID `json:"ownerId"`
	CheckIn           string    `json:"checkIn"`
	CheckOut          string    `json:"checkOut"`
	Nights            int       `json:"nights"`
	Guests            int       `json:"guests"`
	TotalCents        int64     `json:"totalCents"`
	Currency          string    `json:"currency"`
	FulfillmentStatus string    `json:"fulfillmentStatus"`
	PaymentStatus     string    `json:"paymentStatus"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type BookingCreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type CheckoutSessionResponse struct {
	BookingID        uuid.UUID `json:"bookingId"`
	SessionRef       string    `json:"sessionRef"`
	RedirectURL      string    `json:"redirectUrl"`
	TotalCents       int64     `json:"totalCents"`
	PlatformFeeCents int64     `json:"platformFeeCents"`
	OwnerPayoutCents int64     `json:"ownerPayoutCents"`
	Currency         string    `json:"currency"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                v.ID,
		PropertyID:        v.PropertyID,
		PropertyTitle:     v.PropertyTitle,
		GuestID:           v.GuestID,
		OwnerID:           v.OwnerID,
		CheckIn:           v.CheckIn,
		CheckOut:          v.CheckOut,
		Nights:            v.Nights,
		Guests:            v.Guests,
		TotalCents:        v.TotalCents,
		Currency:          v.Currency,
		FulfillmentStatus: v.FulfillmentStatus,
		PaymentStatus:     v.PaymentStatus,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}

func FromCheckoutSession(s *commands.CheckoutSession) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		BookingID:        s.BookingID,
		SessionRef:       s.SessionRef,
		RedirectURL:      s.RedirectURL,
		TotalCents:       s.Quote.Total,
		PlatformFeeCents: s.Quote.PlatformFee,
		OwnerPayoutCents: s.Quote.DestinationAmount,
		Currency:         s.Quote.Currency,
	}
}
