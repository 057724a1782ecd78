package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookingView struct {
	ID                uuid.UUID `json:"id"`
	PropertyID        uuid.UUID `json:"property_id"`
	PropertyTitle     string    `json:"property_title"`
	GuestID           uuid.UUID `json:"guest_id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	CheckIn           string    `json:"check_in"`
	CheckOut          string    `json:"check_out"`
	Nights            int       `json:"nights"`
	Guests            int       `json:"guests"`
	TotalCents        int64     `json:"total_cents"`
	Currency          string    `json:"currency"`
	FulfillmentStatus string    `json:"fulfillment_status"`
	PaymentStatus     string    `json:"payment_status"`
	SessionRef        *string   `json:"session_ref,omitempty"`
	PaymentIntentRef  *string   `json:"payment_intent_ref,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type PropertyView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	MaxGuests int       `json:"max_guests"`
}

// DayView is one calendar day as the presentation layer renders it.
type DayView struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type PayoutStatusView struct {
	HasAccount     bool    `json:"has_account"`
	AccountRef     *string `json:"account_ref,omitempty"`
	IsComplete     bool    `json:"is_complete"`
	ChargesEnabled bool    `json:"charges_enabled"`
	PayoutsEnabled bool    `json:"payouts_enabled"`
}
