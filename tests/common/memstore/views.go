//go:build unit

package memstore

import (
	"context"
	"sort"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	"staybook/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingViews adapts the store to queries.BookingReadStore.
func (s *Store) BookingViews() queries.BookingReadStore { return &bookingViews{s} }

// Properties adapts the store to queries.PropertyReadStore.
func (s *Store) Properties() queries.PropertyReadStore { return &propertyViews{s} }

// Calendar adapts the store to queries.AvailabilityReadStore.
func (s *Store) Calendar() queries.AvailabilityReadStore { return &calendarViews{s} }

// PayoutViews adapts the store to queries.PayoutReadStore.
func (s *Store) PayoutViews() queries.PayoutReadStore { return &payoutViews{s} }

type bookingViews struct{ s *Store }

func (v *bookingViews) FindByID(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	b, ok := v.s.state.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return v.view(b), nil
}

func (v *bookingViews) ListByGuest(_ context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return v.list(limit, func(b *booking.Booking) bool { return b.GuestID() == guestID }), nil
}

func (v *bookingViews) ListByOwner(_ context.Context, ownerID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	return v.list(limit, func(b *booking.Booking) bool { return b.OwnerID() == ownerID }), nil
}

func (v *bookingViews) list(limit int32, match func(*booking.Booking) bool) []*queries.BookingView {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var matched []*booking.Booking
	for _, b := range v.s.state.bookings {
		if match(b) {
			matched = append(matched, b)
		}
	}
	// newest first, like the SQL listing
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt().After(matched[j].CreatedAt()) })
	out := make([]*queries.BookingView, 0, len(matched))
	for _, b := range matched {
		if int32(len(out)) >= limit {
			break
		}
		out = append(out, v.view(b))
	}
	return out
}

func (v *bookingViews) view(b *booking.Booking) *queries.BookingView {
	return &queries.BookingView{
		ID:                b.ID(),
		PropertyID:        b.PropertyID(),
		PropertyTitle:     v.s.state.properties[b.PropertyID()].Title,
		GuestID:           b.GuestID(),
		OwnerID:           b.OwnerID(),
		CheckIn:           availability.FormatDate(b.Stay().Start()),
		CheckOut:          availability.FormatDate(b.Stay().End()),
		Nights:            b.Stay().Nights(),
		Guests:            b.Guests(),
		TotalCents:        b.Total().Amount(),
		Currency:          b.Total().Currency(),
		FulfillmentStatus: b.Fulfillment().String(),
		PaymentStatus:     b.Payment().String(),
		SessionRef:        copyStr(b.SessionRef()),
		PaymentIntentRef:  copyStr(b.PaymentIntentRef()),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}
}

type propertyViews struct{ s *Store }

func (v *propertyViews) FindByID(_ context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	p, ok := v.s.state.properties[id]
	if !ok {
		return nil, notFound("property not found")
	}
	return &queries.PropertyView{ID: p.ID, OwnerID: p.OwnerID, Title: p.Title, MaxGuests: p.MaxGuests}, nil
}

type calendarViews struct{ s *Store }

func (v *calendarViews) BlockedDays(_ context.Context, propertyID uuid.UUID, rng availability.DateRange) ([]time.Time, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return blockedDays(v.s.state, propertyID, rng), nil
}

func (v *calendarViews) BookedNights(_ context.Context, propertyID uuid.UUID, rng availability.DateRange) ([]time.Time, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return bookedNights(v.s.state, propertyID, rng, uuid.Nil), nil
}

type payoutViews struct{ s *Store }

func (v *payoutViews) FindByOwner(_ context.Context, ownerID uuid.UUID) (*queries.PayoutStatusView, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	a, ok := v.s.state.payouts[ownerID]
	if !ok {
		return nil, notFound("payout account not found")
	}
	return &queries.PayoutStatusView{
		HasAccount:     a.HasExternalRef(),
		AccountRef:     copyStr(a.ExternalRef()),
		IsComplete:     a.OnboardingComplete(),
		ChargesEnabled: a.ChargesEnabled(),
		PayoutsEnabled: a.PayoutsEnabled(),
	}, nil
}
