package booking

import (
	"errors"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/pkg/ptr"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("transition not allowed from the current status")
	ErrInvalidGuestCount = errors.New("guest count is outside the property's limits")
	ErrSelfBooking       = errors.New("owner cannot book their own property")
	ErrStayNotFinished   = errors.New("stay has not finished yet")
	ErrEmptySessionRef   = errors.New("session reference is required")
)

// PropertySpec is the slice of catalog data a booking snapshots at creation.
type PropertySpec struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	NightlyRate int64
	CleaningFee int64
	Currency    string
	MaxGuests   int
}

// Booking carries two independent axes. Fulfillment is moved by owner and
// guest actions or by the reconciler; payment only by the reconciler.
type Booking struct {
	id               uuid.UUID
	propertyID       uuid.UUID
	guestID          uuid.UUID
	ownerID          uuid.UUID
	stay             availability.DateRange
	guests           int
	nightlyRate      int64
	cleaningFee      int64
	total            Money
	fulfillment      FulfillmentStatus
	payment          PaymentStatus
	sessionRef       *string
	paymentIntentRef *string
	createdAt        time.Time
	updatedAt        time.Time
}

func New(p PropertySpec, guestID uuid.UUID, stay availability.DateRange, guests int, now time.Time) (*Booking, error) {
	if guestID == p.OwnerID {
		return nil, ErrSelfBooking
	}
	if guests < 1 || (p.MaxGuests > 0 && guests > p.MaxGuests) {
		return nil, ErrInvalidGuestCount
	}

	amount, err := StayTotal(p.NightlyRate, stay.Nights(), p.CleaningFee)
	if err != nil {
		return nil, err
	}
	total, err := NewMoney(amount, p.Currency)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:          uuid.New(),
		propertyID:  p.ID,
		guestID:     guestID,
		ownerID:     p.OwnerID,
		stay:        stay,
		guests:      guests,
		nightlyRate: p.NightlyRate,
		cleaningFee: p.CleaningFee,
		total:       total,
		fulfillment: FulfillmentPending,
		payment:     PaymentUnpaid,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, propertyID, guestID, ownerID uuid.UUID,
	stay availability.DateRange,
	guests int,
	nightlyRate, cleaningFee int64,
	total Money,
	fulfillment FulfillmentStatus,
	payment PaymentStatus,
	sessionRef, paymentIntentRef *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		propertyID:       propertyID,
		guestID:          guestID,
		ownerID:          ownerID,
		stay:             stay,
		guests:           guests,
		nightlyRate:      nightlyRate,
		cleaningFee:      cleaningFee,
		total:            total,
		fulfillment:      fulfillment,
		payment:          payment,
		sessionRef:       sessionRef,
		paymentIntentRef: paymentIntentRef,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) PropertyID() uuid.UUID          { return b.propertyID }
func (b *Booking) GuestID() uuid.UUID             { return b.guestID }
func (b *Booking) OwnerID() uuid.UUID             { return b.ownerID }
func (b *Booking) Stay() availability.DateRange   { return b.stay }
func (b *Booking) Guests() int                    { return b.guests }
func (b *Booking) NightlyRate() int64             { return b.nightlyRate }
func (b *Booking) CleaningFee() int64             { return b.cleaningFee }
func (b *Booking) Total() Money                   { return b.total }
func (b *Booking) Fulfillment() FulfillmentStatus { return b.fulfillment }
func (b *Booking) Payment() PaymentStatus         { return b.payment }
func (b *Booking) SessionRef() *string            { return b.sessionRef }
func (b *Booking) PaymentIntentRef() *string      { return b.paymentIntentRef }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time           { return b.updatedAt }

func (b *Booking) HoldsRange() bool {
	return b.fulfillment.HoldsRange()
}

func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return userID == b.guestID || userID == b.ownerID
}

// PaidWhileCancelled flags money captured for a booking that no longer holds
// its nights. Operators refund these by hand.
func (b *Booking) PaidWhileCancelled() bool {
	return b.fulfillment == FulfillmentCancelled && b.payment == PaymentPaid
}

// Quote recomputes the split from the snapshot taken at creation.
func (b *Booking) Quote(feeBps int64) (Quote, error) {
	return NewQuote(b.nightlyRate, b.stay.Nights(), b.cleaningFee, b.total.Currency(), feeBps)
}

// ---- owner and guest actions ----

// Approve confirms a pending booking without touching its payment status.
func (b *Booking) Approve(now time.Time) error {
	if b.fulfillment != FulfillmentPending || b.payment == PaymentRefunded {
		return ErrInvalidTransition
	}
	b.fulfillment = FulfillmentConfirmed
	b.updatedAt = now
	return nil
}

func (b *Booking) Decline(now time.Time) error {
	return b.cancelPending(now)
}

func (b *Booking) CancelByGuest(now time.Time) error {
	return b.cancelPending(now)
}

// Expire is the operational cleanup for sessions that were never completed.
func (b *Booking) Expire(now time.Time) error {
	return b.cancelPending(now)
}

func (b *Booking) cancelPending(now time.Time) error {
	if b.fulfillment != FulfillmentPending || b.payment == PaymentPaid || b.payment == PaymentRefunded {
		return ErrInvalidTransition
	}
	b.fulfillment = FulfillmentCancelled
	b.updatedAt = now
	return nil
}

// Complete closes a confirmed stay once its checkout date has been reached.
func (b *Booking) Complete(today, now time.Time) error {
	if b.fulfillment != FulfillmentConfirmed {
		return ErrInvalidTransition
	}
	if availability.DateOf(today).Before(b.stay.End()) {
		return ErrStayNotFinished
	}
	b.fulfillment = FulfillmentCompleted
	b.updatedAt = now
	return nil
}

// AttachSession records a newly opened checkout session. Status is unchanged.
func (b *Booking) AttachSession(sessionRef string, now time.Time) error {
	if sessionRef == "" {
		return ErrEmptySessionRef
	}
	if b.fulfillment != FulfillmentPending {
		return ErrInvalidTransition
	}
	b.sessionRef = ptr.To(sessionRef)
	b.updatedAt = now
	return nil
}

// ---- reconciler transitions; each reports whether anything changed ----

// SettlePayment converges on (confirmed, paid) from either pending state.
// A refunded booking stays refunded. The succeeding intent replaces the
// reference left by an earlier failed attempt.
func (b *Booking) SettlePayment(paymentIntentRef string, now time.Time) bool {
	if b.payment == PaymentRefunded {
		return false
	}
	var changed bool
	if b.payment == PaymentPaid {
		changed = b.linkIntent(paymentIntentRef)
	} else {
		changed = b.replaceIntent(paymentIntentRef)
	}
	if b.fulfillment == FulfillmentPending {
		b.fulfillment = FulfillmentConfirmed
		changed = true
	}
	if b.payment != PaymentPaid {
		b.payment = PaymentPaid
		changed = true
	}
	if changed {
		b.updatedAt = now
	}
	return changed
}

// FailPayment marks a failed attempt and keeps the nights held so the guest
// can retry. Failures never override a recorded success or refund.
func (b *Booking) FailPayment(paymentIntentRef string, now time.Time) bool {
	if b.payment == PaymentPaid || b.payment == PaymentRefunded || b.fulfillment.IsTerminal() {
		return false
	}
	changed := b.linkIntent(paymentIntentRef)
	if b.payment != PaymentFailed {
		b.payment = PaymentFailed
		changed = true
	}
	if changed {
		b.updatedAt = now
	}
	return changed
}

// Refund cancels a booking that still holds its nights; a completed stay
// keeps its fulfillment status.
func (b *Booking) Refund(now time.Time) bool {
	if b.payment == PaymentRefunded {
		return false
	}
	b.payment = PaymentRefunded
	if b.fulfillment.HoldsRange() {
		b.fulfillment = FulfillmentCancelled
	}
	b.updatedAt = now
	return true
}

func (b *Booking) replaceIntent(ref string) bool {
	if ref == "" || ptr.Deref(b.paymentIntentRef) == ref {
		return false
	}
	b.paymentIntentRef = ptr.To(ref)
	return true
}

func (b *Booking) linkIntent(ref string) bool {
	if ref == "" || b.paymentIntentRef != nil {
		return false
	}
	b.paymentIntentRef = ptr.To(ref)
	return true
}
