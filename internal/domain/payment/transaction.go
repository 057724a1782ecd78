package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingIntentRef = errors.New("payment intent reference is required")
	ErrInvalidStatus    = errors.New("invalid transaction status")
)

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSucceeded, StatusFailed, StatusRefunded:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// rank orders statuses so that a lower-ranked notification never overwrites
// a higher-ranked one: succeeded is sticky against failed, refunded is final.
func (s Status) rank() int {
	switch s {
	case StatusFailed:
		return 1
	case StatusSucceeded:
		return 2
	case StatusRefunded:
		return 3
	default:
		return 0
	}
}

// Transaction is one row per payment intent, kept for audit and disputes
// independently of the booking's own payment status.
type Transaction struct {
	id               uuid.UUID
	bookingID        uuid.UUID
	paymentIntentRef string
	amount           int64
	refundedAmount   int64
	currency         string
	status           Status
	createdAt        time.Time
	updatedAt        time.Time
}

func New(bookingID uuid.UUID, paymentIntentRef string, amount int64, currency string, status Status, now time.Time) (*Transaction, error) {
	if paymentIntentRef == "" {
		return nil, ErrMissingIntentRef
	}
	if status.rank() == 0 {
		return nil, ErrInvalidStatus
	}
	return &Transaction{
		id:               uuid.New(),
		bookingID:        bookingID,
		paymentIntentRef: paymentIntentRef,
		amount:           amount,
		currency:         currency,
		status:           status,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func Reconstruct(id, bookingID uuid.UUID, paymentIntentRef string, amount, refundedAmount int64, currency string, status Status, createdAt, updatedAt time.Time) *Transaction {
	return &Transaction{
		id:               id,
		bookingID:        bookingID,
		paymentIntentRef: paymentIntentRef,
		amount:           amount,
		refundedAmount:   refundedAmount,
		currency:         currency,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (t *Transaction) ID() uuid.UUID            { return t.id }
func (t *Transaction) BookingID() uuid.UUID     { return t.bookingID }
func (t *Transaction) PaymentIntentRef() string { return t.paymentIntentRef }
func (t *Transaction) Amount() int64            { return t.amount }
func (t *Transaction) RefundedAmount() int64    { return t.refundedAmount }
func (t *Transaction) Currency() string         { return t.currency }
func (t *Transaction) Status() Status           { return t.status }
func (t *Transaction) CreatedAt() time.Time     { return t.createdAt }
func (t *Transaction) UpdatedAt() time.Time     { return t.updatedAt }

// Apply moves the row to status when that does not regress it. Amount and
// currency fill in if the first notification did not carry them.
func (t *Transaction) Apply(status Status, amount int64, currency string, now time.Time) bool {
	changed := false
	if t.amount == 0 && amount > 0 {
		t.amount = amount
		changed = true
	}
	if t.currency == "" && currency != "" {
		t.currency = currency
		changed = true
	}
	if status.rank() > t.status.rank() {
		t.status = status
		changed = true
	}
	if changed {
		t.updatedAt = now
	}
	return changed
}

// IsStaleFailure reports whether a failure notification arrives after the
// intent already succeeded or was refunded.
func (t *Transaction) IsStaleFailure() bool {
	return t.status.rank() > StatusFailed.rank()
}

// RecordRefund accumulates refunded amounts; a full refund flips the status.
func (t *Transaction) RecordRefund(refundedTotal int64, full bool, now time.Time) bool {
	changed := false
	if refundedTotal > t.refundedAmount {
		t.refundedAmount = refundedTotal
		changed = true
	}
	if full && t.status != StatusRefunded {
		t.status = StatusRefunded
		changed = true
	}
	if changed {
		t.updatedAt = now
	}
	return changed
}

func (t *Transaction) FullyRefunded() bool {
	return t.status == StatusRefunded
}
