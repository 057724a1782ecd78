package shared

import (
	"context"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/domain/booking"
	"staybook/internal/domain/payment"
	"staybook/internal/domain/payout"
	"staybook/internal/domain/webhook"
	sqlc "staybook/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Availability() AvailabilityRepository
	Transactions() TransactionRepository
	PayoutAccounts() PayoutAccountRepository
	WebhookEvents() WebhookEventRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
}

// BookingRepository is the only writer of booking_nights. Create reserves the
// stay and Save releases it as soon as the booking stops holding its range.
type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error)
	FindBySessionRefForUpdate(ctx context.Context, tx sqlc.DBTX, sessionRef string) (*booking.Booking, error)
	FindByPaymentIntentRefForUpdate(ctx context.Context, tx sqlc.DBTX, paymentIntentRef string) (*booking.Booking, error)
	Save(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	ListCompletable(ctx context.Context, tx sqlc.DBTX, today time.Time, limit int32) ([]uuid.UUID, error)
	ListStalePending(ctx context.Context, tx sqlc.DBTX, createdBefore time.Time, limit int32) ([]uuid.UUID, error)
}

type AvailabilityRepository interface {
	BlockedDays(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, r availability.DateRange) ([]time.Time, error)
	// BookedNights lists occupied nights in r, ignoring the nights held by excludeBookingID.
	BookedNights(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, r availability.DateRange, excludeBookingID uuid.UUID) ([]time.Time, error)
	SetDays(ctx context.Context, tx sqlc.DBTX, propertyID uuid.UUID, days []time.Time, isOpen bool, now time.Time) error
}

type TransactionRepository interface {
	GetByIntentRefForUpdate(ctx context.Context, tx sqlc.DBTX, paymentIntentRef string) (*payment.Transaction, error)
	Save(ctx context.Context, tx sqlc.DBTX, t *payment.Transaction) error
}

type PayoutAccountRepository interface {
	InsertIfAbsent(ctx context.Context, tx sqlc.DBTX, a *payout.Account) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*payout.Account, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, ownerID uuid.UUID) (*payout.Account, error)
	GetByExternalRefForUpdate(ctx context.Context, tx sqlc.DBTX, externalRef string) (*payout.Account, error)
	Save(ctx context.Context, tx sqlc.DBTX, a *payout.Account) error
}

type WebhookEventRepository interface {
	// Record returns false when the event id was already recorded.
	Record(ctx context.Context, tx sqlc.DBTX, eventID string, kind webhook.Kind, receivedAt time.Time) (bool, error)
	SetOutcome(ctx context.Context, tx sqlc.DBTX, eventID string, outcome webhook.Outcome, processedAt time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
