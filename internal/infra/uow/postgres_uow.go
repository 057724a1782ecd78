package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"staybook/internal/infra/readstore"
	"staybook/internal/infra/repository"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/metrics"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
	maxRetries                    = 3
	retryBase                     = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn under READ COMMITTED. Occupancy is guarded by the
// booking_nights primary key, so no stronger isolation is needed.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt gets its own transaction and rolls it back before sleeping,
// so a retry never holds the previous connection.
func (u *PostgresUoW) runInTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	var err error
	for attempt := range maxRetries + 1 {
		if err = u.attempt(ctx, options, fn); err == nil {
			return nil
		}

		reason := retryReason(err)
		if reason == "" {
			return err
		}
		metrics.TxRetriesTotal.WithLabelValues(reason).Inc()
		if attempt == maxRetries {
			break
		}

		wait := calculateBackoff(attempt, retryBase)
		slog.Warn("retrying transaction",
			"reason", reason,
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.Error("transaction failed after max retries", "attempts", maxRetries+1, "error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", "error", rbErr.Error())
	}
	return err
}

// calculateBackoff doubles base per attempt and adds up to 20% jitter.
func calculateBackoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	if spread := int64(wait / 5); spread > 0 {
		wait += time.Duration(rand.Int64N(spread))
	}
	return wait
}

// retryReason names the transient Postgres failure behind err, or returns ""
// when retrying would not help.
func retryReason(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure:
		return "serialization_failure"
	case pgErrCodeDeadlockDetected:
		return "deadlock"
	default:
		return ""
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo      shared.BookingRepository
	availabilityRepo shared.AvailabilityRepository
	transactionRepo  shared.TransactionRepository
	payoutRepo       shared.PayoutAccountRepository
	webhookRepo      shared.WebhookEventRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Availability() shared.AvailabilityRepository {
	if t.availabilityRepo == nil {
		t.availabilityRepo = repository.NewAvailabilityRepository(t.uow.q)
	}
	return t.availabilityRepo
}

func (t *pgTx) Transactions() shared.TransactionRepository {
	if t.transactionRepo == nil {
		t.transactionRepo = repository.NewTransactionRepository(t.uow.q)
	}
	return t.transactionRepo
}

func (t *pgTx) PayoutAccounts() shared.PayoutAccountRepository {
	if t.payoutRepo == nil {
		t.payoutRepo = repository.NewPayoutAccountRepository(t.uow.q)
	}
	return t.payoutRepo
}

func (t *pgTx) WebhookEvents() shared.WebhookEventRepository {
	if t.webhookRepo == nil {
		t.webhookRepo = repository.NewWebhookEventRepository(t.uow.q)
	}
	return t.webhookRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{uow: t.uow, dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	propertyStore *readstore.PropertyReadStore
}

func (r *commandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	if r.propertyStore == nil {
		r.propertyStore = readstore.NewPropertyReadStore(r.uow.q, r.dbtx)
	}

	row, err := r.propertyStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.PropertySnapshot{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		NightlyRate: row.NightlyRateCents,
		CleaningFee: row.CleaningFeeCents,
		Currency:    row.Currency,
		MaxGuests:   int(row.MaxGuests),
	}, nil
}
