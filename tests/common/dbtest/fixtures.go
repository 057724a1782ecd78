//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type PropertyFixture struct {
	OwnerID     uuid.UUID
	Title       string
	NightlyRate int64
	CleaningFee int64
	Currency    string
	MaxGuests   int
}

func DefaultProperty(ownerID uuid.UUID) PropertyFixture {
	return PropertyFixture{
		OwnerID:     ownerID,
		Title:       "Seaside Cottage",
		NightlyRate: 4000,
		CleaningFee: 4000,
		Currency:    "usd",
		MaxGuests:   4,
	}
}

// CreateTestProperty inserts a catalog row; the catalog itself lives outside
// this service.
func CreateTestProperty(t *testing.T, db DBLike, p PropertyFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO properties (id, owner_id, title, nightly_rate_cents, cleaning_fee_cents, currency, max_guests)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, p.OwnerID, p.Title, p.NightlyRate, p.CleaningFee, p.Currency, p.MaxGuests)
	require.NoError(t, err)
	return id
}

// CreateReadyPayoutAccount gives ownerID an onboarded account that can take
// charges and payouts.
func CreateReadyPayoutAccount(t *testing.T, db DBLike, ownerID uuid.UUID, externalRef string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO payout_accounts (owner_id, external_ref, onboarding_complete, charges_enabled, payouts_enabled)
		VALUES ($1, $2, true, true, true)`,
		ownerID, externalRef)
	require.NoError(t, err)
}

func CountBookingNights(t *testing.T, db DBLike, bookingID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_nights WHERE booking_id = $1", bookingID).Scan(&n)
	require.NoError(t, err)
	return n
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) (fulfillment, payment string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT fulfillment_status, payment_status FROM bookings WHERE id = $1", bookingID).
		Scan(&fulfillment, &payment)
	require.NoError(t, err)
	return fulfillment, payment
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table; the goose version table is kept
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
