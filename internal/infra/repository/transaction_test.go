//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staybook/internal/domain/payment"
	"staybook/internal/infra"
	"staybook/internal/infra/repository"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	repositorymock "staybook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Save upserts by payment intent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries)

		txn, err := payment.New(uuid.New(), "pi_123", 20000, "usd", payment.StatusSucceeded, now)
		require.NoError(t, err)

		mockQueries.EXPECT().UpsertTransaction(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertTransactionParams) error {
				assert.Equal(t, "pi_123", arg.PaymentIntentRef)
				assert.Equal(t, "succeeded", arg.Status)
				assert.Equal(t, int64(20000), arg.AmountCents)
				return nil
			})

		assert.NoError(t, repo.Save(ctx, mockDB, txn))
	})

	t.Run("Save wraps driver failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries)

		txn, err := payment.New(uuid.New(), "pi_123", 0, "", payment.StatusFailed, now)
		require.NoError(t, err)

		mockQueries.EXPECT().UpsertTransaction(ctx, mockDB, gomock.Any()).Return(errors.New("connection reset"))

		err = repo.Save(ctx, mockDB, txn)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("GetByIntentRefForUpdate maps rows and misses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockTransactionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewTransactionRepository(mockQueries)

		row := sqlc.Transactions{
			ID:               uuid.New(),
			BookingID:        uuid.New(),
			PaymentIntentRef: "pi_found",
			AmountCents:      20000,
			Currency:         "usd",
			Status:           "refunded",
			CreatedAt:        pgconv.TimeToPgtype(now),
			UpdatedAt:        pgconv.TimeToPgtype(now),
		}
		mockQueries.EXPECT().GetTransactionByIntentRefForUpdate(ctx, mockDB, "pi_found").Return(row, nil)
		mockQueries.EXPECT().GetTransactionByIntentRefForUpdate(ctx, mockDB, "pi_missing").Return(sqlc.Transactions{}, pgx.ErrNoRows)

		got, err := repo.GetByIntentRefForUpdate(ctx, mockDB, "pi_found")
		require.NoError(t, err)
		assert.Equal(t, payment.StatusRefunded, got.Status())
		assert.Equal(t, row.BookingID, got.BookingID())

		_, err = repo.GetByIntentRefForUpdate(ctx, mockDB, "pi_missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
