//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"staybook/internal/domain/availability"
	"staybook/internal/infra"
	"staybook/internal/infra/repository"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/pkg/pgconv"
	repositorymock "staybook/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityRepository(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	rng, err := availability.ParseDateRange("2030-07-01", "2030-07-04")
	require.NoError(t, err)

	t.Run("SetDays writes the whole batch in one statement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAvailabilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAvailabilityRepository(mockQueries)

		mockQueries.EXPECT().UpsertAvailabilityDays(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpsertAvailabilityDaysParams) (int64, error) {
				assert.Len(t, arg.Days, 3)
				assert.False(t, arg.IsOpen)
				return int64(len(arg.Days)), nil
			})

		assert.NoError(t, repo.SetDays(ctx, mockDB, propertyID, rng.Dates(), false, now))
	})

	t.Run("SetDays on an unknown property is NOT_FOUND", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAvailabilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAvailabilityRepository(mockQueries)

		mockQueries.EXPECT().UpsertAvailabilityDays(ctx, mockDB, gomock.Any()).Return(int64(0), &pgconn.PgError{Code: "23503"})

		err := repo.SetDays(ctx, mockDB, propertyID, rng.Dates(), true, now)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("BookedNights converts dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockAvailabilityQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewAvailabilityRepository(mockQueries)

		exclude := uuid.New()
		night := pgconv.DateToPgtype(rng.Start())
		mockQueries.EXPECT().ListBookedNights(ctx, mockDB, sqlc.ListBookedNightsParams{
			PropertyID:       propertyID,
			StartDate:        pgconv.DateToPgtype(rng.Start()),
			EndDate:          pgconv.DateToPgtype(rng.End()),
			ExcludeBookingID: exclude,
		}).Return([]pgtype.Date{night}, nil)

		nights, err := repo.BookedNights(ctx, mockDB, propertyID, rng, exclude)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{rng.Start()}, nights)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
