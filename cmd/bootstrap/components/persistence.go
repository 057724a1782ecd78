package components

import (
	"staybook/internal/infra/readstore"
	"staybook/internal/infra/repository"
	sqlc "staybook/internal/infra/sqlc/generated"
	"staybook/internal/infra/uow"
	"staybook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work;
// only the read stores and the unit of work itself live in the container.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Property
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PropertyQueries)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyReadStore)),
		),
		// Availability
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.AvailabilityQueries)),
		),
		fx.Annotate(
			readstore.NewAvailabilityReadStore,
			fx.As(new(queries.AvailabilityReadStore)),
		),
		// Payout
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PayoutAccountViewQueries)),
		),
		fx.Annotate(
			readstore.NewPayoutReadStore,
			fx.As(new(queries.PayoutReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
