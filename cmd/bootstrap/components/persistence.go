package components

import (
	"dh-booking/internal/infra/memstore"
	"dh-booking/internal/infra/notification"
	"dh-booking/internal/infra/pgsql"
	"dh-booking/internal/infra/readstore"
	"dh-booking/internal/infra/repository"
	"dh-booking/internal/infra/uow"
	"dh-booking/internal/pkg/config"
	"dh-booking/internal/usecase/queries"
	"dh-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PostgresPersistenceModule = fx.Module("persistence/postgres",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Rating
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RatingReadQueries)),
		),
		fx.Annotate(
			readstore.NewRatingReadStore,
			fx.As(new(queries.RatingReadStore)),
		),
		// Product directory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(shared.ProductDirectory)),
		),
		// User directory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(shared.UserDirectory)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Notification outbox
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notification.JobWriter)),
		),
		fx.Annotate(
			notification.NewOutboxNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		NewMemoryStore,
		fx.Annotate(
			func(s *memstore.Store) *memstore.Store { return s },
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			memstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			memstore.NewRatingReadStore,
			fx.As(new(queries.RatingReadStore)),
		),
		fx.Annotate(
			memstore.NewProductDirectory,
			fx.As(new(shared.ProductDirectory)),
		),
		fx.Annotate(
			memstore.NewUserDirectory,
			fx.As(new(shared.UserDirectory)),
		),
		fx.Annotate(
			notification.NewLogNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgsql.Queries {
	return pgsql.New()
}

func NewDBTX(pool *pgxpool.Pool) pgsql.DBTX {
	return pool
}

func NewMemoryStore(cfg config.Config) (*memstore.Store, error) {
	s := memstore.New()
	if cfg.Store.SeedFile != "" {
		if err := s.LoadSeedFile(cfg.Store.SeedFile); err != nil {
			return nil, err
		}
	}
	return s, nil
}
