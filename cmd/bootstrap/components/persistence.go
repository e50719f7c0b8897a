package components

import (
	"context"
	"fmt"
	"log/slog"

	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra/db"
	"guesthouse-booking/internal/infra/memstore"
	"guesthouse-booking/internal/infra/repository"
	"guesthouse-booking/internal/infra/uow"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		room.DefaultCatalog,
		NewRepositories,
	),
)

// Repositories is filled from a single storage driver so the two backends
// are never mixed.
type Repositories struct {
	fx.Out

	Availability shared.AvailabilityRepository
	Pricing      shared.PricingRepository
	Promos       shared.PromoRepository
	Contacts     shared.ContactRepository
	Users        shared.UserRepository
}

func NewRepositories(lc fx.Lifecycle, cfg config.Config, catalog *room.Catalog, logger *slog.Logger) (Repositories, error) {
	switch cfg.Storage.Driver {
	case DriverPostgres:
		return newPostgresRepositories(lc, cfg.DB, catalog, logger)
	case DriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return newMemoryRepositories(catalog, logger), nil
	default:
		return Repositories{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}

func newPostgresRepositories(lc fx.Lifecycle, cfg config.DBConfig, catalog *room.Catalog, logger *slog.Logger) (Repositories, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg)
	if err != nil {
		return Repositories{}, err
	}
	u := uow.NewPostgresUoW(pool, logger)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repository.SyncCatalog(ctx, u, catalog, logger)
		},
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return Repositories{
		Availability: repository.NewAvailabilityRepository(u, logger),
		Pricing:      repository.NewPricingRepository(u, logger),
		Promos:       repository.NewPromoRepository(pool, logger),
		Contacts:     repository.NewContactRepository(pool, logger),
		Users:        repository.NewUserRepository(pool, logger),
	}, nil
}

func newMemoryRepositories(catalog *room.Catalog, logger *slog.Logger) Repositories {
	s := memstore.NewStore(catalog, logger)
	return Repositories{
		Availability: memstore.NewAvailabilityRepository(s),
		Pricing:      memstore.NewPricingRepository(s),
		Promos:       memstore.NewPromoRepository(s),
		Contacts:     memstore.NewContactRepository(s),
		Users:        memstore.NewUserRepository(s),
	}
}
