package bootstrap

import (
	"context"
	"log/slog"

	"guesthouse-booking/internal/infra/cache"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewPricingCache,
	),
)

// NewPricingCache falls back to a no-op cache when REDIS_ADDR is empty.
func NewPricingCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.PricingCache, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("pricing cache disabled")
		return cache.NoopPricingCache{}, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("pricing cache enabled", slog.String("addr", cfg.Redis.Addr))
	return cache.NewRedisPricingCache(client, cfg.Redis, logger), nil
}
