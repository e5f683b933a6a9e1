package bootstrap

import (
	"context"
	"log/slog"

	"dh-booking/internal/infra/cache"
	"dh-booking/internal/pkg/config"
	"dh-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to no caching when REDIS_ADDR is unset.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) shared.AvailabilityCache {
	if !cfg.Cache.Enabled() {
		return shared.NewNopAvailabilityCache()
	}

	client := cache.NewRedisClient(cfg.Cache)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis unreachable, availability reads will go to the store", "addr", cfg.Cache.RedisAddr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	slog.Info("availability cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.AvailabilityTTL.String())
	return cache.NewRedisAvailabilityCache(client, cfg.Cache.AvailabilityTTL)
}
