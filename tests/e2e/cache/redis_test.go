//go:build e2e

package cache_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/infra/cache"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) config.RedisConfig {
	t.Helper()

	c, err := e2e.StartGenericContainer(testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"purpose": "e2e-tests"},
	}, 120)
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = c.Terminate(ctx)
	})

	info, err := e2e.GetContainerHostPort(c, "6379/tcp")
	require.NoError(t, err)
	return config.RedisConfig{
		Addr:   info.Host + ":" + info.Port.Port(),
		TTL:    time.Minute,
		Prefix: "test:",
	}
}

func TestRedisPricingCache(t *testing.T) {
	t.Parallel()
	cfg := startRedis(t)
	ctx := t.Context()

	client, err := cache.NewRedisClient(ctx, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.NewRedisPricingCache(client, cfg, slog.New(slog.DiscardHandler))
	roomID := room.ID("ch-11")

	t.Run("miss on an empty cache", func(t *testing.T) {
		_, hit, err := c.Get(ctx, roomID)
		require.NoError(t, err)
		require.False(t, hit)
	})

	t.Run("round trips every tier", func(t *testing.T) {
		high := money.Dinars(260)
		weekly := money.Dinars(1200)
		want := pricing.ReconstructOverride(roomID, nil, &high, nil, &weekly, true,
			money.Dinars(3), money.Dinars(40), time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))

		require.NoError(t, c.Set(ctx, want))
		got, hit, err := c.Get(ctx, roomID)
		require.NoError(t, err)
		require.True(t, hit)
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(pricing.Override{}, money.Money{})); diff != "" {
			t.Errorf("override mismatch (-want +got):\n%s", diff)
		}

		ttl, err := client.TTL(ctx, "test:pricing:ch-11").Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Duration(0))
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		require.NoError(t, c.Invalidate(ctx, roomID))
		_, hit, err := c.Get(ctx, roomID)
		require.NoError(t, err)
		require.False(t, hit)
	})

	t.Run("an override loaded before an update cannot replace it", func(t *testing.T) {
		before := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		stale := pricing.ReconstructOverride("ch-21", nil, nil, nil, nil, false,
			money.Money{}, money.Money{}, before)
		low := money.Dinars(90)
		fresh := pricing.ReconstructOverride("ch-21", &low, nil, nil, nil, false,
			money.Money{}, money.Money{}, before.Add(time.Minute))

		require.NoError(t, c.Set(ctx, fresh))
		require.NoError(t, c.Set(ctx, stale))

		got, hit, err := c.Get(ctx, "ch-21")
		require.NoError(t, err)
		require.True(t, hit)
		require.NotNil(t, got.LowSeason())
		require.Equal(t, low, *got.LowSeason())

		later := money.Dinars(95)
		newer := pricing.ReconstructOverride("ch-21", &later, nil, nil, nil, false,
			money.Money{}, money.Money{}, before.Add(2*time.Minute))
		require.NoError(t, c.Set(ctx, newer))
		got, _, err = c.Get(ctx, "ch-21")
		require.NoError(t, err)
		require.Equal(t, later, *got.LowSeason())
	})

	t.Run("unreadable entries are dropped", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "test:pricing:ch-12", "{not json", time.Minute).Err())
		_, hit, err := c.Get(ctx, "ch-12")
		require.NoError(t, err)
		require.False(t, hit)

		_, err = client.Get(ctx, "test:pricing:ch-12").Result()
		require.ErrorIs(t, err, redis.Nil)
	})
}

func TestNewRedisClient_DisabledWithoutAddr(t *testing.T) {
	client, err := cache.NewRedisClient(t.Context(), config.RedisConfig{})
	require.NoError(t, err)
	require.Nil(t, client)
}
