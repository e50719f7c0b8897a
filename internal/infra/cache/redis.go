// Package cache keeps room pricing overrides in Redis. Every admin pricing
// update overwrites the room's entry; readers only fill it when it holds
// nothing newer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"guesthouse-booking/internal/domain/money"
	"guesthouse-booking/internal/domain/pricing"
	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/config"
	"guesthouse-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns nil when no address is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping redis")
	}
	return client, nil
}

type RedisPricingCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

func NewRedisPricingCache(client *redis.Client, cfg config.RedisConfig, logger *slog.Logger) *RedisPricingCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisPricingCache{client: client, ttl: ttl, prefix: cfg.Prefix, logger: logger}
}

func (c *RedisPricingCache) key(roomID room.ID) string {
	return c.prefix + "pricing:" + roomID.String()
}

func (c *RedisPricingCache) Get(ctx context.Context, roomID room.ID) (*pricing.Override, bool, error) {
	raw, err := c.client.Get(ctx, c.key(roomID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errs.Wrap(err, "redis get")
	}

	var snap overrideSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		c.logger.Warn("dropping unreadable pricing cache entry", slog.String("room_id", roomID.String()))
		_ = c.client.Del(ctx, c.key(roomID)).Err()
		return nil, false, nil
	}
	return snap.toOverride(), true, nil
}

const maxSetAttempts = 3

var errSuperseded = errs.New("cached override is newer")

// Set writes o under WATCH so that an override loaded before an admin
// update cannot replace the one the update stored.
func (c *RedisPricingCache) Set(ctx context.Context, o *pricing.Override) error {
	raw, err := json.Marshal(snapshotOf(o))
	if err != nil {
		return errs.Wrap(err, "encode pricing override")
	}
	key := c.key(o.RoomID())

	for range maxSetAttempts {
		err = c.client.Watch(ctx, func(tx *redis.Tx) error {
			if cached, ok := c.peek(ctx, tx, key); ok && !o.Supersedes(cached) {
				return errSuperseded
			}
			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, raw, c.ttl)
				return nil
			})
			return err
		}, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}

	switch {
	case err == nil:
		return nil
	case errs.Is(err, errSuperseded):
		c.logger.Debug("kept newer cached override", slog.String("room_id", o.RoomID().String()))
		return nil
	default:
		return errs.Wrap(err, "redis set")
	}
}

// peek reads the current entry inside a WATCH; unreadable entries count as absent.
func (c *RedisPricingCache) peek(ctx context.Context, tx *redis.Tx, key string) (*pricing.Override, bool) {
	raw, err := tx.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var snap overrideSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false
	}
	return snap.toOverride(), true
}

func (c *RedisPricingCache) Invalidate(ctx context.Context, roomID room.ID) error {
	if err := c.client.Del(ctx, c.key(roomID)).Err(); err != nil {
		return errs.Wrap(err, "redis del")
	}
	return nil
}

// NoopPricingCache is used when Redis is not configured.
type NoopPricingCache struct{}

func (NoopPricingCache) Get(context.Context, room.ID) (*pricing.Override, bool, error) {
	return nil, false, nil
}
func (NoopPricingCache) Set(context.Context, *pricing.Override) error { return nil }
func (NoopPricingCache) Invalidate(context.Context, room.ID) error    { return nil }

type overrideSnapshot struct {
	RoomID            string    `json:"room_id"`
	LowSeason         *int64    `json:"low_season,omitempty"`
	HighSeason        *int64    `json:"high_season,omitempty"`
	Weekend           *int64    `json:"weekend,omitempty"`
	Weekly            *int64    `json:"weekly,omitempty"`
	BreakfastIncluded bool      `json:"breakfast_included"`
	CityTax           int64     `json:"city_tax"`
	ExtraBed          int64     `json:"extra_bed"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func snapshotOf(o *pricing.Override) overrideSnapshot {
	return overrideSnapshot{
		RoomID:            o.RoomID().String(),
		LowSeason:         millimes(o.LowSeason()),
		HighSeason:        millimes(o.HighSeason()),
		Weekend:           millimes(o.Weekend()),
		Weekly:            millimes(o.Weekly()),
		BreakfastIncluded: o.BreakfastIncluded(),
		CityTax:           o.CityTax().Millimes(),
		ExtraBed:          o.ExtraBed().Millimes(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func (s overrideSnapshot) toOverride() *pricing.Override {
	return pricing.ReconstructOverride(
		room.ID(s.RoomID),
		amount(s.LowSeason),
		amount(s.HighSeason),
		amount(s.Weekend),
		amount(s.Weekly),
		s.BreakfastIncluded,
		money.New(s.CityTax),
		money.New(s.ExtraBed),
		s.UpdatedAt,
	)
}

func millimes(m *money.Money) *int64 {
	if m == nil {
		return nil
	}
	v := m.Millimes()
	return &v
}

func amount(v *int64) *money.Money {
	if v == nil {
		return nil
	}
	m := money.New(*v)
	return &m
}
