package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/cache/availability.go -package=cachemock

const (
	keyPrefix  = "availability:"
	defaultTTL = 30 * time.Second
)

// setIfCurrent stores ARGV[2] under KEYS[2] with a PX of ARGV[3] only while
// the generation counter at KEYS[1] still reads ARGV[1].
const setIfCurrent = `
local gen = redis.call('GET', KEYS[1]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`

// Client is the subset of redis commands the cache issues.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// RedisAvailabilityCache keeps a generation counter per product and one key
// per (product, generation, horizon). Invalidate bumps the counter, which
// orphans every entry of the old generation until its own TTL drops it.
type RedisAvailabilityCache struct {
	client Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client Client, ttl time.Duration) *RedisAvailabilityCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisAvailabilityCache{client: client, ttl: ttl}
}

type cachedPeriod struct {
	Start string `json:"s"`
	End   string `json:"e"`
}

func (c *RedisAvailabilityCache) Get(ctx context.Context, productID uuid.UUID, horizon reservation.Period) ([]reservation.Period, int64, bool) {
	gen, err := c.client.Get(ctx, genKey(productID)).Int64()
	switch {
	case err == redis.Nil:
		gen = 0
	case err != nil:
		slog.Warn("availability cache generation read failed", "product_id", productID.String(), "error", err.Error())
		return nil, -1, false
	}

	raw, err := c.client.Get(ctx, entryKey(productID, gen, horizon)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("availability cache read failed", "product_id", productID.String(), "error", err.Error())
		}
		return nil, gen, false
	}

	free, err := decodeFree(raw)
	if err != nil {
		slog.Warn("availability cache entry is corrupt", "product_id", productID.String(), "error", err.Error())
		return nil, gen, false
	}
	return free, gen, true
}

func (c *RedisAvailabilityCache) Set(ctx context.Context, productID uuid.UUID, horizon reservation.Period, version int64, free []reservation.Period) {
	if version < 0 {
		return
	}
	raw, err := encodeFree(free)
	if err != nil {
		return
	}

	keys := []string{genKey(productID), entryKey(productID, version, horizon)}
	stored, err := c.client.Eval(ctx, setIfCurrent, keys, version, raw, c.ttl.Milliseconds()).Int64()
	if err != nil {
		slog.Warn("availability cache write failed", "product_id", productID.String(), "error", err.Error())
		return
	}
	if stored == 0 {
		slog.Debug("availability cache write skipped, generation moved", "product_id", productID.String(), "version", version)
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, productID uuid.UUID) {
	if err := c.client.Incr(ctx, genKey(productID)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "product_id", productID.String(), "error", err.Error())
	}
}

// Keys share the {productID} hash tag so the script touches a single slot.
func genKey(productID uuid.UUID) string {
	return keyPrefix + "{" + productID.String() + "}:gen"
}

func entryKey(productID uuid.UUID, gen int64, horizon reservation.Period) string {
	return fmt.Sprintf("%s{%s}:%d:%s:%s", keyPrefix, productID, gen,
		horizon.Start().Format(reservation.DateLayout),
		horizon.End().Format(reservation.DateLayout))
}

func encodeFree(free []reservation.Period) (string, error) {
	stored := make([]cachedPeriod, len(free))
	for i, p := range free {
		stored[i] = cachedPeriod{
			Start: p.Start().Format(reservation.DateLayout),
			End:   p.End().Format(reservation.DateLayout),
		}
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeFree(raw []byte) ([]reservation.Period, error) {
	var stored []cachedPeriod
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	free := make([]reservation.Period, 0, len(stored))
	for _, sp := range stored {
		start, err := reservation.ParseDay(sp.Start)
		if err != nil {
			return nil, err
		}
		end, err := reservation.ParseDay(sp.End)
		if err != nil {
			return nil, err
		}
		p, err := reservation.NewPeriod(start, end)
		if err != nil {
			return nil, err
		}
		free = append(free, p)
	}
	return free, nil
}
