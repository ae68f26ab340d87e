// Package redis caches computed leaderboards in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"mrtrack/internal/config"
	"mrtrack/internal/port"
)

const (
	keyPrefix = "mrtrack:stats:"
	// genKey holds the current generation; entries live under keys that
	// embed it, so bumping it orphans every older entry at once.
	genKey = keyPrefix + "gen"

	// defaultTTL bounds how long orphaned generations linger.
	defaultTTL = 10 * time.Minute
)

// setIfCurrent stores ARGV[2] at KEYS[2] for ARGV[3] ms, but only while
// KEYS[1] still holds generation ARGV[1].
var setIfCurrent = goredis.NewScript(`
local gen = redis.call("GET", KEYS[1]) or "0"
if gen ~= ARGV[1] then
	return 0
end
redis.call("SET", KEYS[2], ARGV[2], "PX", ARGV[3])
return 1
`)

type statsCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

// NewClient opens a Redis client from cfg and verifies it with PING.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// NewStatsCache creates a Redis-backed StatsCache. Entries expire after ttl;
// a non-positive ttl falls back to ten minutes.
func NewStatsCache(client goredis.UniversalClient, ttl time.Duration) port.StatsCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &statsCache{client: client, ttl: ttl}
}

func entryKey(gen int64, key string) string {
	return keyPrefix + strconv.FormatInt(gen, 10) + ":" + key
}

func (c *statsCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, genKey).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("statsCache.Generation: %w", err)
	}
	return gen, nil
}

func (c *statsCache) Get(ctx context.Context, gen int64, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, entryKey(gen, key)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("statsCache.Get %s: %w", key, err)
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, fmt.Errorf("statsCache.Get %s decode: %w", key, err)
	}
	return true, nil
}

func (c *statsCache) Set(ctx context.Context, gen int64, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("statsCache.Set %s encode: %w", key, err)
	}
	keys := []string{genKey, entryKey(gen, key)}
	err = setIfCurrent.Run(ctx, c.client, keys, strconv.FormatInt(gen, 10), payload, c.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("statsCache.Set %s: %w", key, err)
	}
	return nil
}

func (c *statsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, genKey).Err(); err != nil {
		return fmt.Errorf("statsCache.Invalidate: %w", err)
	}
	return nil
}
