// Package cache holds a short-TTL read-through cache for odds-provider
// responses. The Odds API bills per request, and the report fires for
// three categories several times a day; caching the raw listing for a
// few minutes shields the quota without keeping any odds history.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// OddsCache defines the minimal interface the odds fetcher needs.
// Misses and backend failures are equivalent to the fetcher: it just
// goes to the network.
type OddsCache interface {
	Get(ctx context.Context, sportKey string) ([]byte, bool)
	Set(ctx context.Context, sportKey string, payload []byte)
	Close() error
}

type redisOddsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOddsCache builds a cache with the given addr/password/db.
// Returns nil when addr is empty: a nil OddsCache is valid and means
// "no cache configured".
func NewRedisOddsCache(addr, password string, db int, ttl time.Duration) OddsCache {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisOddsCache{client: client, ttl: ttl}
}

func (c *redisOddsCache) key(sportKey string) string {
	return fmt.Sprintf("odds:h2h:%s", sportKey)
}

func (c *redisOddsCache) Get(ctx context.Context, sportKey string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(sportKey)).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike: treat as a miss.
		return nil, false
	}
	return data, true
}

func (c *redisOddsCache) Set(ctx context.Context, sportKey string, payload []byte) {
	// Best effort; a failed write only costs one extra upstream call.
	_ = c.client.Set(ctx, c.key(sportKey), payload, c.ttl).Err()
}

func (c *redisOddsCache) Close() error {
	return c.client.Close()
}
