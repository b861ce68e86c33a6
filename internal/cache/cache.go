package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/farescout/internal/fare"
)

const defaultTTL = time.Hour

// Cache wraps a Redis client and provides typed get/set/delete for ranked fare results.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache. A non-positive ttl falls back to one hour.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Key returns the Redis key for a route and date.
func Key(origin, destination, date string) string {
	return "fares:" + strings.ToLower(strings.TrimSpace(origin)) +
		":" + strings.ToLower(strings.TrimSpace(destination)) +
		":" + strings.TrimSpace(date)
}

// Get retrieves a ranked result from cache.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, origin, destination, date string) (*fare.Result, error) {
	k := Key(origin, destination, date)
	val, err := c.client.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get %s: %w", k, err)
	}

	var res fare.Result
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, fmt.Errorf("unmarshaling cached result %s: %w", k, err)
	}

	return &res, nil
}

// Set stores a ranked result with the configured TTL.
func (c *Cache) Set(ctx context.Context, origin, destination, date string, res *fare.Result) error {
	if res == nil {
		return nil
	}

	k := Key(origin, destination, date)
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result %s: %w", k, err)
	}

	if err := c.client.Set(ctx, k, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", k, err)
	}

	return nil
}

// Delete removes the cached result for a route and date.
func (c *Cache) Delete(ctx context.Context, origin, destination, date string) error {
	k := Key(origin, destination, date)
	if err := c.client.Del(ctx, k).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", k, err)
	}
	return nil
}
