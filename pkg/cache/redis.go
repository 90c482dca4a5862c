// Package cache holds the Redis client behind the checkout rate limiter.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const pingTimeout = 5 * time.Second

type Client struct {
	rdb         *redis.Client
	maxRequests int64
	window      time.Duration
}

// NewClient connects to addr and allows maxRequests per key in each window.
func NewClient(addr string, maxRequests int, window time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return &Client{rdb: rdb, maxRequests: int64(maxRequests), window: window}, nil
}

// IsRateLimited counts one hit for key and reports whether the window is
// exhausted. The counter expires one window after the latest hit.
func (c *Client) IsRateLimited(ctx context.Context, key string) (bool, error) {
	pipe := c.rdb.Pipeline()
	incr := pipe.Incr(ctx, rateLimitKey(key))
	pipe.Expire(ctx, rateLimitKey(key), c.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}

	return incr.Val() > c.maxRequests, nil
}

// Ping backs the cache check of /health.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func rateLimitKey(key string) string {
	return "ratelimit:" + key
}
