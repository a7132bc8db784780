// Package redis opens the shared Redis connection used for guest sessions,
// token revocations and OTP rate limiting.
package redis

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/be1500616/zergoqrf/internal/platform/config"
	"github.com/be1500616/zergoqrf/internal/platform/metrics"
)

const poolName = "redis"

// Client embeds the go-redis client so stores can take *redis.Client directly.
type Client struct {
	*redis.Client

	mu   sync.Mutex
	last metrics.PoolSnapshot
}

// New dials and pings Redis. An empty URL means Redis is not configured and
// yields a nil client without an error.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	applyConfig(opts, cfg)

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Client{Client: client}, nil
}

// applyConfig overrides URL-derived options with the non-zero config values.
func applyConfig(opts *redis.Options, cfg config.RedisConfig) {
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opts.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opts.WriteTimeout = cfg.WriteTimeout
	}
}

func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}

// RecordPoolStats publishes pool gauges. Misses count as waits: the caller
// had to dial or queue for a connection.
func (c *Client) RecordPoolStats(m *metrics.Metrics) {
	stats := c.PoolStats()
	cur := metrics.PoolSnapshot{
		Total: int(stats.TotalConns),
		Idle:  int(stats.IdleConns),
		InUse: int(stats.TotalConns - stats.IdleConns),
		Waits: uint64(stats.Misses) + uint64(stats.Timeouts),
	}

	c.mu.Lock()
	prev := c.last
	c.last = cur
	c.mu.Unlock()

	m.RecordPool(poolName, cur, prev)
}
