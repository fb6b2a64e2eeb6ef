package cache

import (
	"context"
	"errors"
	"time"

	"github.com/RamziBenssaci/ren-sub000/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

// RedisDashboardCache backs the dashboard summary cache with Redis.

type RedisDashboardCache struct {
	client *redis.Client
}

var _ interfaces.IDashboardCache = (*RedisDashboardCache)(nil)

func NewRedisDashboardCache(client *redis.Client) *RedisDashboardCache {
	return &RedisDashboardCache{client: client}
}

func (c *RedisDashboardCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
