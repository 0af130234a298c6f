// Package cache is a small byte cache in front of the public read
// endpoints. Redis backs it when REDIS_ADDR is set; otherwise a no-op
// implementation keeps every call path identical without the
// dependency being reachable.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopcanvas/builder-backend/internal/platform/logger"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }
func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
}

func NewNoop() Cache { return noopCache{} }

type redisCache struct {
	client *redis.Client
	log    *logger.Logger
}

func NewRedis(addr string, baseLog *logger.Logger) Cache {
	return &redisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		log:    baseLog.With("cache", "redis"),
	}
}

// Get treats every Redis failure as a miss; the cache is an optimization
// in front of data the caller can rebuild.
func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "key", key, "error", err)
	}
}
