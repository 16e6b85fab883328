package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis is a TTL cache shared between instances. Values are stored as JSON
// under prefix+key. Redis failures degrade to cache misses.
type Redis[V any] struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewRedis[V any](client redis.Cmdable, prefix string, ttl time.Duration) *Redis[V] {
	return &Redis[V]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *Redis[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("redis cache get failed", zap.String("key", key), zap.Error(err))
		}
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		zap.L().Warn("redis cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return value, false
	}
	return value, true
}

func (c *Redis[V]) Set(ctx context.Context, key string, value V) {
	if c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("redis cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		zap.L().Warn("redis cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Purge deletes every key under the cache prefix.
func (c *Redis[V]) Purge(ctx context.Context) {
	keys, err := c.client.Keys(ctx, c.prefix+"*").Result()
	if err != nil {
		zap.L().Warn("redis cache purge failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		zap.L().Warn("redis cache purge failed", zap.Error(err))
	}
}
