package cache

import (
	"context"
	"encoding/json"
	"time"

	"venue-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to redis using the loaded config. Returns nil when
// redis is disabled or unreachable; callers degrade to uncached reads.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	if !config.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}

// Cache is a small JSON read cache on top of redis. A nil *Cache or a Cache
// with a nil client is a no-op, so disabled redis needs no branching at
// call sites.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "cache")),
	}
}

// Get unmarshal cached value into dest. Returns false on miss or error.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Cache get failed", zap.Error(err), zap.String("key", key))
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", zap.Error(err), zap.String("key", key))
		c.client.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Cache set failed", zap.Error(err), zap.String("key", key))
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache invalidate failed", zap.Error(err), zap.Strings("keys", keys))
	}
}
