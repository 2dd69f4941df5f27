package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/donaldgifford/inspection-pricing/pkg/types"
)

const (
	shopKeyPrefix  = "ipe:shop:"
	connectTimeout = 5 * time.Second
)

// RedisCache implements Cache on top of Redis, storing shops as JSON with a
// fixed TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisCache wraps an existing Redis client.
func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL, verifies connectivity, and returns the cache
// together with the underlying client so the caller can close it.
func Connect(ctx context.Context, url string, ttl time.Duration) (*RedisCache, *redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rc := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := rc.Ping(pingCtx).Err(); err != nil {
		_ = rc.Close()
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return NewRedisCache(rc, ttl), rc, nil
}

// GetShop returns the cached shop, or a miss when the key is absent.
func (c *RedisCache) GetShop(ctx context.Context, id string) (*domain.Shop, bool, error) {
	data, err := c.client.Get(ctx, shopKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached shop %s: %w", id, err)
	}

	var shop domain.Shop
	if err := json.Unmarshal(data, &shop); err != nil {
		return nil, false, fmt.Errorf("decoding cached shop %s: %w", id, err)
	}

	return &shop, true, nil
}

// SetShop stores the shop under its ID.
func (c *RedisCache) SetShop(ctx context.Context, shop *domain.Shop) error {
	data, err := json.Marshal(shop)
	if err != nil {
		return fmt.Errorf("encoding shop %s: %w", shop.ID, err)
	}

	if err := c.client.Set(ctx, shopKey(shop.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching shop %s: %w", shop.ID, err)
	}
	return nil
}

// InvalidateShop drops the cached shop.
func (c *RedisCache) InvalidateShop(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, shopKey(id)).Err(); err != nil {
		return fmt.Errorf("invalidating shop %s: %w", id, err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func shopKey(id string) string {
	return shopKeyPrefix + id
}
