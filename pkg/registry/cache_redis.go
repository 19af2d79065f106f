package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisTTL bounds how long another process's list may be served.
const DefaultRedisTTL = 5 * time.Minute

// RedisCache shares lists between front-end processes. Each parent is one
// JSON encoded key.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a RedisCache. An empty prefix defaults to
// "paymethods:list:" and a zero ttl to DefaultRedisTTL.
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if prefix == "" {
		prefix = "paymethods:list:"
	}
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *RedisCache) key(parentID string) string {
	return c.prefix + parentID
}

func (c *RedisCache) Get(ctx context.Context, parentID string) ([]PaymentMethod, bool, error) {
	val, err := c.client.Get(ctx, c.key(parentID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var methods []PaymentMethod
	if err := json.Unmarshal(val, &methods); err != nil {
		return nil, false, fmt.Errorf("decode cached list: %w", err)
	}
	if methods == nil {
		methods = []PaymentMethod{}
	}
	return methods, true, nil
}

func (c *RedisCache) Set(ctx context.Context, parentID string, methods []PaymentMethod) error {
	if methods == nil {
		methods = []PaymentMethod{}
	}
	data, err := json.Marshal(methods)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	if err := c.client.Set(ctx, c.key(parentID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Invalidate(ctx context.Context, parentID string) error {
	if err := c.client.Del(ctx, c.key(parentID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
