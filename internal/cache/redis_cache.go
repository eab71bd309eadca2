package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tokoretail/retail-platform/internal/config"
)

type redisCache struct {
	client *redis.Client
	cfg    config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg config.CacheConfig) Cache {
	return &redisCache{
		client: client,
		cfg:    cfg,
	}
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

// Set stores value under key; a non-positive ttl falls back to the
// configured default.
func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys %v from redis: %w", keys, err)
	}

	return nil
}
