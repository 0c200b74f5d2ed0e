package caching

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	redis *redis.Client
}

func (c *redisCache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.redis.SetEx(ctx, key, value, ttl).Err()
}

func (c *redisCache) Fetch(ctx context.Context, key string) ([]byte, error) {
	value, err := c.redis.Get(ctx, key).Bytes()

	// a miss is not an error
	if err == redis.Nil {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}
