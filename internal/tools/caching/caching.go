package caching

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Engine interface {
	Store(ctx context.Context, key string, value any, ttl time.Duration) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// Cacher stores JSON serializable values deflate compressed. Product
// search metadata for a single agent runs into hundreds of kilobytes
// uncompressed.
type Cacher struct {
	engine Engine
}

func NewRedisCache(redisClient *redis.Client) *Cacher {
	return &Cacher{
		engine: &redisCache{
			redis: redisClient,
		},
	}
}

func (c *Cacher) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	serialized, err := json.Marshal(value)
	if err != nil {
		return err
	}

	compressed, err := compress(serialized)
	if err != nil {
		return err
	}

	return c.engine.Store(ctx, key, compressed, ttl)
}

// Fetch reports whether the value was found and decoded. Cache problems
// are treated as misses, the caller falls through to the supplier.
func (c *Cacher) Fetch(ctx context.Context, key string, destination any) bool {
	compressed, err := c.engine.Fetch(ctx, key)
	if err != nil || compressed == nil {
		return false
	}

	serialized, err := decompress(compressed)
	if err != nil {
		return false
	}

	return json.Unmarshal(serialized, destination) == nil
}

func compress(uncompressed []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, _ := flate.NewWriter(&buffer, flate.BestSpeed)

	if _, err := writer.Write(uncompressed); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func decompress(compressed []byte) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(reader); err != nil {
		return []byte{}, err
	}

	return out.Bytes(), nil
}
