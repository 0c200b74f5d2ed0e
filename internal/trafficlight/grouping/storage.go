package grouping

import (
	"bytes"
	"compress/flate"
	"context"
	"encoding/json"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/tools/slowlog"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Locks expire on their own in case the holder dies mid-search.
const lockTtl = 1 * time.Minute

// CachedValue is the grouped search response as it sits in Redis,
// deflate compressed.
type CachedValue struct {
	Code    int                 `json:"code"`
	Headers map[string][]string `json:"headers"`
	Body    string              `json:"body"`
}

type storage struct {
	redis   *redis.Client
	log     *zerolog.Logger
	slowLog slowlog.Logger
}

func (s *storage) AcquireLock(ctx context.Context, cacheKey string) (bool, error) {
	return s.redis.SetNX(ctx, cacheKey, "", lockTtl).Result()
}

func (s *storage) ReleaseLock(ctx context.Context, cacheKey string) {
	// Release must happen even when the request context is already gone
	s.redis.Del(context.Background(), cacheKey)
}

func (s *storage) StoreResponse(ctx context.Context, responseKey string, response *Response, duration time.Duration) {
	s.slowLog.Start("grouping:compression:compress")
	serialized, _ := json.Marshal(CachedValue{
		Code:    response.Code,
		Body:    response.Body,
		Headers: response.Headers,
	})
	compressed, err := compress(serialized)
	s.slowLog.Stop("grouping:compression:compress")

	if err != nil {
		s.log.Err(err).Msg("Unable to compress the response body")
		return
	}

	s.redis.Set(ctx, responseKey, compressed, duration)
}

func (s *storage) FetchResponse(ctx context.Context, responseKey string) (*CachedValue, error) {
	compressed, err := s.redis.Get(ctx, responseKey).Bytes()

	if err == redis.Nil {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	s.slowLog.Start("grouping:compression:decompress")
	defer s.slowLog.Stop("grouping:compression:decompress")

	serialized, err := decompress(compressed)
	if err != nil {
		return nil, err
	}

	value := CachedValue{}
	if err := json.Unmarshal(serialized, &value); err != nil {
		return nil, err
	}

	return &value, nil
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
