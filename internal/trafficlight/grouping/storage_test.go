package grouping

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bitbucket.org/crgw/tourplan-hub/internal/tools/slowlog"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

const lockKey = "grouping:supplier-tourplan:1:accommodation:auckland::::2-1:testagent"
const responseKey = lockKey + ":response"

func testStorage() (*storage, redismock.ClientMock) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)
	redisClient, redisMock := redismock.NewClientMock()

	return &storage{
		redis:   redisClient,
		log:     &log,
		slowLog: slowlog.CreateLogger(&log),
	}, redisMock
}

func TestStorageAcquireLock(t *testing.T) {
	storage, redisMock := testStorage()

	t.Run("should acquire lock successfully", func(t *testing.T) {
		redisMock.ExpectSetNX(lockKey, "", 1*time.Minute).SetVal(true)

		lock, err := storage.AcquireLock(context.TODO(), lockKey)
		assert.Nil(t, err)
		assert.True(t, lock)
	})

	t.Run("should handle context timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		cancel()

		lock, err := storage.AcquireLock(ctx, lockKey)
		assert.NotNil(t, err)
		assert.False(t, lock)
	})

	t.Run("should handle refused locking", func(t *testing.T) {
		redisMock.ExpectSetNX(lockKey, "", 1*time.Minute).SetVal(false)

		lock, err := storage.AcquireLock(context.Background(), lockKey)
		assert.Nil(t, err)
		assert.False(t, lock)
	})
}

func TestStorageReleaseLock(t *testing.T) {
	storage, redisMock := testStorage()

	t.Run("should release the lock", func(t *testing.T) {
		redisMock.ExpectDel(lockKey)
		storage.ReleaseLock(context.TODO(), lockKey)
	})
}

func TestStorageFetchResponse(t *testing.T) {
	storage, redisMock := testStorage()

	t.Run("should fetch body from cache", func(t *testing.T) {
		serialized, _ := json.Marshal(CachedValue{
			Code: http.StatusOK,
			Body: `{"options":[]}`,
		})
		compressed, _ := compress(serialized)

		redisMock.ExpectGet(responseKey).SetVal(string(compressed))
		response, err := storage.FetchResponse(context.TODO(), responseKey)

		assert.Nil(t, err)
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Equal(t, `{"options":[]}`, response.Body)
	})

	t.Run("should handle not getting a cache hit", func(t *testing.T) {
		redisMock.ExpectGet(responseKey).SetErr(redis.Nil)
		response, err := storage.FetchResponse(context.TODO(), responseKey)

		assert.Nil(t, err)
		assert.Nil(t, response)
	})

	t.Run("should handle error", func(t *testing.T) {
		redisMock.ExpectGet(responseKey).SetErr(assert.AnError)
		response, err := storage.FetchResponse(context.TODO(), responseKey)

		assert.NotNil(t, err)
		assert.Nil(t, response)
	})
}
