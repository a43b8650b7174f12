package warehouse_test

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WareOnGo/wag-dashboard/core/presentation"
	"github.com/WareOnGo/wag-dashboard/core/warehouse"
)

// fakeRedis implements warehouse.RedisCommands over a plain map.
type fakeRedis struct {
	mu     sync.Mutex
	values map[string]string
	ttls   map[string]time.Duration
	broken bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return redis.NewStringResult("", assert.AnError)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return redis.NewStatusResult("", assert.AnError)
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(ctx context.Context, key string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.broken {
		return redis.NewIntResult(0, assert.AnError)
	}
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func TestRedisListCache(t *testing.T) {
	t.Parallel()

	filter := warehouse.Filter{City: "Bhiwandi", Page: 1, PerPage: 10}
	page := warehouse.Page{Total: 3, Page: 1, PerPage: 10}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cache := warehouse.NewRedisListCache(newFakeRedis(), presentation.CacheAggressive)

		_, ok := cache.Get(context.Background(), filter)
		require.False(t, ok, "empty cache must miss")

		cache.Set(context.Background(), filter, page)
		got, ok := cache.Get(context.Background(), filter)
		require.True(t, ok)
		assert.Equal(t, page, got)
	})

	t.Run("distinct filters use distinct keys", func(t *testing.T) {
		t.Parallel()
		cache := warehouse.NewRedisListCache(newFakeRedis(), presentation.CacheAggressive)

		cache.Set(context.Background(), filter, page)
		other := filter
		other.City = "Pune"
		_, ok := cache.Get(context.Background(), other)
		assert.False(t, ok)
	})

	t.Run("invalidate orphans cached pages", func(t *testing.T) {
		t.Parallel()
		cache := warehouse.NewRedisListCache(newFakeRedis(), presentation.CacheAggressive)

		cache.Set(context.Background(), filter, page)
		cache.Invalidate(context.Background())
		_, ok := cache.Get(context.Background(), filter)
		assert.False(t, ok, "version bump must change the key")
	})

	t.Run("ttl follows the cache strategy", func(t *testing.T) {
		t.Parallel()
		for _, tc := range []struct {
			strategy presentation.CacheStrategy
			ttl      time.Duration
		}{
			{presentation.CacheMinimal, 30 * time.Second},
			{presentation.CacheAggressive, 5 * time.Minute},
		} {
			client := newFakeRedis()
			cache := warehouse.NewRedisListCache(client, tc.strategy)
			cache.Set(context.Background(), filter, page)

			for key, ttl := range client.ttls {
				assert.Equal(t, tc.ttl, ttl, "key %s", key)
			}
			require.Len(t, client.ttls, 1)
		}
	})

	t.Run("redis failure reads as a miss", func(t *testing.T) {
		t.Parallel()
		client := newFakeRedis()
		cache := warehouse.NewRedisListCache(client, presentation.CacheAggressive)
		cache.Set(context.Background(), filter, page)

		client.broken = true
		_, ok := cache.Get(context.Background(), filter)
		assert.False(t, ok)

		// Writes and invalidations must swallow failures too.
		cache.Set(context.Background(), filter, page)
		cache.Invalidate(context.Background())
	})
}
