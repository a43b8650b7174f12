package warehouse

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/WareOnGo/wag-dashboard/core/presentation"
)

// Cache TTLs per presentation cache strategy. Low-end clients get short-lived
// pages so a constrained session never renders long-stale data it cannot
// cheaply refresh.
const (
	minimalCacheTTL    = 30 * time.Second
	aggressiveCacheTTL = 5 * time.Minute
)

// RedisCommands is the subset of redis.Cmdable the cache uses.
// Narrowed so tests can fake it without a running Redis.
type RedisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisListCache caches listing pages in Redis. Invalidation bumps a
// namespace version instead of scanning for keys: stale entries simply age
// out under their TTL.
type RedisListCache struct {
	client RedisCommands
	ttl    time.Duration
}

const listCacheVersionKey = "warehouses:list:version"

// NewRedisListCache creates a cache whose TTL follows the given strategy.
func NewRedisListCache(client RedisCommands, strategy presentation.CacheStrategy) *RedisListCache {
	ttl := aggressiveCacheTTL
	if strategy == presentation.CacheMinimal {
		ttl = minimalCacheTTL
	}
	return &RedisListCache{client: client, ttl: ttl}
}

// Compile-time check that RedisListCache implements ListCache.
var _ ListCache = (*RedisListCache)(nil)

// Get returns a cached page for the filter, if present. Any Redis failure
// reads as a miss.
func (c *RedisListCache) Get(ctx context.Context, f Filter) (Page, bool) {
	raw, err := c.client.Get(ctx, c.key(ctx, f)).Result()
	if err != nil {
		return Page{}, false
	}

	var page Page
	if err := json.Unmarshal([]byte(raw), &page); err != nil {
		return Page{}, false
	}
	return page, true
}

// Set stores a page under the filter key. Failures are ignored: the cache is
// best-effort by contract.
func (c *RedisListCache) Set(ctx context.Context, f Filter, page Page) {
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, c.key(ctx, f), raw, c.ttl).Err()
}

// Invalidate bumps the namespace version, orphaning every cached page.
func (c *RedisListCache) Invalidate(ctx context.Context) {
	_ = c.client.Incr(ctx, listCacheVersionKey).Err()
}

// key derives the cache key from the namespace version and a filter digest.
func (c *RedisListCache) key(ctx context.Context, f Filter) string {
	version, err := c.client.Get(ctx, listCacheVersionKey).Int64()
	if err != nil {
		version = 0
	}

	digest, _ := json.Marshal(f)
	sum := sha256.Sum256(digest)
	return fmt.Sprintf("warehouses:list:v%d:%s", version, hex.EncodeToString(sum[:8]))
}
