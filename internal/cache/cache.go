// Package cache caches serialized list responses in Redis so repeated
// dashboard page loads skip the database. Entries are keyed per entity,
// page, limit and filter set; any write to an entity drops every cached
// page for it.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

type ListCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewListCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl, logger: logger}
}

// FilterHash derives a stable short hash from a filter struct so keys stay
// bounded regardless of filter contents. Identical filters always hash the
// same because encoding/json serializes struct fields in declaration order.
func FilterHash(filters any) string {
	raw, err := json.Marshal(filters)
	if err != nil {
		return "none"
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:8])
}

func listKey(entity string, page, limit int, filterHash string) string {
	return fmt.Sprintf("list:%s:p%d:l%d:f%s", entity, page, limit, filterHash)
}

// GetList returns the cached payload for a list page, or (nil, false) on a
// miss. Redis being down is treated as a miss so the API degrades to
// uncached reads instead of failing.
func (c *ListCache) GetList(ctx context.Context, entity string, page, limit int, filterHash string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, listKey(entity, page, limit, filterHash)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("cache read failed", "entity", entity, "error", err)
		return nil, false
	}
	return raw, true
}

// SetList stores a serialized list page. Failures are logged and swallowed.
func (c *ListCache) SetList(ctx context.Context, entity string, page, limit int, filterHash string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, listKey(entity, page, limit, filterHash), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "entity", entity, "error", err)
	}
}

// InvalidateEntity deletes every cached list page for an entity. Uses SCAN
// rather than KEYS so a large keyspace never blocks Redis.
func (c *ListCache) InvalidateEntity(ctx context.Context, entity string) {
	if c == nil || c.rdb == nil {
		return
	}
	pattern := fmt.Sprintf("list:%s:*", entity)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("cache scan failed", "entity", entity, "error", err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", "entity", entity, "error", err)
	}
}
