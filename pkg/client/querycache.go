package client

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

// QueryCache is an in-process cache for decoded list pages, keyed by
// entity, page, limit and filter hash. It mirrors the server's Redis list
// cache on the client side so paging back through results is instant.
type QueryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

func NewQueryCache(ttl time.Duration) *QueryCache {
	return &QueryCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

// QueryKey builds the cache key for one list page. filters may be nil.
func QueryKey(entity string, page, limit int, filters any) string {
	hash := "none"
	if filters != nil {
		if raw, err := json.Marshal(filters); err == nil {
			sum := sha256.Sum256(raw)
			hash = hex.EncodeToString(sum[:8])
		}
	}
	return fmt.Sprintf("list:%s:p%d:l%d:f%s", entity, page, limit, hash)
}

func (qc *QueryCache) Get(key string) (any, bool) {
	if qc == nil {
		return nil, false
	}
	qc.mu.RLock()
	entry, ok := qc.entries[key]
	qc.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

func (qc *QueryCache) Set(key string, value any) {
	if qc == nil {
		return
	}
	qc.mu.Lock()
	qc.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(qc.ttl)}
	qc.mu.Unlock()
}

// InvalidateEntity drops every cached page for one entity. Called after any
// mutation so the next read observes the change.
func (qc *QueryCache) InvalidateEntity(entity string) {
	if qc == nil {
		return
	}
	prefix := fmt.Sprintf("list:%s:", entity)

	qc.mu.Lock()
	for key := range qc.entries {
		if strings.HasPrefix(key, prefix) {
			delete(qc.entries, key)
		}
	}
	qc.mu.Unlock()
}
