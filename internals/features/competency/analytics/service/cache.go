// file: internals/features/competency/analytics/service/cache.go
package service

import (
	"sync"
	"time"
)

/* ==============================
   Cache abstraction
   Read-through + TTL, TANPA invalidasi saat write.
   Staleness maksimal = TTL (trade-off yang diterima).
============================== */

type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
}

// MemoryCache: map + mutex, cukup untuk single process.
// Entry expired dibersihkan lazily saat Get/Set.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryCacheEntry
}

type memoryCacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryCacheEntry)}
}

func (c *MemoryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *MemoryCache) Set(key string, value interface{}, ttl time.Duration) {
	now := time.Now()
	c.mu.Lock()
	// sapu entri kadaluarsa sekalian, biar map tidak tumbuh terus
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = memoryCacheEntry{value: value, expiresAt: now.Add(ttl)}
	c.mu.Unlock()
}
