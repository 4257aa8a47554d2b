// Package cache provides a small in-memory TTL cache for memoizing render
// results keyed by content version.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is used when a non-positive TTL is requested.
const DefaultTTL = 15 * time.Minute

type item struct {
	value     any
	expiresAt time.Time
}

func (it item) expired() bool {
	return time.Now().After(it.expiresAt)
}

// Cache is a thread-safe map of version key to value with per-entry
// expiration. Expired entries are dropped lazily on access.
type Cache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]item
}

// New creates a cache whose entries live for ttl. A non-positive ttl falls
// back to DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:   ttl,
		items: make(map[string]item),
	}
}

// Get returns the live value for key, or false when absent or expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if it.expired() {
		c.Delete(key)
		return nil, false
	}
	return it.value, true
}

// Set stores value under key, replacing any previous entry.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes the entry for key, if any.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}
