// Package cache provides a capacity- and age-bounded in-memory key/value
// store used to gate expensive remote recomputation.
//
// Eviction is FIFO by insertion timestamp: when a write would exceed
// capacity, the single oldest entry is dropped. Reads never refresh an
// entry's timestamp, so this is deliberately not LRU. Entries older than
// the TTL are treated as absent on read (lazy expiry, no background sweep).
package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// Default cache configuration constants.
const (
	defaultCapacity = 20
	defaultTTL      = 24 * time.Hour
)

// entry is a stored value with its insertion time.
type entry[V any] struct {
	Value V     `json:"value"`
	TS    int64 `json:"ts"` // epoch milliseconds
}

// Cache is a bounded TTL key/value store.
//
// Individual operations are safe for concurrent use, but a Get followed by
// a Set is not atomic; callers doing read-modify-write must serialize the
// pair themselves.
type Cache[V any] struct {
	mu       sync.Mutex
	entries  map[string]entry[V]
	capacity int
	ttl      time.Duration // 0 disables age-based expiry
	now      func() time.Time
	onEvict  func(key string)
}

// New creates a cache with configuration options.
func New[V any](opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries:  make(map[string]entry[V]),
		capacity: defaultCapacity,
		ttl:      defaultTTL,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the live value for key. Expired or missing keys report false.
// Expired entries are lazily evicted; timestamps are never refreshed.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.Value, true
}

// Set inserts or overwrites the entry for key with a fresh timestamp.
// If the insert would exceed capacity, the oldest-timestamped entry is
// evicted first.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldest()
	}
	c.entries[key] = entry[V]{
		Value: value,
		TS:    c.now().UnixMilli(),
	}
}

// Len returns the current number of stored entries, including any that
// have expired but not yet been lazily evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// SnapshotJSON serializes the cache contents for persistence.
func (c *Cache[V]) SnapshotJSON() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.Marshal(c.entries)
}

// RestoreJSON replaces the cache contents from a persisted snapshot.
// A corrupt or unreadable snapshot restores to an empty cache: the store
// fails open so callers can recompute, never closed.
func (c *Cache[V]) RestoreJSON(data []byte) {
	restored := make(map[string]entry[V])
	if err := json.Unmarshal(data, &restored); err != nil {
		restored = make(map[string]entry[V])
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = restored
	for len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

// expired reports whether e is older than the TTL. A zero TTL disables
// expiry entirely (timestamp-only mode, used by the latest-feed cache).
func (c *Cache[V]) expired(e entry[V]) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().UnixMilli()-e.TS > c.ttl.Milliseconds()
}

// evictOldest removes the entry with the smallest timestamp.
// Must be called with c.mu held.
func (c *Cache[V]) evictOldest() {
	var (
		oldestKey string
		oldestTS  int64
		found     bool
	)
	for k, e := range c.entries {
		if !found || e.TS < oldestTS {
			oldestKey = k
			oldestTS = e.TS
			found = true
		}
	}
	if found {
		delete(c.entries, oldestKey)
		if c.onEvict != nil {
			c.onEvict(oldestKey)
		}
	}
}
