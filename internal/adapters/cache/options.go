package cache

import "time"

// Option applies a configuration option to the Cache.
type Option[V any] func(*Cache[V])

// WithCapacity sets the maximum number of entries kept in the cache.
func WithCapacity[V any](capacity int) Option[V] {
	return func(c *Cache[V]) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithTTL sets the maximum entry age. A TTL of 0 disables age-based
// expiry, leaving a timestamp-only cache.
func WithTTL[V any](ttl time.Duration) Option[V] {
	return func(c *Cache[V]) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithOnEvict registers a callback fired for every capacity eviction.
// The callback runs under the cache lock; keep it cheap and never call
// back into the cache from it.
func WithOnEvict[V any](fn func(key string)) Option[V] {
	return func(c *Cache[V]) {
		c.onEvict = fn
	}
}
