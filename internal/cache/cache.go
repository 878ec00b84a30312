// Package cache provides a time-bounded memoizer for expensive computations.
// Entries expire on read only; nothing evicts them proactively. The clock is
// injectable so freshness behavior is deterministic under test.
package cache

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// Cache memoizes producer results per key for a fixed TTL. Concurrent misses
// on the same key are coalesced: one producer runs, the rest wait for its
// result.
type Cache[V any] struct {
	ttl   time.Duration
	clock func() time.Time

	mu      sync.RWMutex
	entries map[string]entry[V]
	group   singleflight.Group
}

// New creates a cache with the given TTL. A nil clock defaults to time.Now.
func New[V any](ttl time.Duration, clock func() time.Time) *Cache[V] {
	if clock == nil {
		clock = time.Now
	}
	return &Cache[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// GetOrCompute returns the cached value for key when it is still fresh
// (now - created_at < ttl); otherwise it invokes produce, stores the result
// with a fresh timestamp, and returns it. A failing producer propagates its
// error and leaves the cache untouched, so a stale entry is not replaced by
// a failure.
func (c *Cache[V]) GetOrCompute(key string, produce func() (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A concurrent caller may have stored a fresh value while this
		// one waited for the flight slot.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		v, err := produce()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry[V]{value: v, createdAt: c.clock()}
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

func (c *Cache[V]) lookup(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.clock().Sub(e.createdAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}
