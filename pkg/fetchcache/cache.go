package fetchcache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

type call[V any] struct {
	done  chan struct{}
	value V
	err   error
}

// Cache is a thread-safe keyed cache for server data fetched over the API.
// Entries expire after the configured TTL; concurrent fetches for the same
// key are collapsed into one request.
//
// Invalidation wins over in-flight fetches: a fetch started before
// Invalidate or Clear does not populate the cache when it eventually
// resolves, so stale responses keyed by a previous identity never
// resurface.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	entries  map[K]entry[V]
	inflight map[K]*call[V]
	gen      map[K]uint64
}

// New creates a cache whose entries expire after ttl. A non-positive ttl
// means entries never expire and are only removed by invalidation.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:      ttl,
		entries:  make(map[K]entry[V]),
		inflight: make(map[K]*call[V]),
		gen:      make(map[K]uint64),
	}
}

// Get returns the cached value for key if present and unexpired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fresh(key)
}

// Set stores value under key, resetting its expiry.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, expiresAt: c.expiry()}
}

// GetOrFetch returns the cached value for key, or runs fetch to populate
// it. Concurrent callers for the same key share one fetch. Fetch errors
// are returned to every waiter and nothing is cached.
func (c *Cache[K, V]) GetOrFetch(ctx context.Context, key K, fetch func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if value, ok := c.fresh(key); ok {
		c.mu.Unlock()
		return value, nil
	}
	if pending, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-pending.done:
			return pending.value, pending.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	pending := &call[V]{done: make(chan struct{})}
	c.inflight[key] = pending
	generation := c.gen[key]
	c.mu.Unlock()

	value, err := fetch(ctx)

	c.mu.Lock()
	if c.inflight[key] == pending {
		delete(c.inflight, key)
	}
	// Drop the result if the key was invalidated while the fetch was in
	// flight; the next read re-fetches.
	if err == nil && c.gen[key] == generation {
		c.entries[key] = entry[V]{value: value, expiresAt: c.expiry()}
	}
	c.mu.Unlock()

	pending.value = value
	pending.err = err
	close(pending.done)
	return value, err
}

// Invalidate removes the entry for key so the next read re-fetches.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.gen[key]++
}

// InvalidateMatching removes every entry whose key satisfies match,
// bumping generations the same way Invalidate does.
func (c *Cache[K, V]) InvalidateMatching(match func(K) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if match(key) {
			delete(c.entries, key)
			c.gen[key]++
		}
	}
	for key := range c.inflight {
		if _, seen := c.entries[key]; !seen && match(key) {
			c.gen[key]++
		}
	}
}

// Clear removes every entry. In-flight fetches started before Clear do not
// repopulate the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		delete(c.entries, key)
	}
	// Bump every known generation, including keys with only an in-flight
	// fetch, so no pre-Clear result lands in the cache.
	for key := range c.inflight {
		if _, ok := c.gen[key]; !ok {
			c.gen[key] = 0
		}
	}
	for key := range c.gen {
		c.gen[key]++
	}
}

// Len returns the number of unexpired entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	now := time.Now()
	for _, e := range c.entries {
		if e.expiresAt.IsZero() || now.Before(e.expiresAt) {
			n++
		}
	}
	return n
}

// Must be called with lock held.
func (c *Cache[K, V]) fresh(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[K, V]) expiry() time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return time.Now().Add(c.ttl)
}
