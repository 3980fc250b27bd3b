// Package querycache memoizes async lookups keyed by their input tuple.
//
// It replaces the portal's repeated "fetch on mount, refetch on dependency
// change" pattern: identical concurrent lookups are collapsed to one
// upstream call, results live for a TTL, and a generation counter guarantees
// a stale in-flight result can never overwrite state invalidated after the
// fetch was issued.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value   V
	expires time.Time
}

// Cache is a TTL-bound, generation-guarded memoization of fn(key).
type Cache[K comparable, V any] struct {
	ttl   time.Duration
	group singleflight.Group

	mu      sync.Mutex
	entries map[K]entry[V]
	gens    map[K]uint64
}

// New creates a cache whose entries expire after ttl.
func New[K comparable, V any](ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		ttl:     ttl,
		entries: make(map[K]entry[V]),
		gens:    make(map[K]uint64),
	}
}

// Do returns the cached value for key, or runs fn once (collapsing
// concurrent callers) and caches the result. Errors are never cached.
//
// The generation observed before the fetch must still be current when the
// fetch settles; otherwise the result is returned to the caller but not
// stored, so an Invalidate issued mid-flight wins over the older response.
func (c *Cache[K, V]) Do(ctx context.Context, key K, fn func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && time.Now().Before(e.expires) {
		c.mu.Unlock()
		return e.value, nil
	}
	gen := c.gens[key]
	c.mu.Unlock()

	v, err, _ := c.group.Do(fmt.Sprintf("%v", key), func() (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero V
		return zero, err
	}
	value := v.(V)

	c.mu.Lock()
	if c.gens[key] == gen {
		c.entries[key] = entry[V]{value: value, expires: time.Now().Add(c.ttl)}
	}
	c.mu.Unlock()

	return value, nil
}

// Invalidate drops the entry for key and advances its generation, so any
// fetch already in flight for the old generation cannot repopulate it.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	c.gens[key]++
	delete(c.entries, key)
	c.mu.Unlock()
}

// Len reports the number of live entries, expired ones included until their
// next lookup.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
