package memoize

import "sync"

// MapCache is an unbounded in-memory Cache backed by a plain map. It is the
// default backend when a memoizer is given a nil cache. Unlike a hidden
// process-wide cache, every MapCache is an explicit value with its own
// lifecycle; callers who need bounded growth should hand the memoizer an
// lru.Container instead.
type MapCache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewMapCache creates an empty unbounded cache.
func NewMapCache[K comparable, V any]() *MapCache[K, V] {
	return &MapCache[K, V]{entries: make(map[K]V)}
}

func (c *MapCache[K, V]) Contains(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Get returns the cached value for key, or ErrNotCached.
func (c *MapCache[K, V]) Get(key K) (V, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.entries[key]; ok {
		return v, nil
	}

	var zero V
	return zero, ErrNotCached
}

func (c *MapCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Delete removes key if present; absent keys are a no-op.
func (c *MapCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *MapCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
