package lru

import (
	"container/list"
	"iter"
	"sync"
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Container is a bounded key/value store that evicts the least recently
// used entry once the number of resident entries would exceed its capacity.
// Both Get and Set refresh an entry's recency; Contains and Peek do not.
//
// All operations hold a single mutex for their full duration, so a
// Container is safe for concurrent use by multiple goroutines.
type Container[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	recency  *list.List // front = most recently used
	dispose  func(V)
	mu       sync.Mutex
}

// Option configures a Container at construction time.
type Option[K comparable, V any] func(*Container[K, V])

// WithDispose sets a callback invoked on each value removed from the
// container, whether by eviction, Delete, or Clear. The callback runs
// synchronously inside the triggering operation and is typically used to
// release resources held by the value, e.g. closing a connection.
func WithDispose[K comparable, V any](fn func(V)) Option[K, V] {
	return func(c *Container[K, V]) {
		c.dispose = fn
	}
}

// New creates a container that holds at most capacity entries.
// Returns ErrInvalidCapacity if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Container[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	c := &Container[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		recency:  list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the value stored under key and marks it most recently used.
// Returns ErrKeyNotFound if the key is not resident.
func (c *Container[K, V]) Get(key K) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, ErrKeyNotFound
	}

	c.recency.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, nil
}

// Peek returns the value stored under key without updating its recency.
func (c *Container[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		return elem.Value.(*entry[K, V]).value, true
	}

	var zero V
	return zero, false
}

// Set stores value under key and marks it most recently used. When key is
// not already resident and the container is full, the single least recently
// used entry is evicted first; the dispose callback, if configured, receives
// the evicted value. Overwriting a resident key never triggers eviction and
// does not dispose the overwritten value.
func (c *Container[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.recency.MoveToFront(elem)
		elem.Value.(*entry[K, V]).value = value
		return
	}

	c.items[key] = c.recency.PushFront(&entry[K, V]{key: key, value: value})

	// Capacity can only ever be exceeded by one, so a single eviction
	// restores the invariant.
	if c.recency.Len() > c.capacity {
		if oldest := c.recency.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}
}

// Delete removes key from the container if resident, invoking the dispose
// callback on its value. Reports whether an entry was removed; deleting an
// absent key is a no-op.
func (c *Container[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return false
	}

	c.removeElement(elem)
	return true
}

// Contains reports whether key is resident. It is a pure observer: unlike
// Get, it never changes the recency order.
func (c *Container[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// Len returns the number of resident entries, always <= Cap.
func (c *Container[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recency.Len()
}

// Cap returns the capacity the container was constructed with.
func (c *Container[K, V]) Cap() int {
	return c.capacity
}

// Clear removes every entry, invoking the dispose callback once per value
// in unspecified order.
func (c *Container[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	disposed := make([]V, 0, c.recency.Len())
	if c.dispose != nil {
		for _, elem := range c.items {
			disposed = append(disposed, elem.Value.(*entry[K, V]).value)
		}
	}

	c.items = make(map[K]*list.Element, c.capacity)
	c.recency.Init()

	for _, v := range disposed {
		c.dispose(v)
	}
}

// Keys returns an iterator over the resident keys in least-to-most recently
// used order. The iterator ranges over a snapshot taken when Keys is called,
// so mutations during iteration are not reflected.
func (c *Container[K, V]) Keys() iter.Seq[K] {
	c.mu.Lock()
	keys := make([]K, 0, c.recency.Len())
	for elem := c.recency.Back(); elem != nil; elem = elem.Prev() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	c.mu.Unlock()

	return func(yield func(K) bool) {
		for _, k := range keys {
			if !yield(k) {
				return
			}
		}
	}
}

// removeElement unlinks elem from both the recency list and the index, then
// runs the dispose callback. Bookkeeping happens before the callback so the
// size invariant holds even if the callback panics. Must be called with the
// lock held.
func (c *Container[K, V]) removeElement(elem *list.Element) {
	c.recency.Remove(elem)
	ent := elem.Value.(*entry[K, V])
	delete(c.items, ent.key)

	if c.dispose != nil {
		c.dispose(ent.value)
	}
}
