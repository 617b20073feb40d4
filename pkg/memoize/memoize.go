package memoize

import "fmt"

// Cache is the pluggable store a memoized function keeps results in.
// It is satisfied by lru.Container, MapCache, and RedisCache.
//
// The memoizer probes with Contains before Get, so a backend whose Get has
// side effects on recency (like the LRU container) only refreshes keys that
// are actually read back.
type Cache[K comparable, V any] interface {
	Contains(key K) bool
	Get(key K) (V, error)
	Set(key K, value V)
}

// Func1 memoizes a single-argument function. The key function derives the
// cache key from the argument; deriving keys is the memoizer's concern, the
// cache never inspects arguments. If cache is nil, a fresh MapCache is used.
func Func1[A any, K comparable, V any](fn func(A) V, key func(A) K, cache Cache[K, V]) func(A) V {
	if cache == nil {
		cache = NewMapCache[K, V]()
	}
	return func(a A) V {
		k := key(a)
		if cache.Contains(k) {
			if v, err := cache.Get(k); err == nil {
				return v
			}
		}
		v := fn(a)
		cache.Set(k, v)
		return v
	}
}

// Func2 memoizes a two-argument function.
func Func2[A, B any, K comparable, V any](fn func(A, B) V, key func(A, B) K, cache Cache[K, V]) func(A, B) V {
	if cache == nil {
		cache = NewMapCache[K, V]()
	}
	return func(a A, b B) V {
		k := key(a, b)
		if cache.Contains(k) {
			if v, err := cache.Get(k); err == nil {
				return v
			}
		}
		v := fn(a, b)
		cache.Set(k, v)
		return v
	}
}

// Err1 memoizes a fallible single-argument function. Only successful results
// are cached; a call that returns an error is retried on the next invocation.
func Err1[A any, K comparable, V any](fn func(A) (V, error), key func(A) K, cache Cache[K, V]) func(A) (V, error) {
	if cache == nil {
		cache = NewMapCache[K, V]()
	}
	return func(a A) (V, error) {
		k := key(a)
		if cache.Contains(k) {
			if v, err := cache.Get(k); err == nil {
				return v, nil
			}
		}
		v, err := fn(a)
		if err != nil {
			return v, err
		}
		cache.Set(k, v)
		return v, nil
	}
}

// String1 memoizes fn keyed by the fmt representation of its argument.
func String1[A any, V any](fn func(A) V, cache Cache[string, V]) func(A) V {
	return Func1(fn, func(a A) string { return fmt.Sprint(a) }, cache)
}

// String2 memoizes fn keyed by the composite fmt representation of both
// arguments.
func String2[A, B any, V any](fn func(A, B) V, cache Cache[string, V]) func(A, B) V {
	return Func2(fn, CompositeKey, cache)
}

// CompositeKey joins two argument representations with a unit separator so
// ("ab", "c") and ("a", "bc") produce distinct keys.
func CompositeKey[A, B any](a A, b B) string {
	return fmt.Sprintf("%v\x1f%v", a, b)
}
