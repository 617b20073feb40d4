// Package memoize caches function results in a pluggable backend so repeated
// calls with the same arguments skip the computation.
//
// A memoizer is built from three parts: the function to wrap, a key function
// that derives the cache key from the arguments, and a Cache backend. Key
// derivation always lives with the memoizer; backends store opaque keys and
// never inspect arguments.
//
// # Backends
//
//   - MapCache: unbounded in-process map, the default when nil is passed.
//   - lru.Container: bounded in-process cache with LRU eviction, for
//     memoizing over unbounded argument spaces.
//   - RedisCache: shared out-of-process cache with optional TTL.
//
// # Usage
//
//	slow := func(n int) int { return fib(n) }
//
//	// Unbounded, process-local:
//	fast := memoize.String1(slow, nil)
//
//	// Bounded to the 128 hottest arguments:
//	c, _ := lru.New[string, int](128)
//	fast = memoize.String1(slow, c)
//
//	// Custom keys and a fallible function:
//	stat := memoize.Err1(os.Stat,
//		func(path string) string { return path },
//		memoize.NewMapCache[string, os.FileInfo](),
//	)
//
// Err1 caches only successful results; errors propagate to the caller and
// the next call retries.
package memoize
