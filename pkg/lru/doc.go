// Package lru provides a bounded-capacity recently-used container: a
// key/value store that evicts the least recently used entry whenever an
// insertion would push it past its fixed capacity.
//
// The container is the cache structure behind the memoize package, but it
// is a general-purpose mapping in its own right: any workload that needs
// "keep the hot N, drop the rest" semantics with O(1) operations can use
// it directly.
//
// # Semantics
//
//   - Get and Set mark the touched key most recently used.
//   - Contains and Peek are pure observers and never change recency order.
//   - Set of a new key on a full container evicts exactly one entry: the
//     least recently used one.
//   - Delete of an absent key is a no-op.
//   - Len never exceeds the capacity given at construction.
//
// # Usage
//
//	c, err := lru.New[string, *Conn](100)
//	if err != nil {
//		// capacity was not positive
//	}
//
//	c.Set("node-1", conn)
//	conn, err := c.Get("node-1") // refreshes recency
//	if errors.Is(err, lru.ErrKeyNotFound) {
//		// not resident
//	}
//
// # Resource Cleanup
//
// Values holding external resources can be released as they leave the
// container by configuring a dispose callback:
//
//	c, _ := lru.New[string, *Conn](10,
//		lru.WithDispose(func(conn *Conn) { conn.Close() }),
//	)
//
// The callback runs exactly once for every value removed by eviction,
// Delete, or Clear, synchronously within the removing operation.
//
// # Thread Safety
//
// A single mutex guards every operation end to end, so the container is
// safe for concurrent use. The recency order and size invariant cannot be
// maintained under finer-grained locking without a different design.
package lru
