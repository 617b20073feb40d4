// Package sliceutil provides slice grouping and reshaping helpers:
// pagination-style chunking, flattening of nested slices, and grouping or
// tallying by a derived key.
//
//	for page := range sliceutil.Chunks(rows, 100) { ... }
//
//	byStatus := sliceutil.GroupBy(orders, func(o Order) string { return o.Status })
//	counts := sliceutil.Count([]string{"a", "a", "b"}) // {"a": 2, "b": 1}
package sliceutil
