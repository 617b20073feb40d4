package sliceutil

import "iter"

// Chunks yields items in consecutive slices of at most size elements; the
// last chunk may be shorter. A non-positive size yields nothing. The yielded
// slices alias the input.
//
//	Chunks([]int{1, 2, 3, 4}, 2) -> [1 2], [3 4]
func Chunks[T any](items []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size < 1 {
			return
		}
		for start := 0; start < len(items); start += size {
			end := min(start+size, len(items))
			if !yield(items[start:end]) {
				return
			}
		}
	}
}

// Flatten concatenates nested slices into one. Useful for flattening
// one-column row sets.
//
//	Flatten([][]int{{1, 2}, {3}}) -> [1 2 3]
func Flatten[T any](nested [][]T) []T {
	var total int
	for _, inner := range nested {
		total += len(inner)
	}

	out := make([]T, 0, total)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// GroupByCount tallies items by the key function. Keys listed in force are
// present in the result even when no item maps to them.
//
//	GroupByCount([]int{1, 1, 1, 2, 3}, identity) -> {1: 3, 2: 1, 3: 1}
func GroupByCount[T any, K comparable](items []T, key func(T) K, force ...K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[key(item)]++
	}
	for _, k := range force {
		out[k] += 0
	}
	return out
}

// Count tallies the items themselves.
func Count[T comparable](items []T, force ...T) map[T]int {
	return GroupByCount(items, func(t T) T { return t }, force...)
}

// GroupBy collects items into buckets by the key function, preserving the
// input order within each bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		out[k] = append(out[k], item)
	}
	return out
}
