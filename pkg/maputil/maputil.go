package maputil

import (
	"errors"
	"fmt"
)

// ErrKeyMissing is returned when a required key is absent from the map.
var ErrKeyMissing = errors.New("maputil: required key missing")

// GetMany extracts a predictable number of values out of m for multi-value
// assignment: one value per required key followed by one per optional key.
// A missing required key fails with ErrKeyMissing naming the key; a missing
// optional key contributes the zero value.
//
//	vals, err := maputil.GetMany(params,
//		[]string{"uid", "action"},
//		[]string{"limit", "offset"},
//	)
func GetMany[K comparable, V any](m map[K]V, required, optional []K) ([]V, error) {
	out := make([]V, 0, len(required)+len(optional))

	for _, k := range required {
		v, ok := m[k]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrKeyMissing, k)
		}
		out = append(out, v)
	}

	for _, k := range optional {
		out = append(out, m[k])
	}

	return out, nil
}

// OneOf returns the value of the first of keys present in m, or
// ErrKeyMissing when none are.
func OneOf[K comparable, V any](m map[K]V, keys ...K) (V, error) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, nil
		}
	}

	var zero V
	return zero, fmt.Errorf("%w: none of %v present", ErrKeyMissing, keys)
}

// PopMany removes keys from m and returns their values in key order,
// substituting def for absent keys. The map is mutated in place.
func PopMany[K comparable, V any](m map[K]V, keys []K, def V) []V {
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out = append(out, v)
			delete(m, k)
		} else {
			out = append(out, def)
		}
	}
	return out
}
