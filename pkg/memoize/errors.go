package memoize

import "errors"

var (
	ErrNotCached   = errors.New("memoize: value not cached")
	ErrUnavailable = errors.New("memoize: cache backend unavailable")
)
