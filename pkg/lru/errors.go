package lru

import "errors"

var (
	ErrInvalidCapacity = errors.New("lru: capacity must be a positive integer")
	ErrKeyNotFound     = errors.New("lru: key not found")
)
