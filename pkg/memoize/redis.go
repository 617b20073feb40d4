package memoize

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a string-keyed Cache backed by a Redis server, for memoized
// results that should be shared between processes or survive restarts.
// Values are stored as JSON, so V must marshal cleanly.
//
// Backend failures degrade to cache misses: Contains reports false and Get
// returns ErrUnavailable, so the memoized function simply recomputes.
type RedisCache[V any] struct {
	client  redis.UniversalClient
	prefix  string
	ttl     time.Duration
	timeout time.Duration
}

// RedisOption configures a RedisCache.
type RedisOption[V any] func(*RedisCache[V])

// WithPrefix namespaces every key, e.g. "buster:".
func WithPrefix[V any](prefix string) RedisOption[V] {
	return func(c *RedisCache[V]) {
		c.prefix = prefix
	}
}

// WithTTL expires cached entries after d. Zero means entries never expire.
func WithTTL[V any](d time.Duration) RedisOption[V] {
	return func(c *RedisCache[V]) {
		c.ttl = d
	}
}

// WithTimeout bounds each Redis round trip. Default is one second.
func WithTimeout[V any](d time.Duration) RedisOption[V] {
	return func(c *RedisCache[V]) {
		c.timeout = d
	}
}

// NewRedisCache wraps an existing client. The cache does not own the client
// and never closes it.
func NewRedisCache[V any](client redis.UniversalClient, opts ...RedisOption[V]) *RedisCache[V] {
	c := &RedisCache[V]{
		client:  client,
		timeout: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache[V]) Contains(key string) bool {
	ctx, cancel := c.opContext()
	defer cancel()

	n, err := c.client.Exists(ctx, c.prefix+key).Result()
	return err == nil && n > 0
}

// Get returns the cached value for key. Returns ErrNotCached on a miss and
// ErrUnavailable when the backend cannot be reached or the payload cannot
// be decoded.
func (c *RedisCache[V]) Get(key string) (V, error) {
	var zero V

	ctx, cancel := c.opContext()
	defer cancel()

	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotCached
		}
		return zero, errors.Join(ErrUnavailable, err)
	}

	var v V
	if err := json.Unmarshal(b, &v); err != nil {
		return zero, errors.Join(ErrUnavailable, err)
	}
	return v, nil
}

// Set stores value under key, best effort. Marshal or backend errors are
// dropped: the worst case is a recompute on the next call.
func (c *RedisCache[V]) Set(key string, value V) {
	b, err := json.Marshal(value)
	if err != nil {
		return
	}

	ctx, cancel := c.opContext()
	defer cancel()

	_ = c.client.Set(ctx, c.prefix+key, b, c.ttl).Err()
}

func (c *RedisCache[V]) opContext() (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), c.timeout)
}
