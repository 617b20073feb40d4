package memoize_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unstdkit/unstd/pkg/memoize"
)

func newTestRedis(t *testing.T) redis.UniversalClient {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisCache(t *testing.T) {
	t.Run("miss then hit", func(t *testing.T) {
		c := memoize.NewRedisCache[int](newTestRedis(t))

		assert.False(t, c.Contains("answer"))
		_, err := c.Get("answer")
		assert.ErrorIs(t, err, memoize.ErrNotCached)

		c.Set("answer", 42)
		assert.True(t, c.Contains("answer"))

		v, err := c.Get("answer")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("prefix namespaces keys", func(t *testing.T) {
		client := newTestRedis(t)
		a := memoize.NewRedisCache[string](client, memoize.WithPrefix[string]("a:"))
		b := memoize.NewRedisCache[string](client, memoize.WithPrefix[string]("b:"))

		a.Set("k", "from-a")
		assert.False(t, b.Contains("k"))

		v, err := a.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "from-a", v)
	})

	t.Run("ttl expires entries", func(t *testing.T) {
		srv := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		t.Cleanup(func() { _ = client.Close() })

		c := memoize.NewRedisCache[int](client, memoize.WithTTL[int](time.Minute))
		c.Set("k", 7)
		assert.True(t, c.Contains("k"))

		srv.FastForward(2 * time.Minute)
		assert.False(t, c.Contains("k"))
	})

	t.Run("struct values round-trip as json", func(t *testing.T) {
		type point struct {
			X int `json:"x"`
			Y int `json:"y"`
		}

		c := memoize.NewRedisCache[point](newTestRedis(t))
		c.Set("p", point{X: 1, Y: 2})

		v, err := c.Get("p")
		require.NoError(t, err)
		assert.Equal(t, point{X: 1, Y: 2}, v)
	})

	t.Run("memoized function over redis", func(t *testing.T) {
		c := memoize.NewRedisCache[int](newTestRedis(t))

		var calls int
		square := memoize.String1(func(n int) int {
			calls++
			return n * n
		}, c)

		assert.Equal(t, 9, square(3))
		assert.Equal(t, 9, square(3))
		assert.Equal(t, 1, calls)
	})
}
