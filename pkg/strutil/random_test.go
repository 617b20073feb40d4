package strutil_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unstdkit/unstd/pkg/strutil"
)

func TestRandom(t *testing.T) {
	t.Run("default alphabet", func(t *testing.T) {
		s, err := strutil.Random(16)
		require.NoError(t, err)
		assert.Len(t, s, 16)
		for _, r := range s {
			assert.Contains(t, strutil.Base62, string(r))
		}
	})

	t.Run("custom alphabet", func(t *testing.T) {
		s, err := strutil.Random(32, strutil.WithAlphabet("ab"))
		require.NoError(t, err)
		assert.Len(t, s, 32)
		for _, r := range s {
			assert.Contains(t, "ab", string(r))
		}
	})

	t.Run("non-positive length", func(t *testing.T) {
		_, err := strutil.Random(0)
		assert.ErrorIs(t, err, strutil.ErrInvalidLength)
	})

	t.Run("alphabet too short", func(t *testing.T) {
		_, err := strutil.Random(4, strutil.WithAlphabet("x"))
		assert.ErrorIs(t, err, strutil.ErrAlphabetTooShort)
	})

	t.Run("successive calls differ", func(t *testing.T) {
		a, err := strutil.Random(24)
		require.NoError(t, err)
		b, err := strutil.Random(24)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}

func TestUUID(t *testing.T) {
	s := strutil.UUID()
	parsed, err := uuid.Parse(s)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	assert.NotEqual(t, s, strutil.UUID())
}

func TestToString(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{name: "nil", in: nil, expected: ""},
		{name: "string", in: "hello", expected: "hello"},
		{name: "bytes", in: []byte("raw"), expected: "raw"},
		{name: "error", in: assert.AnError, expected: assert.AnError.Error()},
		{name: "int", in: 42, expected: "42"},
		{name: "float", in: 1.5, expected: "1.5"},
		{name: "slice", in: []int{1, 2}, expected: "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, strutil.ToString(tt.in))
		})
	}
}
