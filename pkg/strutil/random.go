package strutil

import (
	"crypto/rand"

	"github.com/google/uuid"
)

// Base62 is the default alphabet for random strings: URL-friendly letters
// and digits.
const Base62 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomOption configures Random.
type RandomOption func(*randomConfig)

type randomConfig struct {
	alphabet string
}

// WithAlphabet draws random runes from the given alphabet instead of Base62.
func WithAlphabet(alphabet string) RandomOption {
	return func(c *randomConfig) {
		c.alphabet = alphabet
	}
}

// Random returns a random string of the given length using crypto/rand.
// The default alphabet is Base62. Returns ErrInvalidLength for non-positive
// lengths and ErrAlphabetTooShort for single-rune alphabets.
func Random(length int, opts ...RandomOption) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}

	cfg := &randomConfig{alphabet: Base62}
	for _, opt := range opts {
		opt(cfg)
	}

	runes := []rune(cfg.alphabet)
	if len(runes) < 2 {
		return "", ErrAlphabetTooShort
	}

	raw := make([]byte, length)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	out := make([]rune, length)
	for i, b := range raw {
		out[i] = runes[int(b)%len(runes)]
	}
	return string(out), nil
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}
