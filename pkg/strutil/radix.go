package strutil

import (
	"fmt"
	"strings"
)

// NumberToString converts a non-negative integer to a string over the given
// alphabet, where each rune's position in the alphabet is its radix value.
// The alphabet sets the base: "01" yields binary, Base62 yields base 62.
//
// Zero converts to the empty string, so NumberToString and StringToNumber
// round-trip for every input.
func NumberToString(n uint64, alphabet string) (string, error) {
	runes := []rune(alphabet)
	base := uint64(len(runes))
	if base < 2 {
		return "", ErrAlphabetTooShort
	}

	var b strings.Builder
	for current := n; current > 0; current = current / base {
		b.WriteRune(runes[current%base])
	}

	// Digits were emitted least significant first.
	out := []rune(b.String())
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// StringToNumber converts a string produced over the given alphabet back to
// an integer, where each rune's position in the alphabet is its radix value.
// A rune absent from the alphabet yields ErrRuneNotInAlphabet.
func StringToNumber(s, alphabet string) (uint64, error) {
	runes := []rune(alphabet)
	base := uint64(len(runes))
	if base < 2 {
		return 0, ErrAlphabetTooShort
	}

	values := make(map[rune]uint64, len(runes))
	for i, r := range runes {
		values[r] = uint64(i)
	}

	var n uint64
	for _, r := range s {
		v, ok := values[r]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrRuneNotInAlphabet, r)
		}
		n = n*base + v
	}
	return n, nil
}
