// Package strutil provides small string conversion helpers: positional
// radix conversion over arbitrary alphabets, random string generation, and
// best-effort value-to-string rendering.
//
// # Radix Conversion
//
// NumberToString and StringToNumber treat an alphabet as a positional
// numeral system where each rune's index is its digit value:
//
//	s, _ := strutil.NumberToString(12345678, "01")
//	// "101111000110000101001110"
//
//	n, _ := strutil.StringToNumber("ZXP0", alphabet)
//
// This is handy for short URL identifiers: convert a database ID with the
// Base62 alphabet and back.
//
// # Random Strings
//
// Random uses crypto/rand and defaults to the URL-friendly Base62 alphabet:
//
//	code, _ := strutil.Random(6)
//	hexish, _ := strutil.Random(8, strutil.WithAlphabet("0123456789abcdef"))
package strutil
