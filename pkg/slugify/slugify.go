package slugify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures slug generation.
type Option func(*config)

type config struct {
	delimiter string
	lowercase bool
}

// Delimiter replaces the default "-" between words.
func Delimiter(d string) Option {
	return func(c *config) {
		c.delimiter = d
	}
}

// Lowercase controls case folding of the result. Default is true.
func Lowercase(enabled bool) Option {
	return func(c *config) {
		c.lowercase = enabled
	}
}

var nonWord = regexp.MustCompile(`\W+`)

// asciiFold decomposes the input (NFKD), drops combining marks, and strips
// any rune that still is not ASCII. "café" becomes "cafe", "日本" becomes "".
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// Slugify normalizes s into ASCII and collapses every run of non-word
// characters into the delimiter, trimming leading and trailing delimiters.
//
//	Slugify("Héllo, World!") // "hello-world"
func Slugify(s string, opts ...Option) string {
	cfg := &config{delimiter: "-", lowercase: true}
	for _, opt := range opts {
		opt(cfg)
	}

	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		// NFKD cannot fail on valid UTF-8; fall back to the raw input for
		// the regexp pass below.
		folded = s
	}

	out := nonWord.ReplaceAllString(folded, cfg.delimiter)
	out = strings.Trim(out, cfg.delimiter)
	if cfg.lowercase {
		out = strings.ToLower(out)
	}
	return out
}
