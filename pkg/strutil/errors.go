package strutil

import "errors"

var (
	ErrAlphabetTooShort  = errors.New("strutil: alphabet must contain at least two runes")
	ErrRuneNotInAlphabet = errors.New("strutil: rune is not part of the alphabet")
	ErrInvalidLength     = errors.New("strutil: length must be positive")
)
