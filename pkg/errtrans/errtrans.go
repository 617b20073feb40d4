package errtrans

import (
	"errors"
	"fmt"
)

// Translate swaps err for the sentinel to when err matches from, keeping
// the original error in the chain so its details remain inspectable.
// Non-matching errors, including nil, pass through untouched.
//
//	err := errtrans.Translate(storageErr, sql.ErrNoRows, ErrUserNotFound)
func Translate(err, from, to error) error {
	if err == nil || !errors.Is(err, from) {
		return err
	}
	return fmt.Errorf("%w: %v", to, err)
}

// Wrap returns a function whose errors matching from are translated to to.
// Useful when a dependency's errors should surface as your own higher up
// the stack.
//
//	load := errtrans.Wrap(loadConfig, fs.ErrNotExist, ErrConfigMissing)
func Wrap(fn func() error, from, to error) func() error {
	return func() error {
		return Translate(fn(), from, to)
	}
}

// Wrap1 is Wrap for functions that also return a value.
func Wrap1[T any](fn func() (T, error), from, to error) func() (T, error) {
	return func() (T, error) {
		v, err := fn()
		return v, Translate(err, from, to)
	}
}

// WrapIn1 is Wrap for functions taking one argument.
func WrapIn1[A any](fn func(A) error, from, to error) func(A) error {
	return func(a A) error {
		return Translate(fn(a), from, to)
	}
}

// WrapFunc is Wrap for one-argument, one-result functions, the most common
// shape.
func WrapFunc[A, T any](fn func(A) (T, error), from, to error) func(A) (T, error) {
	return func(a A) (T, error) {
		v, err := fn(a)
		return v, Translate(err, from, to)
	}
}
