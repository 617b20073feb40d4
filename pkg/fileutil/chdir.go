package fileutil

import (
	"fmt"
	"os"
)

// Chdir changes the working directory to dir and returns a function that
// restores the previous one. The process working directory is global state,
// so this is only safe when no other goroutine depends on it.
//
//	restore, err := fileutil.Chdir("/tmp/build")
//	if err != nil { ... }
//	defer restore()
func Chdir(dir string) (restore func() error, err error) {
	prev, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("fileutil: get working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return nil, fmt.Errorf("fileutil: chdir: %w", err)
	}
	return func() error {
		return os.Chdir(prev)
	}, nil
}
