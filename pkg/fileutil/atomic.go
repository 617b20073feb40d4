package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriter writes a file atomically: data goes to a temporary file in
// the target directory and Close renames it into place, so readers either
// see the previous file or the complete new one, never a partial write.
//
// The temporary file is named "<dir>/.<base>.temp" by default. A fixed name
// keeps the failure mode predictable: a crashed writer leaves one known
// stale temp file, not an accumulation of random ones. It is overwritten
// blindly, so concurrent writers of the same target race on it.
type AtomicWriter struct {
	name     string
	tempName string
	f        *os.File
	closed   bool
	aborted  bool
}

// AtomicOption configures an AtomicWriter.
type AtomicOption func(*atomicConfig)

type atomicConfig struct {
	prefix string
	suffix string
	dir    string
	perm   os.FileMode
}

// WithTempPrefix overrides the temp file name prefix, "." by default.
func WithTempPrefix(prefix string) AtomicOption {
	return func(c *atomicConfig) {
		c.prefix = prefix
	}
}

// WithTempSuffix overrides the temp file name suffix, ".temp" by default.
func WithTempSuffix(suffix string) AtomicOption {
	return func(c *atomicConfig) {
		c.suffix = suffix
	}
}

// WithTempDir places the temporary file in dir instead of the target's
// directory. Renames across filesystems fail, so dir must be on the same
// filesystem as the target.
func WithTempDir(dir string) AtomicOption {
	return func(c *atomicConfig) {
		c.dir = dir
	}
}

// WithPerm sets the file mode of the written file, 0644 by default.
func WithPerm(perm os.FileMode) AtomicOption {
	return func(c *atomicConfig) {
		c.perm = perm
	}
}

// NewAtomicWriter opens a temporary file for atomically writing name.
// The caller must finish with either Close or Abort.
func NewAtomicWriter(name string, opts ...AtomicOption) (*AtomicWriter, error) {
	cfg := &atomicConfig{prefix: ".", suffix: ".temp", perm: 0o644}
	for _, opt := range opts {
		opt(cfg)
	}

	dir := cfg.dir
	if dir == "" {
		dir = filepath.Dir(name)
	}
	tempName := filepath.Join(dir, cfg.prefix+filepath.Base(name)+cfg.suffix)

	f, err := os.OpenFile(tempName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, cfg.perm)
	if err != nil {
		return nil, fmt.Errorf("fileutil: open temp file: %w", err)
	}

	return &AtomicWriter{
		name:     name,
		tempName: tempName,
		f:        f,
	}, nil
}

// Name returns the target path.
func (w *AtomicWriter) Name() string { return w.name }

// TempName returns the temporary path being written.
func (w *AtomicWriter) TempName() string { return w.tempName }

// Write appends to the temporary file.
func (w *AtomicWriter) Write(p []byte) (int, error) {
	if w.closed {
		return 0, ErrWriterClosed
	}
	return w.f.Write(p)
}

// Close flushes the temporary file and renames it over the target,
// overwriting any existing file. On any failure the write is aborted and
// the error returned, so the target is never left half-written. Close after
// Close is a no-op; Close after Abort returns ErrWriterAborted.
func (w *AtomicWriter) Close() error {
	if w.closed {
		if w.aborted {
			return ErrWriterAborted
		}
		return nil
	}

	if err := w.f.Sync(); err != nil {
		_ = w.Abort()
		return fmt.Errorf("fileutil: sync temp file: %w", err)
	}
	if err := w.f.Close(); err != nil {
		_ = w.Abort()
		return fmt.Errorf("fileutil: close temp file: %w", err)
	}
	if err := os.Rename(w.tempName, w.name); err != nil {
		_ = os.Remove(w.tempName)
		w.closed = true
		w.aborted = true
		return fmt.Errorf("fileutil: rename into place: %w", err)
	}

	w.closed = true
	return nil
}

// Abort discards the write: the temporary file is closed and removed and
// the target is left untouched. Safe to call after a failed Close.
func (w *AtomicWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.aborted = true

	_ = w.f.Close()
	if err := os.Remove(w.tempName); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("fileutil: remove temp file: %w", err)
	}
	return nil
}

// WriteFileAtomic is the one-shot form of AtomicWriter: write data to name
// with the given permissions, atomically.
func WriteFileAtomic(name string, data []byte, perm os.FileMode) error {
	w, err := NewAtomicWriter(name, WithPerm(perm))
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		_ = w.Abort()
		return err
	}
	return w.Close()
}
