// Package fileutil provides thin OS wrappers: atomic file writing via
// write-to-temp-then-rename, and a restorable working directory change.
//
// # Atomic Writes
//
//	err := fileutil.WriteFileAtomic("config.json", data, 0o644)
//
// For streaming writes, use AtomicWriter directly:
//
//	w, err := fileutil.NewAtomicWriter("report.csv")
//	if err != nil { ... }
//	if _, err := io.Copy(w, src); err != nil {
//		_ = w.Abort() // target untouched
//		return err
//	}
//	return w.Close() // renames into place
//
// Readers of the target path never observe a partial file. Note that
// os.Rename does not overwrite existing files on Windows, so Close fails
// there when the target already exists.
package fileutil
