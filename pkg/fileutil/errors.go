package fileutil

import "errors"

var (
	ErrWriterClosed  = errors.New("fileutil: atomic writer already closed")
	ErrWriterAborted = errors.New("fileutil: atomic writer was aborted")
)
