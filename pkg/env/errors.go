package env

import "errors"

var (
	ErrParsingConfig = errors.New("env: failed to parse environment variables into config")
	ErrNilPointer    = errors.New("env: nil pointer provided to loader")
)
