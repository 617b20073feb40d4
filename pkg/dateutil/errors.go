package dateutil

import "errors"

var (
	ErrInvalidResolution = errors.New("dateutil: resolution is not valid")
	ErrNoDataPoints      = errors.New("dateutil: no data points supplied")
	ErrInvalidFormat     = errors.New("dateutil: timestamp does not match ISO 8601 layout")
)
