package tabular

import "errors"

// Sentinel kinds for frame operations.
var (
	ErrMissingColumn = errors.New("missing column")
	ErrEmptyTable    = errors.New("empty table")
	ErrFrame         = errors.New("frame operation failed")
)
