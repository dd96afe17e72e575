package profile

import "errors"

// Sentinel kinds for profiling errors.
var (
	ErrUnreadableTable = errors.New("table cannot be profiled")
)
