package report

import "errors"

// Sentinel kinds for report writing.
var (
	ErrWriteReport = errors.New("write report failed")
)
