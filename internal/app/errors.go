package service

import "errors"

// Sentinel error kinds for pipeline stages.
var (
	ErrStage      = errors.New("pipeline stage failed")
	ErrBoundaries = errors.New("boundaries unavailable")
)
