package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrServe       = errors.New("http serve failed")
	ErrUnknownView = errors.New("unknown view")
	ErrNoViews     = errors.New("views not available")
)
