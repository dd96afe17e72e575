package views

import "errors"

// Sentinel kinds for view computation.
var (
	ErrEmptySubset        = errors.New("empty filtered subset")
	ErrEmptyJoin          = errors.New("join produced no rows")
	ErrInsufficientPoints = errors.New("not enough distinct points for spline")
	ErrUnknownJoin        = errors.New("unknown local join mode")
)
