package geo

import "errors"

// Sentinel kinds for boundary and map errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported boundary format")
	ErrReadBoundaries    = errors.New("read boundaries failed")
	ErrNoRegions         = errors.New("no boundary regions")
	ErrRenderMap         = errors.New("render map failed")
)
