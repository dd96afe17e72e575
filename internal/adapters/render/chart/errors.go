package chart

import "errors"

// Sentinel kinds for chart rendering.
var (
	ErrNoData = errors.New("nothing to plot")
	ErrRender = errors.New("render chart failed")
)
