package geo

import "gonum.org/v1/plot/vg"

// Option applies a configuration option to the MapRenderer.
type Option func(*MapRenderer)

// WithSize sets the PNG size in inches. Non-positive values are ignored.
func WithSize(widthIn, heightIn float64) Option {
	return func(m *MapRenderer) {
		if widthIn > 0 && heightIn > 0 {
			m.width = vg.Length(widthIn) * vg.Inch
			m.height = vg.Length(heightIn) * vg.Inch
		}
	}
}
