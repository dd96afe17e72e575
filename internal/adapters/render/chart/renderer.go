// Package chart draws the static view charts with gonum/plot.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/podium/pkg/metrics"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// FormatPNG is the default chart format.
const FormatPNG = "png"

// Renderer saves plots into one output directory.
type Renderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	format string
}

// NewRenderer returns a Renderer writing 12x8 inch PNG files under dir.
func NewRenderer(dir string, opts ...Option) *Renderer {
	r := &Renderer{
		dir:    dir,
		width:  12 * vg.Inch,
		height: 8 * vg.Inch,
		format: FormatPNG,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the file a chart named name is saved to.
func (r *Renderer) Path(name string) string {
	return filepath.Join(r.dir, name+"."+r.format)
}

// Save writes p as the chart called name and returns its path.
func (r *Renderer) Save(name string, p *plot.Plot) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	path := r.Path(name)
	if err := p.Save(r.width, r.height, path); err != nil {
		metrics.RecordError("chart", "save")
		return "", fmt.Errorf("%w: %s: %w", ErrRender, name, err)
	}
	metrics.RecordChartRendered(name, r.format)
	return path, nil
}
