package geo

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/metrics"
	"gonum.org/v1/plot/vg"
)

// Output lists the files written for one map.
type Output struct {
	PNG       string   `json:"png"`
	HTML      string   `json:"html"`
	Unmatched []string `json:"unmatched,omitempty"`
}

// MapRenderer writes choropleths over a fixed set of regions.
type MapRenderer struct {
	dir     string
	regions []Region
	width   vg.Length
	height  vg.Length
}

// NewMapRenderer returns a renderer writing under dir.
func NewMapRenderer(dir string, regions []Region, opts ...Option) *MapRenderer {
	m := &MapRenderer{
		dir:     dir,
		regions: regions,
		width:   12 * vg.Inch,
		height:  8 * vg.Inch,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Render writes name.png and name.html for the values and reports the
// countries that matched no region.
func (m *MapRenderer) Render(name, title, legend string, values []types.CountryValue) (Output, error) {
	ch, err := NewChoropleth(title, legend, m.regions, values)
	if err != nil {
		return Output{}, err
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return Output{}, fmt.Errorf("%w: %s: %w", ErrRenderMap, name, err)
	}

	out := Output{
		PNG:       filepath.Join(m.dir, name+".png"),
		HTML:      filepath.Join(m.dir, name+".html"),
		Unmatched: ch.Unmatched,
	}
	if err := ch.NewPlot().Save(m.width, m.height, out.PNG); err != nil {
		metrics.RecordError("geo", "save")
		return Output{}, fmt.Errorf("%w: %s: %w", ErrRenderMap, name, err)
	}
	metrics.RecordChartRendered(name, "png")

	if err := writeHTML(ch, out.HTML); err != nil {
		metrics.RecordError("geo", "html")
		return Output{}, fmt.Errorf("%s: %w", name, err)
	}
	metrics.RecordChartRendered(name, "html")
	metrics.RecordUnmatchedCountries(name, len(ch.Unmatched))
	return out, nil
}

func writeHTML(ch *Choropleth, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRenderMap, err)
	}
	w := bufio.NewWriter(f)
	if err := ch.WriteHTML(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrRenderMap, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderMap, err)
	}
	return nil
}
