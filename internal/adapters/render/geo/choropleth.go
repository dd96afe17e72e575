package geo

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/okian/podium/internal/domain/types"
	"github.com/twpayne/go-geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Classes is the number of colour steps of the choropleth scale.
const Classes = 9

var (
	noData  = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	outline = color.RGBA{A: 255}
)

// Choropleth is a value per region, keyed by exact region name.
type Choropleth struct {
	Title   string
	Legend  string
	Regions []Region
	Values  map[string]types.CountryValue
	// Unmatched lists countries with a value but no boundary, sorted.
	Unmatched []string
	min, max  float64
	scale     []color.Color
}

// NewChoropleth joins values to regions by exact name match.
func NewChoropleth(title, legend string, regions []Region, values []types.CountryValue) (*Choropleth, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlOrRd", Classes)
	if err != nil {
		return nil, fmt.Errorf("%w: palette: %w", ErrRenderMap, err)
	}

	known := make(map[string]struct{}, len(regions))
	for _, r := range regions {
		known[r.Name] = struct{}{}
	}

	ch := &Choropleth{
		Title:   title,
		Legend:  legend,
		Regions: regions,
		Values:  make(map[string]types.CountryValue),
		min:     math.Inf(1),
		max:     math.Inf(-1),
		scale:   pal.Colors(),
	}
	for _, v := range values {
		if _, ok := known[v.Country]; !ok {
			ch.Unmatched = append(ch.Unmatched, v.Country)
			continue
		}
		ch.Values[v.Country] = v
		ch.min = math.Min(ch.min, v.Value)
		ch.max = math.Max(ch.max, v.Value)
	}
	sort.Strings(ch.Unmatched)
	return ch, nil
}

// Color returns the fill of the named region.
func (ch *Choropleth) Color(name string) color.Color {
	v, ok := ch.Values[name]
	if !ok {
		return noData
	}
	return ch.scale[ch.class(v.Value)]
}

func (ch *Choropleth) class(v float64) int {
	if ch.max <= ch.min {
		return len(ch.scale) - 1
	}
	i := int((v - ch.min) / (ch.max - ch.min) * float64(len(ch.scale)))
	if i >= len(ch.scale) {
		i = len(ch.scale) - 1
	}
	return i
}

// bounds returns the lower value of each colour class.
func (ch *Choropleth) bounds() []float64 {
	out := make([]float64, len(ch.scale))
	step := (ch.max - ch.min) / float64(len(ch.scale))
	for i := range out {
		out[i] = ch.min + float64(i)*step
	}
	return out
}

// Plot implements plot.Plotter, drawing every region in lon/lat data space.
func (ch *Choropleth) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	line := draw.LineStyle{Color: outline, Width: vg.Points(0.3)}
	for _, r := range ch.Regions {
		fill := ch.Color(r.Name)
		for _, poly := range rings(r.Geometry) {
			for _, ring := range poly {
				pts := make([]vg.Point, len(ring))
				for i, co := range ring {
					pts[i] = vg.Point{X: trX(co[0]), Y: trY(co[1])}
				}
				c.FillPolygon(fill, c.ClipPolygonXY(pts))
				c.StrokeLines(line, c.ClipLinesXY(pts)...)
			}
		}
	}
}

// DataRange implements plot.DataRanger.
func (ch *Choropleth) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, r := range ch.Regions {
		b := geom.NewBounds(geom.XY)
		b.Extend(r.Geometry)
		xmin, xmax = math.Min(xmin, b.Min(0)), math.Max(xmax, b.Max(0))
		ymin, ymax = math.Min(ymin, b.Min(1)), math.Max(ymax, b.Max(1))
	}
	return xmin, xmax, ymin, ymax
}

// swatch is a legend thumbnail filled with one colour.
type swatch struct{ color color.Color }

func (s swatch) Thumbnail(c *draw.Canvas) {
	c.FillPolygon(s.color, []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
	})
}

// NewPlot lays the choropleth out with a class legend.
func (ch *Choropleth) NewPlot() *plot.Plot {
	p := plot.New()
	p.Title.Text = ch.Title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"
	p.Add(ch)

	if len(ch.Values) > 0 {
		p.Legend.Add(ch.Legend)
		for i, lo := range ch.bounds() {
			p.Legend.Add(fmt.Sprintf(">= %.0f", lo), swatch{color: ch.scale[i]})
		}
	}
	p.Legend.Add("no data", swatch{color: noData})
	p.Legend.Left = true
	p.Legend.Top = false
	return p
}
