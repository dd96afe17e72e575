package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Pie is a plot.Plotter drawing wedges proportional to Values, counter
// clockwise from StartAngle degrees. Each wedge is labelled with its name and
// percentage share.
type Pie struct {
	Values     []float64
	Labels     []string
	Colors     []color.Color
	StartAngle float64
	TextStyle  text.Style
}

var _ plot.Plotter = (*Pie)(nil)

// Plot implements plot.Plotter.
func (pie *Pie) Plot(c draw.Canvas, _ *plot.Plot) {
	total := 0.0
	for _, v := range pie.Values {
		total += v
	}
	if total <= 0 || len(pie.Colors) == 0 {
		return
	}

	center := vg.Point{X: (c.Min.X + c.Max.X) / 2, Y: (c.Min.Y + c.Max.Y) / 2}
	radius := c.Max.X - c.Min.X
	if h := c.Max.Y - c.Min.Y; h < radius {
		radius = h
	}
	radius *= 0.35

	sty := pie.TextStyle
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YCenter

	angle := pie.StartAngle * math.Pi / 180
	for i, v := range pie.Values {
		sweep := 2 * math.Pi * v / total

		var wedge vg.Path
		wedge.Move(center)
		wedge.Arc(center, radius, angle, sweep)
		wedge.Close()
		c.SetColor(pie.Colors[i%len(pie.Colors)])
		c.Fill(wedge)

		mid := angle + sweep/2
		at := vg.Point{
			X: center.X + radius*1.2*vg.Length(math.Cos(mid)),
			Y: center.Y + radius*1.2*vg.Length(math.Sin(mid)),
		}
		label := fmt.Sprintf("%.1f%%", 100*v/total)
		if i < len(pie.Labels) {
			label = pie.Labels[i] + " " + label
		}
		c.FillText(sty, at, label)
		angle += sweep
	}
}

// DataRange implements plot.DataRanger. The wedges are laid out in canvas
// space, so only a unit square is claimed.
func (pie *Pie) DataRange() (xmin, xmax, ymin, ymax float64) {
	return 0, 1, 0, 1
}
