package chart

import (
	"fmt"
	"image/color"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	violet = color.RGBA{R: 238, G: 130, B: 238, A: 255}
	blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	medalColors = map[model.MedalType]color.Color{
		model.Gold:   color.RGBA{R: 255, G: 215, A: 255},
		model.Silver: color.RGBA{R: 192, G: 192, B: 192, A: 255},
		model.Bronze: color.RGBA{R: 165, G: 42, B: 42, A: 255},
	}
)

// seriesColors returns n qualitative colours, cycling when n is large.
func seriesColors(n int) ([]color.Color, error) {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", 12)
	if err != nil {
		return nil, fmt.Errorf("%w: palette: %w", ErrRender, err)
	}
	base := p.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out, nil
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// DisciplineLeaders draws one horizontal bar per discipline, labelled with
// the leading country.
func DisciplineLeaders(leaders []types.DisciplineLeader) (*plot.Plot, error) {
	if len(leaders) == 0 {
		return nil, ErrNoData
	}
	p := newPlot("Top gold country per discipline", "Gold medals", "Discipline")

	values := make(plotter.Values, len(leaders))
	names := make([]string, len(leaders))
	xys := make(plotter.XYs, len(leaders))
	countries := make([]string, len(leaders))
	for i, l := range leaders {
		values[i] = float64(l.Golds)
		names[i] = l.Discipline
		xys[i] = plotter.XY{X: float64(l.Golds), Y: float64(i)}
		countries[i] = l.Country
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	bars.Horizontal = true
	bars.Color = violet
	bars.LineStyle.Width = vg.Length(0)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: countries})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XRight
		labels.TextStyle[i].YAlign = draw.YCenter
	}

	p.Add(plotter.NewGrid(), bars, labels)
	p.NominalY(names...)
	return p, nil
}

// StackedMedals draws gold, silver and bronze counts stacked per country.
func StackedMedals(rows []types.CountryMedals) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	p := newPlot("Medals won by women per country", "Medals", "Country")

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Country
	}

	var below *plotter.BarChart
	for _, mt := range model.MedalTypes {
		values := make(plotter.Values, len(rows))
		for i, r := range rows {
			switch mt {
			case model.Gold:
				values[i] = float64(r.Gold)
			case model.Silver:
				values[i] = float64(r.Silver)
			case model.Bronze:
				values[i] = float64(r.Bronze)
			}
		}
		bars, err := plotter.NewBarChart(values, vg.Points(18))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
		bars.Horizontal = true
		bars.Color = medalColors[mt]
		bars.LineStyle.Width = vg.Length(0)
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(string(mt), bars)
		below = bars
	}

	p.Legend.Top = true
	p.NominalY(names...)
	p.Add(plotter.NewGrid())
	return p, nil
}

// LocalAthletesPie draws the share of local medals per athlete.
func LocalAthletesPie(rows []types.AthleteCount) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	p := newPlot("Top athletes by medals won at home", "", "")
	p.HideAxes()

	colors, err := seriesColors(len(rows))
	if err != nil {
		return nil, err
	}
	pie := &Pie{
		Values:     make([]float64, len(rows)),
		Labels:     make([]string, len(rows)),
		Colors:     colors,
		StartAngle: 140,
		TextStyle:  p.Title.TextStyle,
	}
	pie.TextStyle.Font.Size = vg.Points(10)
	for i, r := range rows {
		pie.Values[i] = float64(r.Count)
		pie.Labels[i] = r.Athlete
	}
	p.Add(pie)
	return p, nil
}

// BirthYearCurve draws the smoothed participation curve over the raw counts.
func BirthYearCurve(v types.BirthYearParticipation) (*plot.Plot, error) {
	if len(v.Smooth.X) == 0 {
		return nil, ErrNoData
	}
	p := newPlot("Participations by birth year", "Birth year", "Participations")

	curve := make(plotter.XYs, len(v.Smooth.X))
	for i := range v.Smooth.X {
		curve[i] = plotter.XY{X: v.Smooth.X[i], Y: v.Smooth.Y[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	line.Color = blue
	line.Width = vg.Points(2)

	p.Add(plotter.NewGrid(), line)
	p.Legend.Add("Participations", line)
	return p, nil
}

// SeriesLines draws one line with point markers per series.
func SeriesLines(title, xLabel, yLabel string, series []types.Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}
	p := newPlot(title, xLabel, yLabel)
	p.Add(plotter.NewGrid())

	colors, err := seriesColors(len(series))
	if err != nil {
		return nil, err
	}
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.Points))
		for j, pt := range s.Points {
			xys[j] = plotter.XY{X: float64(pt.Year), Y: float64(pt.Count)}
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrRender, s.Name, err)
		}
		line.Color = colors[i]
		points.Color = colors[i]
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.Name, line, points)
	}
	p.Legend.Top = true
	return p, nil
}
