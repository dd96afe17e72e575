package chart_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/podium/internal/adapters/render/chart"
	"github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
	"gonum.org/v1/plot"
)

func saved(r *chart.Renderer, name string, p *plot.Plot) int64 {
	path, err := r.Save(name, p)
	So(err, ShouldBeNil)
	info, err := os.Stat(path)
	So(err, ShouldBeNil)
	return info.Size()
}

func TestCharts(t *testing.T) {
	Convey("Given a renderer over a temp dir", t, func() {
		dir := filepath.Join(t.TempDir(), "charts")
		r := chart.NewRenderer(dir, chart.WithSize(6, 4))

		Convey("When the discipline leaders are drawn", func() {
			p, err := chart.DisciplineLeaders([]types.DisciplineLeader{
				{Discipline: "Athletics", Country: "United States", Golds: 30, DisciplineGolds: 50},
				{Discipline: "Swimming", Country: "Australia", Golds: 12, DisciplineGolds: 40},
			})

			So(err, ShouldBeNil)
			So(saved(r, types.ViewTopGoldByDiscipline, p), ShouldBeGreaterThan, 0)
			So(r.Path(types.ViewTopGoldByDiscipline), ShouldEndWith, "top_gold_by_discipline.png")
		})

		Convey("When the stacked women's medals are drawn", func() {
			p, err := chart.StackedMedals([]types.CountryMedals{
				{Country: "Norway", Gold: 3, Silver: 1, Bronze: 2},
				{Country: "Sweden", Gold: 1, Silver: 2},
			})

			So(err, ShouldBeNil)
			So(saved(r, types.ViewWomenMedalsByCountry, p), ShouldBeGreaterThan, 0)
		})

		Convey("When the local athletes pie is drawn", func() {
			p, err := chart.LocalAthletesPie([]types.AthleteCount{
				{Athlete: "Ole", Count: 4}, {Athlete: "Kari", Count: 2}, {Athlete: "Gino", Count: 1},
			})

			So(err, ShouldBeNil)
			So(saved(r, types.ViewTopLocalAthletes, p), ShouldBeGreaterThan, 0)
		})

		Convey("When the birth year curve is drawn", func() {
			p, err := chart.BirthYearCurve(types.BirthYearParticipation{
				Smooth: types.Curve{X: []float64{1980, 1985, 1990}, Y: []float64{2, 5, 3}},
			})

			So(err, ShouldBeNil)
			So(saved(r, types.ViewParticipationByBirthYear, p), ShouldBeGreaterThan, 0)
		})

		Convey("When series lines are drawn", func() {
			p, err := chart.SeriesLines("Nations", "Year", "Nations", []types.Series{
				{Name: "Summer", Points: []types.YearCount{{Year: 1960, Count: 80}, {Year: 1964, Count: 90}}},
				{Name: "Winter", Points: []types.YearCount{{Year: 1960, Count: 20}}},
			})

			So(err, ShouldBeNil)
			So(saved(r, types.ViewNationsBySeason, p), ShouldBeGreaterThan, 0)
		})

		Convey("When a chart has no data", func() {
			_, err1 := chart.DisciplineLeaders(nil)
			_, err2 := chart.StackedMedals(nil)
			_, err3 := chart.LocalAthletesPie(nil)
			_, err4 := chart.BirthYearCurve(types.BirthYearParticipation{})
			_, err5 := chart.SeriesLines("t", "x", "y", nil)

			for _, err := range []error{err1, err2, err3, err4, err5} {
				So(errors.Is(err, chart.ErrNoData), ShouldBeTrue)
			}
		})

		Convey("When another format is chosen", func() {
			svg := chart.NewRenderer(dir, chart.WithFormat("svg"))

			So(svg.Path("x"), ShouldEqual, filepath.Join(dir, "x.svg"))
		})
	})
}
