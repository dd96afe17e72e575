package report_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/okian/podium/internal/adapters/report"
	"github.com/okian/podium/internal/domain/profile"
	"github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
)

func fixture() *types.Views {
	return &types.Views{
		TopGoldByDiscipline:  []types.DisciplineLeader{{Discipline: "Athletics", Country: "USA", Golds: 3, DisciplineGolds: 4}},
		WomenMedalsByCountry: []types.CountryMedals{{Country: "Norway", Gold: 1, Silver: 2}},
		GoldByCountry:        []types.CountryValue{{Country: "USA", Value: 3}},
		TopLocalAthletes:     []types.AthleteCount{{Athlete: "Ole", Count: 2}},
		ParticipationByBirthYear: types.BirthYearParticipation{
			Points: []types.YearCount{{Year: 1980, Count: 2}},
			Smooth: types.Curve{X: []float64{1980, 1981}, Y: []float64{2, 2.5}},
		},
		ParticipationByGender: []types.Series{{Name: "Men", Points: []types.YearCount{{Year: 1980, Count: 2}}}},
		NationsBySeason:       []types.Series{{Name: "Winter", Points: []types.YearCount{{Year: 1994, Count: 1}}}},
		YoungestWinterGold:    []types.YoungestWinner{{Country: "Norway", Athlete: "Ole", Age: 18, Game: "lillehammer-1994"}},
		UnmatchedCountries:    map[string][]string{types.ViewGoldByCountry: {"Atlantis"}},
	}
}

func TestWorkbook(t *testing.T) {
	Convey("Given computed views", t, func() {
		w := report.NewWriter(filepath.Join(t.TempDir(), "reports"))

		Convey("When the workbook is written", func() {
			path, err := w.WriteWorkbook(fixture())
			So(err, ShouldBeNil)

			f, err := excelize.OpenFile(path)
			So(err, ShouldBeNil)
			defer func() { _ = f.Close() }()

			Convey("Then there is one sheet per view plus the unmatched sheet", func() {
				So(f.GetSheetList(), ShouldResemble, append(append([]string{}, types.ViewNames...), report.UnmatchedSheet))
			})

			Convey("Then rows follow the header", func() {
				rows, err := f.GetRows(types.ViewWomenMedalsByCountry)
				So(err, ShouldBeNil)
				So(rows[0], ShouldResemble, []string{"country", "gold", "silver", "bronze", "total"})
				So(rows[1], ShouldResemble, []string{"Norway", "1", "2", "0", "3"})
			})

			Convey("Then the smoothed curve sits beside the raw counts", func() {
				rows, err := f.GetRows(types.ViewParticipationByBirthYear)
				So(err, ShouldBeNil)
				So(len(rows), ShouldEqual, 3)
				So(rows[2][3], ShouldEqual, "1981")
			})
		})
	})
}

func TestJSON(t *testing.T) {
	Convey("Given computed views", t, func() {
		w := report.NewWriter(t.TempDir())

		Convey("When written as JSON and read back", func() {
			path, err := w.WriteJSON(fixture())
			So(err, ShouldBeNil)
			back, err := report.ReadJSON(path)

			So(err, ShouldBeNil)
			So(back, ShouldResemble, fixture())
		})
	})
}

func TestWriteProfile(t *testing.T) {
	Convey("Given a table profile", t, func() {
		df := dataframe.LoadRecords([][]string{{"a", "b"}, {"1", "x"}})
		r, err := profile.Build(context.Background(), "hosts", df, 5)
		So(err, ShouldBeNil)
		w := report.NewWriter(t.TempDir())

		path, err := w.WriteProfile(r)

		So(err, ShouldBeNil)
		So(filepath.Base(path), ShouldEqual, "profile_hosts.txt")
		data, err := os.ReadFile(path)
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "HOSTS")
	})
}

func TestFileSource(t *testing.T) {
	Convey("Given a views.json on disk", t, func() {
		w := report.NewWriter(t.TempDir())
		path, err := w.WriteJSON(fixture())
		So(err, ShouldBeNil)
		src := report.NewFileSource(path)

		Convey("Then Views returns the stored views and caches them", func() {
			first, err := src.Views(context.Background())
			So(err, ShouldBeNil)
			So(first, ShouldResemble, fixture())

			second, err := src.Views(context.Background())
			So(err, ShouldBeNil)
			So(second, ShouldPointTo, first)
		})

		Convey("Then a cancelled context is rejected", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := src.Views(ctx)
			So(err, ShouldEqual, context.Canceled)
		})
	})

	Convey("Given a missing file", t, func() {
		src := report.NewFileSource(filepath.Join(t.TempDir(), "views.json"))
		_, err := src.Views(context.Background())
		So(err, ShouldNotBeNil)
	})
}
