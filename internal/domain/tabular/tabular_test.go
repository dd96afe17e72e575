package tabular_test

import (
	"errors"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/okian/podium/internal/domain/tabular"
	. "github.com/smartystreets/goconvey/convey"
)

func frame(records [][]string) dataframe.DataFrame {
	return dataframe.LoadRecords(records, dataframe.NaNValues([]string{"", "NA", "NaN"}))
}

func TestLeftJoin(t *testing.T) {
	Convey("Given medals and athletes frames", t, func() {
		medals := frame([][]string{
			{"athlete_url", "athlete_full_name", "medal_type"},
			{"u1", "Ann A", "GOLD"},
			{"u2", "Bob B", "SILVER"},
			{"u9", "Zed Z", "BRONZE"},
			{"", "Team", "GOLD"},
		})
		athletes := frame([][]string{
			{"athlete_url", "athlete_full_name", "athlete_year_birth"},
			{"u2", "Robert B", "1990"},
			{"u1", "Ann Other", "1985"},
		})

		Convey("When joined on athlete_url", func() {
			out, stats, err := tabular.LeftJoin(medals, athletes, "athlete_url")

			Convey("Then every medal row is kept in order", func() {
				So(err, ShouldBeNil)
				So(out.Nrow(), ShouldEqual, medals.Nrow())
				So(out.Col("athlete_url").Records()[:3], ShouldResemble, []string{"u1", "u2", "u9"})
			})

			Convey("Then the medal-side name wins and appears once", func() {
				So(out.Names(), ShouldResemble, []string{"athlete_url", "athlete_full_name", "medal_type", "athlete_year_birth"})
				So(out.Col("athlete_full_name").Records(), ShouldResemble, []string{"Ann A", "Bob B", "Zed Z", "Team"})
				So(stats.Dropped, ShouldResemble, []string{"athlete_full_name"})
			})

			Convey("Then unmatched and missing keys get missing athlete fields", func() {
				So(stats.Unmatched, ShouldEqual, 2)
				na := out.Col("athlete_year_birth").IsNaN()
				So(na, ShouldResemble, []bool{false, false, true, true})
				So(out.Col("athlete_year_birth").Records()[:2], ShouldResemble, []string{"1985", "1990"})
			})
		})

		Convey("When the right table has several matches for a key", func() {
			dup := frame([][]string{
				{"athlete_url", "bio"},
				{"u1", "first"},
				{"u1", "second"},
			})
			out, _, err := tabular.LeftJoin(medals, dup, "athlete_url")

			Convey("Then the left row expands in right-table order", func() {
				So(err, ShouldBeNil)
				So(out.Nrow(), ShouldEqual, 5)
				So(out.Col("bio").Records()[:2], ShouldResemble, []string{"first", "second"})
			})
		})

		Convey("When the key column is absent", func() {
			_, _, err := tabular.LeftJoin(medals, athletes, "slug_game")

			So(errors.Is(err, tabular.ErrMissingColumn), ShouldBeTrue)
		})
	})
}

func TestClean(t *testing.T) {
	Convey("Given a frame with missing cells", t, func() {
		df := frame([][]string{
			{"game_slug", "game_year", "game_location"},
			{"tokyo-2020", "2020", "Japan"},
			{"beijing-2022", "", "China"},
			{"paris-2024", "2024", "France"},
			{"", "1896", "Greece"},
		})

		Convey("When cleaned", func() {
			out, stats, err := tabular.Clean(df)

			Convey("Then no missing cell remains", func() {
				So(err, ShouldBeNil)
				So(tabular.HasNulls(out), ShouldBeFalse)
				So(out.Nrow(), ShouldEqual, 2)
				So(stats.RowsIn, ShouldEqual, 4)
				So(stats.RowsDropped, ShouldEqual, 2)
				So(out.Col("game_slug").Records(), ShouldResemble, []string{"tokyo-2020", "paris-2024"})
			})

			Convey("Then the input frame is untouched", func() {
				So(df.Nrow(), ShouldEqual, 4)
				So(tabular.NullCounts(df), ShouldResemble, []int{1, 1, 0})
			})
		})

		Convey("When every row has a missing cell", func() {
			all := frame([][]string{
				{"a", "b"},
				{"x", ""},
				{"", "y"},
			})
			out, stats, err := tabular.Clean(all)

			Convey("Then an empty frame with the same columns is returned", func() {
				So(err, ShouldBeNil)
				So(out.Nrow(), ShouldEqual, 0)
				So(out.Names(), ShouldResemble, []string{"a", "b"})
				So(stats.RowsDropped, ShouldEqual, 2)
			})
		})
	})
}

func TestFillNA(t *testing.T) {
	Convey("Given a frame with a missing numeric cell", t, func() {
		df := frame([][]string{
			{"name", "medals"},
			{"a", "3"},
			{"b", ""},
		})

		Convey("When filled with zero", func() {
			out, err := tabular.FillNA(df, tabular.FillValue)

			So(err, ShouldBeNil)
			So(out.Col("medals").Records(), ShouldResemble, []string{"3", "0"})
			So(out.Types(), ShouldResemble, df.Types())
		})
	})
}

func TestRequireColumns(t *testing.T) {
	Convey("Given a frame", t, func() {
		df := frame([][]string{{"a", "b"}, {"1", "2"}})

		So(tabular.RequireColumns(df, "t", "a", "b"), ShouldBeNil)
		err := tabular.RequireColumns(df, "t", "a", "c")
		So(errors.Is(err, tabular.ErrMissingColumn), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "t.c")
	})
}
