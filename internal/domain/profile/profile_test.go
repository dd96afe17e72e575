package profile_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/okian/podium/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func hostFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"game_slug", "game_season", "game_year"},
		{"tokyo-2020", "Summer", "2020"},
		{"beijing-2022", "Winter", "2022"},
		{"paris-2024", "Summer", "2024"},
		{"paris-2024", "Summer", "2024"},
		{"", "Summer", "1900"},
	}, dataframe.NaNValues([]string{"", "NaN"}))
}

func TestBuild(t *testing.T) {
	Convey("Given a host table", t, func() {
		df := hostFrame()

		Convey("When profiled with a preview of 2 rows", func() {
			r, err := profile.Build(context.Background(), "hosts", df, 2)

			Convey("Then the summary matches the table", func() {
				So(err, ShouldBeNil)
				So(r.Rows, ShouldEqual, 5)
				So(r.Header, ShouldResemble, []string{"game_slug", "game_season", "game_year"})
				So(len(r.Preview), ShouldEqual, 2)
				So(r.Preview[0], ShouldResemble, []string{"tokyo-2020", "Summer", "2020"})
				So(r.Duplicates, ShouldEqual, 1)
			})

			Convey("Then null counts are per column", func() {
				So(r.Columns[0].Nulls, ShouldEqual, 1)
				So(r.Columns[0].NonNull, ShouldEqual, 4)
				So(r.Columns[2].Type, ShouldEqual, "int")
			})

			Convey("Then categorical stats report the most frequent value", func() {
				season := r.Stats[1]
				So(season.Numeric, ShouldBeFalse)
				So(season.Count, ShouldEqual, 5)
				So(season.Unique, ShouldEqual, 2)
				So(season.Top, ShouldEqual, "Summer")
				So(season.Freq, ShouldEqual, 4)
			})

			Convey("Then numeric stats use linear quantiles", func() {
				year := r.Stats[2]
				So(year.Numeric, ShouldBeTrue)
				So(year.Min, ShouldEqual, 1900)
				So(year.Max, ShouldEqual, 2024)
				So(year.Q50, ShouldEqual, 2022)
				So(year.Q25, ShouldEqual, 2020)
				So(year.Mean, ShouldAlmostEqual, 1998.0, 1e-9)
			})

			Convey("Then the frame is not mutated", func() {
				So(df.Nrow(), ShouldEqual, 5)
			})
		})

		Convey("When the preview is larger than the table", func() {
			r, err := profile.Build(context.Background(), "hosts", df, 50)

			So(err, ShouldBeNil)
			So(len(r.Preview), ShouldEqual, 5)
		})
	})

	Convey("Given a frame that failed to load", t, func() {
		df := dataframe.DataFrame{Err: fmt.Errorf("boom")}

		_, err := profile.Build(context.Background(), "broken", df, 5)

		So(errors.Is(err, profile.ErrUnreadableTable), ShouldBeTrue)
	})
}

func TestRender(t *testing.T) {
	Convey("Given a host profile", t, func() {
		r, err := profile.Build(context.Background(), "hosts", hostFrame(), 3)
		So(err, ShouldBeNil)

		Convey("When rendered in plain mode", func() {
			var buf bytes.Buffer
			So(r.Render(&buf, true), ShouldBeNil)
			out := buf.String()

			Convey("Then every section is present without escapes", func() {
				So(out, ShouldContainSubstring, "=== HOSTS (5 rows) ===")
				So(out, ShouldContainSubstring, "First 3 rows")
				So(out, ShouldContainSubstring, "Describe")
				So(out, ShouldContainSubstring, "Nulls per column")
				So(out, ShouldContainSubstring, "Duplicated rows")
				So(out, ShouldContainSubstring, "game_slug, game_season, game_year")
				So(out, ShouldNotContainSubstring, "\x1b[")
			})
		})
	})
}
