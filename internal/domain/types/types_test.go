package types_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestCountryMedals(t *testing.T) {
	convey.Convey("Given a country medal tally", t, func() {
		c := types.CountryMedals{Country: "Norway", Gold: 3, Silver: 2, Bronze: 1}

		convey.Convey("Then the total sums every medal type", func() {
			convey.So(c.Total(), convey.ShouldEqual, 6)
		})
	})
}

func TestViewNamed(t *testing.T) {
	convey.Convey("Given a views bundle", t, func() {
		v := &types.Views{
			TopLocalAthletes: []types.AthleteCount{{Athlete: "A", Count: 2}},
		}

		convey.Convey("When every known name is looked up", func() {
			for _, name := range types.ViewNames {
				_, ok := v.ViewNamed(name)
				convey.So(ok, convey.ShouldBeTrue)
			}
		})

		convey.Convey("When a view is looked up by name", func() {
			got, ok := v.ViewNamed(types.ViewTopLocalAthletes)

			convey.So(ok, convey.ShouldBeTrue)
			convey.So(got, convey.ShouldResemble, v.TopLocalAthletes)
		})

		convey.Convey("When an unknown name is looked up", func() {
			_, ok := v.ViewNamed("medals_by_planet")

			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}
