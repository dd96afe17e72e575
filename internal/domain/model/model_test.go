package model_test

import (
	"testing"

	model "github.com/okian/podium/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestSlugYear(t *testing.T) {
	convey.Convey("Given game slugs", t, func() {
		convey.Convey("When the slug ends with a year", func() {
			y, ok := model.SlugYear("beijing-2022")

			convey.So(ok, convey.ShouldBeTrue)
			convey.So(y, convey.ShouldEqual, 2022)
		})

		convey.Convey("When the city name has several words", func() {
			y, ok := model.SlugYear("garmisch-partenkirchen-1936")

			convey.So(ok, convey.ShouldBeTrue)
			convey.So(y, convey.ShouldEqual, 1936)
		})

		convey.Convey("When the slug has no year", func() {
			_, ok := model.SlugYear("athens")

			convey.So(ok, convey.ShouldBeFalse)
		})
	})
}

func TestMedalTypes(t *testing.T) {
	convey.Convey("Given the medal type ordering", t, func() {
		convey.So(model.MedalTypes, convey.ShouldResemble, []model.MedalType{model.Gold, model.Silver, model.Bronze})
	})
}
