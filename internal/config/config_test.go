package config_test

import (
	"errors"
	"testing"

	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/views"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have the analysis defaults", func() {
			convey.So(cfg.PreviewRows, convey.ShouldEqual, 5)
			convey.So(cfg.TopDisciplines, convey.ShouldEqual, 5)
			convey.So(cfg.TopWomenCountries, convey.ShouldEqual, 15)
			convey.So(cfg.TopLocalAthletes, convey.ShouldEqual, 10)
			convey.So(cfg.SplineSamples, convey.ShouldEqual, 500)
			convey.So(cfg.LocalJoin, convey.ShouldEqual, config.LocalJoinSlug)
			convey.So(cfg.BoundaryNameField, convey.ShouldEqual, "ADMIN")
			convey.So(cfg.RenderWorkers, convey.ShouldEqual, 1)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs that break an invariant", t, func() {
		cases := map[string]func(c *config.Config){
			"empty raw dir":     func(c *config.Config) { c.RawDir = "" },
			"empty clean dir":   func(c *config.Config) { c.CleanDir = "" },
			"negative preview":  func(c *config.Config) { c.PreviewRows = -1 },
			"zero disciplines":  func(c *config.Config) { c.TopDisciplines = 0 },
			"one spline sample": func(c *config.Config) { c.SplineSamples = 1 },
			"zero workers":      func(c *config.Config) { c.RenderWorkers = 0 },
			"zero width":        func(c *config.Config) { c.ChartWidthIn = 0 },
			"unknown join":      func(c *config.Config) { c.LocalJoin = "city" },
		}

		for name, mutate := range cases {
			convey.Convey("When the config has "+name, func() {
				cfg := config.New()
				mutate(cfg)
				err := cfg.Validate()
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}

func TestConfig_LocalJoinModes(t *testing.T) {
	convey.Convey("Given the configurable local join modes", t, func() {
		convey.Convey("Then they are the modes the views accept", func() {
			convey.So(config.LocalJoinSlug, convey.ShouldEqual, views.JoinSlug)
			convey.So(config.LocalJoinLocation, convey.ShouldEqual, views.JoinLocation)
			convey.So(config.New().LocalJoin, convey.ShouldEqual, views.DefaultOptions().LocalJoin)
		})
	})
}
