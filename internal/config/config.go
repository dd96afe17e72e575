// Package config defines pipeline configuration and its loading hooks.
//
// Conventions:
//   - New returns a Config populated with defaults.
//   - Load layers an optional YAML file and PODIUM_* environment variables
//     over those defaults and validates the result.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/okian/podium/internal/domain/views"
)

// Local-athlete join modes, as understood by the views.
const (
	LocalJoinSlug     = views.JoinSlug
	LocalJoinLocation = views.JoinLocation
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// RawDir holds the four source CSV files.
	RawDir string `koanf:"raw_dir"`
	// CleanDir receives the cleaned exports and feeds the chart stage.
	CleanDir string `koanf:"clean_dir"`
	// ChartDir receives PNG charts and HTML maps.
	ChartDir string `koanf:"chart_dir"`
	// ReportDir receives profile reports, views.json and views.xlsx.
	ReportDir string `koanf:"report_dir"`

	// BoundariesPath points at a .shp or .geojson country boundary file.
	// Empty disables choropleth rendering.
	BoundariesPath string `koanf:"boundaries_path"`
	// BoundaryNameField is the feature property matched against country_name.
	BoundaryNameField string `koanf:"boundary_name_field"`

	PreviewRows       int `koanf:"preview_rows"`
	TopDisciplines    int `koanf:"top_disciplines"`
	TopWomenCountries int `koanf:"top_women_countries"`
	TopLocalAthletes  int `koanf:"top_local_athletes"`
	SplineSamples     int `koanf:"spline_samples"`

	// LocalJoin selects how medals are matched to their host games: "slug" or "location".
	LocalJoin string `koanf:"local_join"`

	// RenderWorkers bounds concurrent chart rendering; 1 renders sequentially.
	RenderWorkers int `koanf:"render_workers"`

	ChartWidthIn  float64 `koanf:"chart_width_in"`
	ChartHeightIn float64 `koanf:"chart_height_in"`

	// MetricsPath is where batch runs dump Prometheus text metrics. Empty disables it.
	MetricsPath string `koanf:"metrics_path"`

	// Addr configures the listen address for `podium serve`.
	Addr string `koanf:"addr"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		RawDir:            filepath.Join("datos", "raw"),
		CleanDir:          filepath.Join("datos", "refined"),
		ChartDir:          filepath.Join("out", "charts"),
		ReportDir:         filepath.Join("out", "reports"),
		BoundariesPath:    filepath.Join("mapa_asset", "ne_110m_admin_0_countries.shp"),
		BoundaryNameField: "ADMIN",
		PreviewRows:       5,
		TopDisciplines:    5,
		TopWomenCountries: 15,
		TopLocalAthletes:  10,
		SplineSamples:     500,
		LocalJoin:         LocalJoinSlug,
		RenderWorkers:     1,
		ChartWidthIn:      12,
		ChartHeightIn:     8,
		MetricsPath:       filepath.Join("out", "podium.prom"),
		Addr:              ":9080",
	}
}

// Validate checks invariants the pipeline relies on.
func (c *Config) Validate() error {
	switch {
	case c.RawDir == "":
		return fmt.Errorf("%w: raw_dir must not be empty", ErrInvalidConfig)
	case c.CleanDir == "":
		return fmt.Errorf("%w: clean_dir must not be empty", ErrInvalidConfig)
	case c.ChartDir == "":
		return fmt.Errorf("%w: chart_dir must not be empty", ErrInvalidConfig)
	case c.ReportDir == "":
		return fmt.Errorf("%w: report_dir must not be empty", ErrInvalidConfig)
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.PreviewRows < 0:
		return fmt.Errorf("%w: preview_rows must not be negative", ErrInvalidConfig)
	case c.TopDisciplines < 1, c.TopWomenCountries < 1, c.TopLocalAthletes < 1:
		return fmt.Errorf("%w: top-N limits must be positive", ErrInvalidConfig)
	case c.SplineSamples < 2:
		return fmt.Errorf("%w: spline_samples must be at least 2", ErrInvalidConfig)
	case c.RenderWorkers < 1:
		return fmt.Errorf("%w: render_workers must be positive", ErrInvalidConfig)
	case c.ChartWidthIn <= 0 || c.ChartHeightIn <= 0:
		return fmt.Errorf("%w: chart dimensions must be positive", ErrInvalidConfig)
	}
	if c.LocalJoin != LocalJoinSlug && c.LocalJoin != LocalJoinLocation {
		return fmt.Errorf("%w: local_join must be %q or %q, got %q",
			ErrInvalidConfig, LocalJoinSlug, LocalJoinLocation, c.LocalJoin)
	}
	return nil
}
