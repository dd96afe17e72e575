package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("unit"),
				WithHistogramBuckets([]float64{0.1, 1}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the metrics are registered on that registry", func() {
				So(manager, ShouldNotBeNil)
				manager.rowsLoaded.WithLabelValues("medals").Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_unit_rows_loaded")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording pipeline metrics", func() {
			So(func() {
				RecordRowsLoaded("medals", 10)
				RecordRowsDropped("medals", 2)
				RecordRowsExported("medals", 8)
				RecordJoinUnmatched("medals_athletes", 1)
				RecordDuplicateRows("hosts", 0)
				ObserveStage("load", 0.2)
				RecordViewComputed("gold_by_country")
				RecordChartRendered("gold_by_country", "png")
				RecordUnmatchedCountries("gold_by_country", 4)
				RecordError("views", "missing_column")
				MarkRunCompleted()
				RecordHTTPRequest("/api/views", "GET", "200")
				RecordHTTPRequestDuration("/api/views", "GET", "200", 3)
			}, ShouldNotPanic)
		})

		Convey("When writing the textfile", func() {
			RecordRowsLoaded("athletes", 5)
			path := filepath.Join(t.TempDir(), "podium.prom")
			err := WriteTextfile(path)

			Convey("Then the exposition contains the gauges", func() {
				So(err, ShouldBeNil)
				body, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(body), ShouldContainSubstring, `podium_pipeline_rows_loaded{table="athletes"} 5`)
			})
		})

		Convey("When the textfile path is empty", func() {
			So(WriteTextfile(""), ShouldBeNil)
		})
	})
}
