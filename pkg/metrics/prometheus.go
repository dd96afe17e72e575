// Package metrics provides Prometheus metrics for the podium pipeline.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every pipeline metric.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	rowsLoaded       *prometheus.GaugeVec
	rowsDropped      *prometheus.GaugeVec
	rowsExported     *prometheus.GaugeVec
	joinUnmatched    *prometheus.GaugeVec
	duplicateRows    *prometheus.GaugeVec
	stageDuration    *prometheus.HistogramVec
	viewsComputed    *prometheus.CounterVec
	chartsRendered   *prometheus.CounterVec
	unmatchedRegions *prometheus.GaugeVec
	errorsTotal      *prometheus.CounterVec
	lastRunUnix      prometheus.Gauge

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "pipeline",
		histogramBuckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	gauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return auto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: m.constLabels,
		}, labels)
	}
	counter := func(name, help string, labels ...string) *prometheus.CounterVec {
		return auto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: m.constLabels,
		}, labels)
	}

	m.rowsLoaded = gauge("rows_loaded", "Rows read per table", "table")
	m.rowsDropped = gauge("rows_dropped", "Rows removed by null cleaning per table", "table")
	m.rowsExported = gauge("rows_exported", "Rows written to the export directory per table", "table")
	m.joinUnmatched = gauge("join_unmatched_rows", "Left rows without a right-side match", "join")
	m.duplicateRows = gauge("duplicate_rows", "Full-row duplicates found by the profiler", "table")
	m.viewsComputed = counter("views_computed_total", "Aggregate views computed", "view")
	m.chartsRendered = counter("charts_rendered_total", "Charts written to disk", "view", "format")
	m.unmatchedRegions = gauge("choropleth_unmatched_countries", "Countries with no boundary match", "view")
	m.errorsTotal = counter("errors_total", "Errors by component", "component", "error_type")

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "stage_duration_seconds",
		Help:        "Wall time per pipeline stage",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"stage"})

	m.lastRunUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "last_run_timestamp_seconds",
		Help:        "Unix time of the last completed run",
		ConstLabels: m.constLabels,
	})

	m.httpRequests = counter("http_requests_total", "HTTP requests served", "endpoint", "method", "status_code")
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_milliseconds",
		Help:        "HTTP request duration in milliseconds",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordRowsLoaded sets the number of rows read for table.
func RecordRowsLoaded(table string, rows int) {
	globalManager.rowsLoaded.WithLabelValues(table).Set(float64(rows))
}

// RecordRowsDropped sets the number of rows removed by cleaning.
func RecordRowsDropped(table string, rows int) {
	globalManager.rowsDropped.WithLabelValues(table).Set(float64(rows))
}

// RecordRowsExported sets the number of rows written for table.
func RecordRowsExported(table string, rows int) {
	globalManager.rowsExported.WithLabelValues(table).Set(float64(rows))
}

// RecordJoinUnmatched sets the number of unmatched left rows for join.
func RecordJoinUnmatched(join string, rows int) {
	globalManager.joinUnmatched.WithLabelValues(join).Set(float64(rows))
}

// RecordDuplicateRows sets the duplicate-row count for table.
func RecordDuplicateRows(table string, rows int) {
	globalManager.duplicateRows.WithLabelValues(table).Set(float64(rows))
}

// ObserveStage records the duration of stage in seconds.
func ObserveStage(stage string, seconds float64) {
	globalManager.stageDuration.WithLabelValues(stage).Observe(seconds)
}

// RecordViewComputed increments the computed counter for view.
func RecordViewComputed(view string) {
	globalManager.viewsComputed.WithLabelValues(view).Inc()
}

// RecordChartRendered increments the render counter for view and format.
func RecordChartRendered(view, format string) {
	globalManager.chartsRendered.WithLabelValues(view, format).Inc()
}

// RecordUnmatchedCountries sets how many countries a choropleth could not place.
func RecordUnmatchedCountries(view string, n int) {
	globalManager.unmatchedRegions.WithLabelValues(view).Set(float64(n))
}

// RecordError increments the error counter.
func RecordError(component, errorType string) {
	globalManager.errorsTotal.WithLabelValues(component, errorType).Inc()
}

// MarkRunCompleted stamps the last-run gauge with the current time.
func MarkRunCompleted() {
	globalManager.lastRunUnix.SetToCurrentTime()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// WriteTextfile dumps the registry in the text exposition format, the way
// node_exporter's textfile collector expects batch jobs to publish.
func WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, customRegistry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
