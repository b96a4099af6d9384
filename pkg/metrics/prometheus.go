// Package metrics provides Prometheus metrics for the medal dashboard service.
package metrics

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the dashboard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Dataset Metrics - one load per process, retried on failure
	datasetLoads       prometheus.Counter
	datasetLoadLatency prometheus.Histogram
	datasetRecords     prometheus.Gauge
	datasetRowsSkipped prometheus.Gauge

	// Render Metrics - one observation per dashboard build
	renders          *prometheus.CounterVec
	renderLatency    prometheus.Histogram
	selectionRows    prometheus.Histogram
	selectionEmpty   prometheus.Counter
	markersSkipped   prometheus.Counter
	tallyCountries   prometheus.Gauge
	criteriaRejected prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Enhanced Error Metrics - Detailed error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "medalboard",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

func (m *Manager) name(n string) string {
	if m.metricPrefix == "" {
		return n
	}
	return m.metricPrefix + "_" + n
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		ConstLabels: m.customLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        m.name(name),
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Dataset Metrics
	m.datasetLoads = auto.NewCounter(m.counterOpts(
		"dataset_loads_total", "Total number of dataset load attempts"))
	m.datasetLoadLatency = auto.NewHistogram(m.histogramOpts(
		"dataset_load_latency_milliseconds", "Dataset fetch and parse latency in milliseconds",
		[]float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000}))
	m.datasetRecords = auto.NewGauge(m.gaugeOpts(
		"dataset_records", "Number of records in the loaded dataset"))
	m.datasetRowsSkipped = auto.NewGauge(m.gaugeOpts(
		"dataset_rows_skipped", "Number of source rows rejected during the last load"))

	// Render Metrics
	m.renders = auto.NewCounterVec(m.counterOpts(
		"renders_total", "Total number of dashboard builds by output kind"),
		[]string{"kind"})
	m.renderLatency = auto.NewHistogram(m.histogramOpts(
		"render_latency_milliseconds", "Dashboard build latency in milliseconds", m.histogramBuckets))
	m.selectionRows = auto.NewHistogram(m.histogramOpts(
		"selection_rows", "Number of records kept by a selection",
		prometheus.ExponentialBuckets(1, 4, 9)))
	m.selectionEmpty = auto.NewCounter(m.counterOpts(
		"selection_empty_total", "Total number of selections that matched no record"))
	m.markersSkipped = auto.NewCounter(m.counterOpts(
		"markers_skipped_total", "Total number of countries left off the map for lack of coordinates"))
	m.tallyCountries = auto.NewGauge(m.gaugeOpts(
		"tally_countries", "Number of countries in the most recent tally"))
	m.criteriaRejected = auto.NewCounter(m.counterOpts(
		"criteria_rejected_total", "Total number of selections rejected as invalid"))

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(m.counterOpts(
		"http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts(
		"http_request_duration_milliseconds", "HTTP request duration in milliseconds (user experience)",
		m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})

	// Enhanced Error Metrics - Detailed error tracking
	m.errorRateByComponent = auto.NewCounterVec(m.counterOpts(
		"errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"})
	m.errorRateByType = auto.NewCounterVec(m.counterOpts(
		"errors_by_type_total", "Total number of errors by type"),
		[]string{"error_type", "severity"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts(
		"errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"})
	m.errorLatency = auto.NewHistogramVec(m.histogramOpts(
		"error_latency_milliseconds", "Latency of operations that resulted in errors", m.histogramBuckets),
		[]string{"component", "error_type"})

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts(
		"system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts(
		"system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}))
}

// Dataset Metrics Functions.

// RecordDatasetLoad increments the dataset load counter.
func RecordDatasetLoad() {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoads.Inc()
}

// RecordDatasetLoadLatency records fetch and parse latency in milliseconds.
func RecordDatasetLoadLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoadLatency.Observe(latencyMs)
}

// UpdateDatasetRecords sets the loaded record count.
func UpdateDatasetRecords(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetRecords.Set(float64(count))
}

// RecordDatasetRowsSkipped sets the number of rows rejected by the last load.
func RecordDatasetRowsSkipped(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetRowsSkipped.Set(float64(count))
}

// Render Metrics Functions.

// RecordRender counts one dashboard build of the given kind (json, html, options, records).
func RecordRender(kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.renders.WithLabelValues(kind).Inc()
}

// RecordRenderLatency records dashboard build latency in milliseconds.
func RecordRenderLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.renderLatency.Observe(latencyMs)
}

// RecordSelectionRows records the size of a filtered view.
func RecordSelectionRows(rows int) {
	if !globalManager.enabled {
		return
	}
	globalManager.selectionRows.Observe(float64(rows))
	if rows == 0 {
		globalManager.selectionEmpty.Inc()
	}
}

// RecordMarkersSkipped adds countries that had no coordinate.
func RecordMarkersSkipped(n int) {
	if !globalManager.enabled || n <= 0 {
		return
	}
	globalManager.markersSkipped.Add(float64(n))
}

// UpdateTallyCountries sets the country count of the latest tally.
func UpdateTallyCountries(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.tallyCountries.Set(float64(n))
}

// RecordCriteriaRejected counts a selection rejected as invalid.
func RecordCriteriaRejected() {
	if !globalManager.enabled {
		return
	}
	globalManager.criteriaRejected.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// Enhanced Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// SampleSystem reads runtime stats once and updates the system gauges.
func SampleSystem() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	UpdateSystemMemoryUsage(ms.Alloc)
	UpdateSystemGoroutineCount(runtime.NumGoroutine())
	if ms.NumGC > 0 {
		last := ms.PauseNs[(ms.NumGC+255)%256]
		RecordSystemGCPauseTime(float64(last) / float64(time.Millisecond))
	}
}

// RunSystemSampler samples runtime stats every refresh interval until ctx is done.
func RunSystemSampler(ctx context.Context) {
	if !globalManager.enabled {
		return
	}
	ticker := time.NewTicker(globalManager.refreshInterval)
	defer ticker.Stop()
	SampleSystem()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			SampleSystem()
		}
	}
}

// SetEnabled toggles recording on the global manager.
func SetEnabled(enabled bool) {
	globalManager.enabled = enabled
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
