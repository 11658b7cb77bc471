// Package metrics provides Prometheus metrics for the ARENA import service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the ARENA service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Import metrics - the business core
	importsStarted   prometheus.Counter
	importsCompleted prometheus.Counter
	importsFailed    *prometheus.CounterVec
	importDuration   prometheus.Histogram
	entitiesParsed   *prometheus.CounterVec
	matchesDerived   prometheus.Counter
	sessionsDerived  prometheus.Counter

	// Store metrics
	storeUpdateLatency prometheus.Histogram
	storeQueryLatency  prometheus.Histogram

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

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
		namespace:        "arena",
		subsystem:        "importer",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.importsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_started_total",
		Help:      "Schedule imports started",
	})
	m.importsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_completed_total",
		Help:      "Schedule imports completed successfully",
	})
	m.importsFailed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_failed_total",
		Help:      "Schedule imports failed, by failing step",
	}, []string{"step"})
	m.importDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_duration_ms",
		Help:      "End-to-end import duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.entitiesParsed = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "entities_parsed_total",
		Help:      "Primary entities extracted from schedule documents, by kind",
	}, []string{"kind"})
	m.matchesDerived = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_derived_total",
		Help:      "Matches derived from schedule documents",
	})
	m.sessionsDerived = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_derived_total",
		Help:      "Judging sessions derived from schedule documents",
	})

	m.storeUpdateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_update_latency_ms",
		Help:      "Store insert latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.storeQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_query_latency_ms",
		Help:      "Store read latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// Package-level helpers operating on the global manager.

// RecordImportStarted increments the started-imports counter.
func RecordImportStarted() {
	if globalManager.enabled {
		globalManager.importsStarted.Inc()
	}
}

// RecordImportCompleted increments the completed-imports counter.
func RecordImportCompleted() {
	if globalManager.enabled {
		globalManager.importsCompleted.Inc()
	}
}

// RecordImportFailed increments the failed-imports counter for a step.
func RecordImportFailed(step string) {
	if globalManager.enabled {
		globalManager.importsFailed.WithLabelValues(step).Inc()
	}
}

// RecordImportDuration observes an import's duration in milliseconds.
func RecordImportDuration(durationMs float64) {
	if globalManager.enabled {
		globalManager.importDuration.Observe(durationMs)
	}
}

// RecordEntitiesParsed adds to the per-kind extracted entity counter.
func RecordEntitiesParsed(kind string, count int) {
	if globalManager.enabled {
		globalManager.entitiesParsed.WithLabelValues(kind).Add(float64(count))
	}
}

// RecordMatchesDerived adds to the derived-matches counter.
func RecordMatchesDerived(count int) {
	if globalManager.enabled {
		globalManager.matchesDerived.Add(float64(count))
	}
}

// RecordSessionsDerived adds to the derived-sessions counter.
func RecordSessionsDerived(count int) {
	if globalManager.enabled {
		globalManager.sessionsDerived.Add(float64(count))
	}
}

// RecordStoreUpdateLatency observes a store insert latency in milliseconds.
func RecordStoreUpdateLatency(latencyMs float64) {
	if globalManager.enabled {
		globalManager.storeUpdateLatency.Observe(latencyMs)
	}
}

// RecordStoreQueryLatency observes a store read latency in milliseconds.
func RecordStoreQueryLatency(latencyMs float64) {
	if globalManager.enabled {
		globalManager.storeQueryLatency.Observe(latencyMs)
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
