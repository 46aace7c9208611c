// Package metrics provides Prometheus metrics for the golfparty scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Round lifecycle metrics
	roundsStarted    prometheus.Counter
	roundsScored     prometheus.Counter
	setsFinished     prometheus.Counter
	resultsProcessed prometheus.Counter
	engineErrors     *prometheus.CounterVec
	scoringDuration  prometheus.Histogram

	// Standing state gauges
	playersInSet  prometheus.Gauge
	playersInGame prometheus.Gauge
	currentRound  prometheus.Gauge
	currentSet    prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "golfparty",
		subsystem:        "engine",
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

	m.roundsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_started_total",
		Help:      "Total number of rounds opened",
	})

	m.roundsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_scored_total",
		Help:      "Total number of rounds scored and finished",
	})

	m.setsFinished = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sets_finished_total",
		Help:      "Total number of sets finished",
	})

	m.resultsProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_processed_total",
		Help:      "Total number of submission rows scored",
	})

	m.engineErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "engine_errors_total",
			Help:      "Total number of rejected engine operations by operation",
		},
		[]string{"operation"},
	)

	m.scoringDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_duration_milliseconds",
		Help:      "Histogram of round scoring duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.playersInSet = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_in_set",
		Help:      "Distinct players seen in the current set",
	})

	m.playersInGame = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_in_game",
		Help:      "Distinct players seen across the whole game",
	})

	m.currentRound = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_round",
		Help:      "Round number of the current round",
	})

	m.currentSet = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "current_set",
		Help:      "Active set number",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Package-level facade over the global manager.

// RecordRoundStarted counts an opened round.
func RecordRoundStarted() {
	if globalManager.enabled {
		globalManager.roundsStarted.Inc()
	}
}

// RecordRoundScored counts a scored round and its submission rows.
func RecordRoundScored(resultCount int) {
	if globalManager.enabled {
		globalManager.roundsScored.Inc()
		globalManager.resultsProcessed.Add(float64(resultCount))
	}
}

// RecordSetFinished counts a finished set.
func RecordSetFinished() {
	if globalManager.enabled {
		globalManager.setsFinished.Inc()
	}
}

// RecordEngineError counts a rejected engine operation.
func RecordEngineError(operation string) {
	if globalManager.enabled {
		globalManager.engineErrors.WithLabelValues(operation).Inc()
	}
}

// RecordScoringDuration observes how long one round's scoring took.
func RecordScoringDuration(durationMs float64) {
	if globalManager.enabled {
		globalManager.scoringDuration.Observe(durationMs)
	}
}

// UpdatePlayerCounts sets the distinct-player gauges.
func UpdatePlayerCounts(inSet, inGame int) {
	if globalManager.enabled {
		globalManager.playersInSet.Set(float64(inSet))
		globalManager.playersInGame.Set(float64(inGame))
	}
}

// UpdateRoundState sets the current round and set gauges.
func UpdateRoundState(round, set int) {
	if globalManager.enabled {
		globalManager.currentRound.Set(float64(round))
		globalManager.currentSet.Set(float64(set))
	}
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	}
}

// RecordHTTPRequestDuration observes one HTTP request's duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
	}
}
