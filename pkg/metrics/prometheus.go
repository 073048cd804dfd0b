// Package metrics provides Prometheus metrics for the insight engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the engine.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Cache metrics - recomputation gating effectiveness
	cacheHits      *prometheus.CounterVec
	cacheMisses    *prometheus.CounterVec
	cacheEvictions *prometheus.CounterVec

	// Analysis backend metrics - remote call volume and health
	analysisCalls   prometheus.Counter
	analysisErrors  prometheus.Counter
	analysisLatency prometheus.Histogram

	// Bio-match metrics - score distribution
	matchScores prometheus.Histogram

	// Dashboard metrics - selection outcomes
	dashboardBuilds        *prometheus.CounterVec
	dashboardBuildDuration prometheus.Histogram
	insightsPooled         prometheus.Histogram
	insightsDismissed      prometheus.Counter
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
		namespace:        "skinsight",
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

	m.cacheHits = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cache_hits_total",
			Help:      "Total cache hits by cache name (avoided backend calls)",
		},
		[]string{"cache"},
	)

	m.cacheMisses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cache_misses_total",
			Help:      "Total cache misses by cache name",
		},
		[]string{"cache"},
	)

	m.cacheEvictions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "cache_evictions_total",
			Help:      "Total cache evictions by cache name (capacity pressure)",
		},
		[]string{"cache"},
	)

	m.analysisCalls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_calls_total",
		Help:      "Total calls made to the ingredient analysis backend",
	})

	m.analysisErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_errors_total",
		Help:      "Total failed analysis backend calls (not cached)",
	})

	m.analysisLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "analysis_latency_milliseconds",
		Help:      "Histogram of analysis backend call latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.matchScores = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_score",
		Help:      "Distribution of bio-match scores (0-100)",
		Buckets:   prometheus.LinearBuckets(0, 10, 11),
	})

	m.dashboardBuilds = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "dashboard_builds_total",
			Help:      "Total dashboard selections by terminal display state",
		},
		[]string{"state"},
	)

	m.dashboardBuildDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dashboard_build_duration_milliseconds",
		Help:      "Histogram of aggregate+select duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.insightsPooled = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "insights_pooled",
		Help:      "Distribution of pool sizes entering selection",
		Buckets:   prometheus.LinearBuckets(0, 5, 10),
	})

	m.insightsDismissed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "insights_dismissed_total",
		Help:      "Total insights filtered out by dismissal",
	})
}

// IncCacheHit records a cache hit for the named cache.
func (m *Manager) IncCacheHit(cache string) {
	if !m.enabled {
		return
	}
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncCacheMiss records a cache miss for the named cache.
func (m *Manager) IncCacheMiss(cache string) {
	if !m.enabled {
		return
	}
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncCacheEviction records a capacity eviction for the named cache.
func (m *Manager) IncCacheEviction(cache string) {
	if !m.enabled {
		return
	}
	m.cacheEvictions.WithLabelValues(cache).Inc()
}

// IncAnalysisCall records an analysis backend call.
func (m *Manager) IncAnalysisCall() {
	if !m.enabled {
		return
	}
	m.analysisCalls.Inc()
}

// IncAnalysisError records a failed analysis backend call.
func (m *Manager) IncAnalysisError() {
	if !m.enabled {
		return
	}
	m.analysisErrors.Inc()
}

// ObserveAnalysisLatency records an analysis call duration in milliseconds.
func (m *Manager) ObserveAnalysisLatency(ms float64) {
	if !m.enabled {
		return
	}
	m.analysisLatency.Observe(ms)
}

// ObserveMatchScore records a bio-match score.
func (m *Manager) ObserveMatchScore(score int) {
	if !m.enabled {
		return
	}
	m.matchScores.Observe(float64(score))
}

// IncDashboardBuild records a selection outcome by display state.
func (m *Manager) IncDashboardBuild(state string) {
	if !m.enabled {
		return
	}
	m.dashboardBuilds.WithLabelValues(state).Inc()
}

// ObserveDashboardDuration records the aggregate+select duration in
// milliseconds.
func (m *Manager) ObserveDashboardDuration(ms float64) {
	if !m.enabled {
		return
	}
	m.dashboardBuildDuration.Observe(ms)
}

// ObservePoolSize records the pool size entering selection.
func (m *Manager) ObservePoolSize(n int) {
	if !m.enabled {
		return
	}
	m.insightsPooled.Observe(float64(n))
}

// AddDismissed records insights filtered out by dismissal.
func (m *Manager) AddDismissed(n int) {
	if !m.enabled || n <= 0 {
		return
	}
	m.insightsDismissed.Add(float64(n))
}

// Get returns the global metrics manager.
func Get() *Manager {
	return globalManager
}

// GetRegistry returns the custom registry backing the global manager,
// for exposing via an HTTP handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
