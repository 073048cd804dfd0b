package app

import (
	"time"

	"github.com/skinsight/engine/pkg/logger"
	"github.com/skinsight/engine/pkg/metrics"
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithAnalyzer sets the analysis backend client.
func WithAnalyzer(a Analyzer) Option {
	return func(e *Engine) {
		if a != nil {
			e.analyzer = a
		}
	}
}

// WithReportCacheCapacity bounds the barrier-report cache entry count.
func WithReportCacheCapacity(capacity int) Option {
	return func(e *Engine) {
		if capacity > 0 {
			e.reportCapacity = capacity
		}
	}
}

// WithReportCacheTTL sets the barrier-report cache entry lifetime.
func WithReportCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl >= 0 {
			e.reportTTL = ttl
		}
	}
}

// WithFeedCacheTTL sets the latest-feed cache lifetime.
// Zero keeps the default timestamp-only behavior (no expiry).
func WithFeedCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl >= 0 {
			e.feedTTL = ttl
		}
	}
}

// WithClock overrides the engine's time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.clock = now
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMetrics sets a custom metrics manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}
