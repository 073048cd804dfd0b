// Package config defines engine configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains engine configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// AnalysisBaseURL is the ingredient-analysis backend endpoint.
	AnalysisBaseURL string `koanf:"analysis_base_url"`

	// AnalysisTimeoutMS bounds a single backend call.
	AnalysisTimeoutMS int `koanf:"analysis_timeout_ms"`

	// ProfileCacheCapacity bounds the barrier-report cache entry count.
	ProfileCacheCapacity int `koanf:"profile_cache_capacity"`

	// ProfileCacheTTLHours is the barrier-report cache entry lifetime.
	ProfileCacheTTLHours int `koanf:"profile_cache_ttl_hours"`

	// FeedCacheTTLHours is the latest-feed cache lifetime; 0 disables
	// age-based expiry (timestamp-only cache).
	FeedCacheTTLHours int `koanf:"feed_cache_ttl_hours"`

	// MetricsEnabled toggles Prometheus instrumentation.
	MetricsEnabled bool `koanf:"metrics_enabled"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		AnalysisBaseURL:      "http://localhost:8900",
		AnalysisTimeoutMS:    15_000,
		ProfileCacheCapacity: 20,
		ProfileCacheTTLHours: 24,
		FeedCacheTTLHours:    0,
		MetricsEnabled:       true,
	}
}
