// Package app provides the engine facade consumed by the presentation
// layer. It wires fingerprint-gated caching around the analysis backend,
// insight aggregation and selection, and bio-match scoring.
//
// All engine collaborators are injected explicitly; there is no global
// service registry. The engine itself holds no per-invocation state:
// dashboards and match results are pure functions of their inputs, and
// the only stateful members are the bounded caches.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/skinsight/engine/internal/adapters/analysis"
	"github.com/skinsight/engine/internal/adapters/cache"
	"github.com/skinsight/engine/internal/domain/aggregate"
	"github.com/skinsight/engine/internal/domain/fingerprint"
	"github.com/skinsight/engine/internal/domain/match"
	"github.com/skinsight/engine/internal/domain/model"
	"github.com/skinsight/engine/internal/domain/selector"
	"github.com/skinsight/engine/pkg/logger"
	"github.com/skinsight/engine/pkg/metrics"
)

// Cache names used as metric labels.
const (
	reportCacheName = "barrier_report"
	feedCacheName   = "latest_feed"
)

// feedKey is the single key of the latest-feed cache.
const feedKey = "latest"

// Analyzer abstracts the ingredient-analysis backend client.
type Analyzer interface {
	Analyze(ctx context.Context, req analysis.Request) (*model.BarrierReport, error)
}

// DashboardInput is one analysis cycle's worth of raw signals.
type DashboardInput struct {
	Coach        []model.Insight
	Weather      []model.Insight
	WeatherState model.WeatherState
	DismissedIDs map[string]struct{}
}

// Default cache bounds, matching the production profile cache.
const (
	defaultReportCapacity = 20
	defaultReportTTL      = 24 * time.Hour
)

// Engine is the personalization and insight-prioritization facade.
type Engine struct {
	analyzer Analyzer
	reports  *cache.Cache[model.BarrierReport]
	feed     *cache.Cache[selector.Selection]
	logger   logger.Logger
	metrics  *metrics.Manager

	// Cache bounds, set by options before the caches are built.
	reportCapacity int
	reportTTL      time.Duration
	feedTTL        time.Duration
	clock          func() time.Time
}

// New creates an engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		metrics:        metrics.Get(),
		reportCapacity: defaultReportCapacity,
		reportTTL:      defaultReportTTL,
		feedTTL:        0, // latest feed never ages out
		clock:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.reports = cache.New[model.BarrierReport](
		cache.WithCapacity[model.BarrierReport](e.reportCapacity),
		cache.WithTTL[model.BarrierReport](e.reportTTL),
		cache.WithClock[model.BarrierReport](e.clock),
		cache.WithOnEvict[model.BarrierReport](func(string) {
			e.metrics.IncCacheEviction(reportCacheName)
		}),
	)
	e.feed = cache.New[selector.Selection](
		cache.WithCapacity[selector.Selection](1),
		cache.WithTTL[selector.Selection](e.feedTTL),
		cache.WithClock[selector.Selection](e.clock),
	)
	return e
}

// BarrierReport returns the scored report for a product set and settings,
// calling the analysis backend only when no live cached report exists for
// the same logical inputs.
//
// Failed fetches leave the cache unmodified so the next attempt retries
// fresh; failures are never cached.
func (e *Engine) BarrierReport(ctx context.Context, productIDs []string, settings map[string]any, req analysis.Request) (*model.BarrierReport, error) {
	key := fingerprint.Compute(productIDs, settings)

	if report, ok := e.reports.Get(key); ok {
		e.metrics.IncCacheHit(reportCacheName)
		e.debug(ctx, "barrier report served from cache", logger.Int("products", len(productIDs)))
		return &report, nil
	}
	e.metrics.IncCacheMiss(reportCacheName)

	if e.analyzer == nil {
		return nil, ErrNoAnalyzer
	}

	e.metrics.IncAnalysisCall()
	start := time.Now()
	report, err := e.analyzer.Analyze(ctx, req)
	e.metrics.ObserveAnalysisLatency(float64(time.Since(start)) / float64(time.Millisecond))
	if err != nil {
		e.metrics.IncAnalysisError()
		e.warn(ctx, "analysis backend call failed", logger.Error(err))
		return nil, fmt.Errorf("fetch barrier report: %w", err)
	}

	e.reports.Set(key, *report)
	return report, nil
}

// Dashboard merges one cycle's signals into a hero plus carousel and
// remembers it as the latest feed.
func (e *Engine) Dashboard(ctx context.Context, in DashboardInput) selector.Selection {
	start := time.Now()

	dismissed := 0
	for _, insight := range in.Coach {
		if _, ok := in.DismissedIDs[insight.ID]; ok {
			dismissed++
		}
	}
	e.metrics.AddDismissed(dismissed)

	merged := aggregate.Build(in.Coach, in.Weather, in.WeatherState, in.DismissedIDs)
	e.metrics.ObservePoolSize(len(merged.Pool))

	sel := selector.Select(merged.Pool, merged.WeatherHero)

	e.metrics.IncDashboardBuild(string(sel.State))
	e.metrics.ObserveDashboardDuration(float64(time.Since(start)) / float64(time.Millisecond))
	e.debug(ctx, "dashboard built",
		logger.String("state", string(sel.State)),
		logger.Int("pool", len(merged.Pool)),
		logger.Int("carousel", len(sel.Carousel)),
		logger.Int("dismissed", dismissed),
	)

	e.feed.Set(feedKey, sel)
	return sel
}

// LatestDashboard returns the most recently built selection, if any.
// The backing cache is timestamp-only; entries never age out.
func (e *Engine) LatestDashboard() (selector.Selection, bool) {
	sel, ok := e.feed.Get(feedKey)
	if ok {
		e.metrics.IncCacheHit(feedCacheName)
	} else {
		e.metrics.IncCacheMiss(feedCacheName)
	}
	return sel, ok
}

// Match scores the similarity between two attribute profiles.
func (e *Engine) Match(ctx context.Context, mine, other *model.UserAttributeProfile) model.MatchResult {
	result := match.Calculate(mine, other)
	e.metrics.ObserveMatchScore(result.Score)
	e.debug(ctx, "bio-match computed",
		logger.Int("score", result.Score),
		logger.String("label", result.Label),
	)
	return result
}

// debug logs at debug level when a logger is configured.
func (e *Engine) debug(ctx context.Context, msg string, fields ...logger.Field) {
	if e.logger != nil {
		e.logger.Debug(ctx, msg, fields...)
	}
}

// warn logs at warn level when a logger is configured.
func (e *Engine) warn(ctx context.Context, msg string, fields ...logger.Field) {
	if e.logger != nil {
		e.logger.Warn(ctx, msg, fields...)
	}
}
