// Command skinsight-demo wires the engine end to end and runs one analysis
// cycle over fixture data. The engine itself is a library; this binary
// exists to smoke the wiring (config -> logger -> metrics -> engine), not
// to serve traffic.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skinsight/engine/internal/adapters/analysis"
	"github.com/skinsight/engine/internal/adapters/store"
	"github.com/skinsight/engine/internal/app"
	"github.com/skinsight/engine/internal/config"
	"github.com/skinsight/engine/internal/domain/model"
	"github.com/skinsight/engine/internal/domain/selector"
	"github.com/skinsight/engine/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Disable default Go metrics collection; the engine registers its own
	// metrics on a custom registry.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logs: " + err.Error() + "\n")
		}
	}()
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	engine := app.New(
		app.WithLogger(log),
		app.WithAnalyzer(analysis.NewClient(
			cfg.AnalysisBaseURL,
			analysis.WithTimeout(time.Duration(cfg.AnalysisTimeoutMS)*time.Millisecond),
		)),
		app.WithReportCacheCapacity(cfg.ProfileCacheCapacity),
		app.WithReportCacheTTL(time.Duration(cfg.ProfileCacheTTLHours)*time.Hour),
		app.WithFeedCacheTTL(time.Duration(cfg.FeedCacheTTLHours)*time.Hour),
	)

	docs := fixtureStore()
	sel := engine.Dashboard(ctx, fixtureCycle())
	printSelection(ctx, log, sel)

	mine, err := docs.Profile(ctx, "me")
	if err != nil {
		log.Error(ctx, "fixture profile missing", logger.Error(err))
		return
	}
	peer, err := docs.Profile(ctx, "peer")
	if err != nil {
		log.Error(ctx, "fixture profile missing", logger.Error(err))
		return
	}

	result := engine.Match(ctx, &mine.Attributes, &peer.Attributes)
	log.Info(ctx, "bio-match",
		logger.Int("score", result.Score),
		logger.String("label", result.Label),
		logger.Any("matched", result.MatchedAttributes),
	)
}

// printSelection dumps the hero and carousel as JSON for inspection.
func printSelection(ctx context.Context, log logger.Logger, sel selector.Selection) {
	out, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		log.Error(ctx, "failed to render selection", logger.Error(err))
		return
	}
	os.Stdout.Write(out)
	os.Stdout.WriteString("\n")
	log.Info(ctx, "dashboard built",
		logger.String("state", string(sel.State)),
		logger.Int("carousel", len(sel.Carousel)),
	)
}

// fixtureCycle builds one cycle of demo signals.
func fixtureCycle() app.DashboardInput {
	return app.DashboardInput{
		Coach: []model.Insight{
			{ID: "hydration-dip", Title: "Hydration trending down", ShortSummary: "Your moisture scores dipped three days in a row.", Severity: model.SeverityWarning, Source: model.SourceCoach},
			{ID: selector.NightPrepID, Title: "Tonight's prep", ShortSummary: "Low humidity overnight; seal with an occlusive.", Severity: model.SeverityInfo, Source: model.SourceCoach, CustomData: map[string]any{"type": "night_prep"}},
			{ID: "spf-streak", Title: "SPF streak", ShortSummary: "Seven days of sunscreen. Keep going.", Severity: model.SeverityGood, Source: model.SourceCoach},
		},
		Weather: []model.Insight{
			{ID: "uv-spike", Title: "UV index 9 today", ShortSummary: "Reapply SPF every two hours outdoors.", Severity: model.SeverityCritical, Source: model.SourceWeather, CustomData: map[string]any{"type": "weather_dashboard"}},
			{ID: "dry-air", Title: "Dry air moving in", ShortSummary: "Indoor humidity will drop tonight.", Severity: model.SeverityInfo, Source: model.SourceWeather, CustomData: map[string]any{"type": "weather_advice"}},
		},
		WeatherState: model.WeatherOK,
	}
}

// fixtureStore seeds the in-memory document store with two profiles.
func fixtureStore() *store.MemStore {
	docs := store.NewMemStore()
	docs.PutProfile(store.Profile{
		UserID: "me",
		Attributes: model.UserAttributeProfile{
			SkinType:   "oily",
			ScalpType:  "dry",
			Conditions: []string{"acne"},
		},
		UpdatedAt: time.Now().UnixMilli(),
	})
	docs.PutProfile(store.Profile{
		UserID: "peer",
		Attributes: model.UserAttributeProfile{
			SkinType:   "oily",
			ScalpType:  "normal",
			Conditions: []string{"acne", "eczema"},
		},
		UpdatedAt: time.Now().UnixMilli(),
	})
	return docs
}
