// Package aggregate merges the heterogeneous insight sources into a single
// ordered pool and resolves the weather hero candidate.
//
// No sorting happens here; ranking is the selector's job. The aggregator
// only filters dismissals, unwraps the weather result convention (first
// element is the dashboard candidate), and synthesizes placeholder heroes
// for the weather loading and error states.
package aggregate

import (
	"github.com/google/uuid"

	"github.com/skinsight/engine/internal/domain/model"
)

// Result carries the combined pool and the resolved weather hero.
// WeatherHero is nil when no weather insight or placeholder applies.
type Result struct {
	Pool        []model.Insight
	WeatherHero *model.Insight
}

// Build merges coach and weather insights.
//
// Coach insights whose id is in dismissed are dropped. In the ok state the
// first weather result becomes the hero and any remaining weather results
// are prepended to the pool as ordinary rankable members. The loading and
// error states produce synthetic heroes that never enter the pool.
func Build(coach []model.Insight, weather []model.Insight, state model.WeatherState, dismissed map[string]struct{}) Result {
	pool := make([]model.Insight, 0, len(coach)+len(weather))

	var hero *model.Insight
	switch state {
	case model.WeatherLoading:
		hero = syntheticHero(model.SeverityCritical, "Checking today's weather",
			"Fetching local conditions for your skin forecast.", "weather_loading")
	case model.WeatherPermissionError:
		hero = syntheticHero(model.SeverityWarning, "Location access needed",
			"Allow location access to get weather-based skin advice.", "weather_permission")
	case model.WeatherServiceError:
		hero = syntheticHero(model.SeverityWarning, "Weather service unavailable",
			"Skin forecasts will return once the weather service recovers.", "weather_outage")
	case model.WeatherOK:
		if len(weather) > 0 {
			w := weather[0]
			hero = &w
			pool = append(pool, weather[1:]...)
		}
	}

	for _, in := range coach {
		if _, ok := dismissed[in.ID]; ok {
			continue
		}
		pool = append(pool, in)
	}

	return Result{Pool: pool, WeatherHero: hero}
}

// syntheticHero builds a placeholder hero for a weather state that has no
// real weather insight behind it. Synthetic heroes are non-interactive and
// are never pooled, so their ids only need to be unique per cycle.
func syntheticHero(severity model.Severity, title, summary, kind string) *model.Insight {
	return &model.Insight{
		ID:           "synthetic-" + uuid.NewString(),
		Title:        title,
		ShortSummary: summary,
		Severity:     severity,
		Source:       model.SourceSynthetic,
		CustomData: map[string]any{
			"type":        kind,
			"interactive": false,
		},
	}
}
