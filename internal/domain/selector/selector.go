// Package selector promotes exactly one insight to the hero slot and orders
// the remainder into the carousel.
//
// Ordering: score by severity weight descending with a stable sort, so
// equal-severity insights keep their aggregation order. Stability is part
// of the observable contract, not an implementation nicety.
package selector

import (
	"sort"

	"github.com/skinsight/engine/internal/domain/model"
)

// NightPrepID is the insight id pinned to the front of the carousel.
// The pin is positional and unconditional: a night-prep insight leads the
// carousel even ahead of critical items.
const NightPrepID = "night-prep-forecast"

// State is the terminal display state of a selection pass.
type State string

// Display states. Each invocation lands in exactly one.
const (
	StateWeatherHero State = "weather_hero"
	StateCoachHero   State = "coach_hero"
	StateAllClear    State = "all_clear"
)

// Selection is the ordered output consumed by the presentation layer.
type Selection struct {
	Hero     *model.Insight
	Carousel []model.Insight
	State    State
}

// Select picks the hero and builds the carousel from the pool.
//
// A non-nil weather hero (including synthetic loading/error placeholders)
// always wins the hero slot; the pool passed in already excludes it.
// Otherwise the first critical insight in pool order is promoted, falling
// back to the pool head. An empty pool with no weather hero is the
// all-clear state.
func Select(pool []model.Insight, weatherHero *model.Insight) Selection {
	working := make([]model.Insight, len(pool))
	copy(working, pool)

	var hero *model.Insight
	state := StateAllClear

	switch {
	case weatherHero != nil:
		hero = weatherHero
		state = StateWeatherHero
	case len(working) > 0:
		picked := working[0]
		for _, in := range working {
			if in.Severity == model.SeverityCritical {
				picked = in
				break
			}
		}
		hero = &picked
		working = removeByID(working, picked.ID)
		state = StateCoachHero
	}

	return Selection{
		Hero:     hero,
		Carousel: buildCarousel(working),
		State:    state,
	}
}

// buildCarousel orders the remaining pool: night-prep pinned first, then a
// stable severity-descending sort of everything else.
func buildCarousel(pool []model.Insight) []model.Insight {
	var nightPrep *model.Insight
	for i, in := range pool {
		if in.ID == NightPrepID {
			n := in
			nightPrep = &n
			pool = append(pool[:i:i], pool[i+1:]...)
			break
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Severity.Weight() > pool[j].Severity.Weight()
	})

	if nightPrep != nil {
		pool = append([]model.Insight{*nightPrep}, pool...)
	}
	return pool
}

// removeByID drops the first insight with the given id, preserving order.
func removeByID(pool []model.Insight, id string) []model.Insight {
	for i, in := range pool {
		if in.ID == id {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
