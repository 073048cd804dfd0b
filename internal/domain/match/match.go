// Package match computes a weighted similarity score between two user
// attribute profiles.
//
// Scoring is additive across four independent 25-point categories: skin
// type, scalp type, conditions overlap, and goals overlap. The overlap
// ratio is normalized by the size of the caller's own set, NOT by the
// union, so Calculate(a, b) and Calculate(b, a) can differ when set sizes
// differ. That asymmetry is observed production behavior and is kept
// intact pending product-owner review; do not swap in a Jaccard index.
package match

import (
	"math"

	"github.com/skinsight/engine/internal/domain/model"
)

// Points per category and label thresholds.
const (
	categoryPoints = 25

	highThreshold    = 80 // inclusive
	goodThreshold    = 50 // inclusive
	limitedThreshold = 20 // strict: a score of exactly 20 is still "no match"
)

// Labels for each match band.
const (
	LabelUnknown = "unknown"
	LabelHigh    = "high match"
	LabelGood    = "good match"
	LabelLimited = "limited match"
	LabelNone    = "no match"
)

// Category tags accumulated into MatchedAttributes, in declaration order.
const (
	tagSkin       = "skin"
	tagScalp      = "scalp"
	tagConditions = "conditions"
	tagGoals      = "goals"
)

// Calculate compares two attribute profiles and returns a score in [0,100]
// with its display label and the list of categories that contributed.
//
// A nil profile on either side short-circuits to a zero "unknown" result;
// no partial scoring is attempted.
func Calculate(mine, other *model.UserAttributeProfile) model.MatchResult {
	if mine == nil || other == nil {
		return model.MatchResult{
			Score:    0,
			Label:    LabelUnknown,
			Category: model.MatchNone,
		}
	}

	score := 0
	var matched []string

	if mine.SkinType != "" && other.SkinType != "" && mine.SkinType == other.SkinType {
		score += categoryPoints
		matched = append(matched, tagSkin)
	}

	if mine.ScalpType != "" && other.ScalpType != "" && mine.ScalpType == other.ScalpType {
		score += categoryPoints
		matched = append(matched, tagScalp)
	}

	if pts := overlapPoints(mine.Conditions, other.Conditions); pts > 0 {
		score += pts
		matched = append(matched, tagConditions)
	}

	if pts := overlapPoints(mine.Goals, other.Goals); pts > 0 {
		score += pts
		matched = append(matched, tagGoals)
	}

	label, category := bandFor(score)
	return model.MatchResult{
		Score:             score,
		Label:             label,
		Category:          category,
		MatchedAttributes: matched,
	}
}

// overlapPoints scores one set category. Two empty sets are a perfect match
// on that axis; exactly one empty set earns nothing. For two non-empty sets
// the intersection is normalized by the size of mine (asymmetric, see the
// package comment).
func overlapPoints(mine, other []string) int {
	if len(mine) == 0 && len(other) == 0 {
		return categoryPoints
	}
	if len(mine) == 0 || len(other) == 0 {
		return 0
	}

	theirs := make(map[string]struct{}, len(other))
	for _, v := range other {
		theirs[v] = struct{}{}
	}
	overlap := 0
	for _, v := range mine {
		if _, ok := theirs[v]; ok {
			overlap++
		}
	}

	denom := len(mine)
	if denom < 1 {
		denom = 1
	}
	ratio := float64(overlap) / float64(denom)
	return int(math.Round(ratio * categoryPoints))
}

// bandFor maps a final integer score onto its label and display category.
func bandFor(score int) (string, model.MatchCategory) {
	switch {
	case score >= highThreshold:
		return LabelHigh, model.MatchHigh
	case score >= goodThreshold:
		return LabelGood, model.MatchGood
	case score > limitedThreshold:
		return LabelLimited, model.MatchLimited
	default:
		return LabelNone, model.MatchNone
	}
}
