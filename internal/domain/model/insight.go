// Package model contains domain models passed between layers.
package model

// Severity classifies the urgency of an insight.
type Severity string

// Severity values, ordered from most to least urgent.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
	SeverityGood     Severity = "good"
)

// Weight returns the ordinal sort weight for a severity.
// Unknown severities sort with "good" (lowest).
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	case SeverityGood:
		return 0
	default:
		return 0
	}
}

// Source identifies which producer created an insight.
type Source string

// Source values.
const (
	SourceWeather   Source = "weather"
	SourceCoach     Source = "coach"
	SourceBarrier   Source = "barrier"
	SourceSynthetic Source = "synthetic"
)

// WeatherState describes the outcome of the most recent weather fetch.
type WeatherState int

// Weather fetch states.
const (
	WeatherOK WeatherState = iota
	WeatherLoading
	WeatherPermissionError
	WeatherServiceError
)

// Insight is a single unit of advice or alert produced once per analysis
// cycle. Insights are consumed read-only; they are filtered out via
// dismissed-id sets, never mutated.
type Insight struct {
	ID           string         // stable id used for dismissal and pinning lookups
	Title        string
	ShortSummary string
	Severity     Severity
	Source       Source
	CustomData   map[string]any // opaque rendering hints, e.g. {"type": "weather_advice"}
}
