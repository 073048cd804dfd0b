package model

// UserAttributeProfile is the subset of a user profile relevant to
// bio-matching. Empty strings mean the attribute is unset.
type UserAttributeProfile struct {
	SkinType   string
	ScalpType  string
	Conditions []string // treated as a set
	Goals      []string // treated as a set
}

// MatchCategory buckets a match score for display.
type MatchCategory string

// Match display categories.
const (
	MatchHigh    MatchCategory = "high"
	MatchGood    MatchCategory = "good"
	MatchLimited MatchCategory = "limited"
	MatchNone    MatchCategory = "none"
)

// MatchResult is the derived outcome of comparing two attribute profiles.
// It is never persisted.
type MatchResult struct {
	Score             int // 0..100
	Label             string
	Category          MatchCategory
	MatchedAttributes []string // category tags in declaration order
}
