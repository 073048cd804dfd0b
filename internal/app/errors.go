package app

import "errors"

// Sentinel kinds for engine errors.
var (
	ErrNoAnalyzer = errors.New("no analysis client configured")
)
