package store

import "errors"

// Sentinel kinds for store lookups.
var (
	ErrProfileNotFound = errors.New("profile not found")
)
