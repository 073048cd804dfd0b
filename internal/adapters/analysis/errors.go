package analysis

import "errors"

// Sentinel kinds for backend call failures.
var (
	ErrBackend       = errors.New("analysis backend call failed")
	ErrBackendStatus = errors.New("analysis backend returned an error status")
)
