package freshness

import "errors"

// ErrInvalidCapacity indicates New was called with a non-positive
// capacity.
var ErrInvalidCapacity = errors.New("freshness: capacity must be positive")
