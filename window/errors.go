package window

import "errors"

// ErrEmptyAccumulator indicates Remove was called on a RunningSum that
// holds no rows.
var ErrEmptyAccumulator = errors.New("window: remove from empty accumulator")

// ErrNonPositiveBucketCount indicates NTile was called with n <= 0.
var ErrNonPositiveBucketCount = errors.New("window: ntile bucket count must be positive")
