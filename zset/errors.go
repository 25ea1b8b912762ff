package zset

import (
	"errors"
	"fmt"
)

// Sentinel errors for the zset package. Callers branch with errors.Is;
// messages are never relied upon for equality.
var (
	// ErrNilKeyFunc indicates a ZSet was constructed without a key function.
	ErrNilKeyFunc = errors.New("zset: key function is nil")

	// ErrNilTransform indicates a nil predicate/mapper/aggregator was passed
	// to a transform that requires one.
	ErrNilTransform = errors.New("zset: transform function is nil")

	// ErrWeightOverflow indicates a bilinear weight multiplication would
	// overflow the Weight type's range.
	ErrWeightOverflow = errors.New("zset: weight multiplication overflow")
)

// wrapf prefixes err with an operation name, preserving it for errors.Is.
func wrapf(op string, err error) error {
	return fmt.Errorf("zset: %s: %w", op, err)
}
