package join

import (
	"errors"
	"fmt"
)

// ErrNilKeyFunc indicates a join variant was constructed with a nil
// join-key or value-key function.
var ErrNilKeyFunc = errors.New("join: key function is nil")

// ErrNilPredicate indicates a fused join-filter variant was constructed
// with a nil predicate.
var ErrNilPredicate = errors.New("join: predicate is nil")

// ErrNilProjection indicates a fused join-filter-map variant was
// constructed with a nil projection function.
var ErrNilProjection = errors.New("join: projection is nil")

func wrapf(op string, err error) error {
	return fmt.Errorf("join: %s: %w", op, err)
}
