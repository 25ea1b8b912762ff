package join

import (
	"fmt"

	"github.com/katalvlaran/lvldbsp/zset"
)

// FusedFilter is an Indexed join followed by a predicate on each
// matched (left, right) pair. Every key-matched Pairing is first
// materialized in the Indexed join's output Z-set; the predicate is
// then applied to that Z-set, and rows it rejects are absent from the
// Z-set Step returns.
type FusedFilter[A, B any] struct {
	inner *Indexed[A, B]
	pred  func(A, B) bool
}

// NewFusedFilter constructs a FusedFilter join; pred is evaluated on
// every (left, right) candidate the join key matches.
func NewFusedFilter[A, B any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	keyOut zset.KeyFunc[zset.Pairing[A, B]],
	pred func(A, B) bool,
) (*FusedFilter[A, B], error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	inner, err := NewIndexed(valueKeyA, valueKeyB, kA, kB, keyOut)
	if err != nil {
		return nil, err
	}
	return &FusedFilter[A, B]{inner: inner, pred: pred}, nil
}

// Step computes the bilinear delta as Indexed does, then drops every
// matched row whose predicate is false before returning.
func (f *FusedFilter[A, B]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[zset.Pairing[A, B]], error) {
	raw, err := f.inner.Step(deltaA, deltaB)
	if err != nil {
		return nil, err
	}
	return zset.Filter(raw, func(p zset.Pairing[A, B]) bool { return f.pred(p.Left, p.Right) }), nil
}

// Reset clears the underlying Indexed join's state.
func (f *FusedFilter[A, B]) Reset() { f.inner.Reset() }

// FusedFilterMap is a FusedFilter that additionally projects every
// surviving (left, right) pair into an R via proj, so the intermediate
// Pairing is never the caller-visible output type.
type FusedFilterMap[A, B, R any] struct {
	inner *Indexed[A, B]
	pred  func(A, B) bool
	proj  func(A, B) R
	keyR  zset.KeyFunc[R]
}

// NewFusedFilterMap constructs a FusedFilterMap join. keyR may be nil,
// in which case projected values are keyed by their default string
// representation — adequate for value types with a meaningful String or
// primitive representation, but callers with non-comparable or
// collision-prone R should supply keyR explicitly.
func NewFusedFilterMap[A, B, R any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	pred func(A, B) bool, proj func(A, B) R, keyR zset.KeyFunc[R],
) (*FusedFilterMap[A, B, R], error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	if proj == nil {
		return nil, ErrNilProjection
	}
	pairKey := func(p zset.Pairing[A, B]) string { return valueKeyA(p.Left) + "\x1f" + valueKeyB(p.Right) }
	inner, err := NewIndexed(valueKeyA, valueKeyB, kA, kB, pairKey)
	if err != nil {
		return nil, err
	}
	if keyR == nil {
		keyR = func(r R) string { return fmt.Sprint(r) }
	}
	return &FusedFilterMap[A, B, R]{inner: inner, pred: pred, proj: proj, keyR: keyR}, nil
}

// Step computes the bilinear delta, drops rows the predicate rejects,
// and projects every surviving row through proj.
func (f *FusedFilterMap[A, B, R]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[R], error) {
	raw, err := f.inner.Step(deltaA, deltaB)
	if err != nil {
		return nil, err
	}
	out := zset.New[R](f.keyR)
	raw.ForEach(func(p zset.Pairing[A, B], w zset.Weight) {
		if f.pred(p.Left, p.Right) {
			out.Insert(f.proj(p.Left, p.Right), w)
		}
	})
	return out, nil
}

// Reset clears the underlying Indexed join's state.
func (f *FusedFilterMap[A, B, R]) Reset() { f.inner.Reset() }
