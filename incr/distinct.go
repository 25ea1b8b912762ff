package incr

import "github.com/katalvlaran/lvldbsp/zset"

// Distinct is the stateful incremental form of zset.Distinct. It
// maintains I, the integrated input, as a Z-set; each Step call takes a
// delta and emits only the elements whose weight crosses the
// positive/non-positive threshold:
//
//	old := I(v); new := old + Δ(v)
//	old ≤ 0 && new > 0  => emit (v, +1)
//	old > 0 && new ≤ 0  => emit (v, -1)
//	otherwise           => emit nothing
//
// then I += Δ.
type Distinct[T any] struct {
	integrated *zset.ZSet[T]
}

// NewDistinct constructs a Distinct operator whose internal integrated
// state is keyed by keyFn.
func NewDistinct[T any](keyFn zset.KeyFunc[T]) *Distinct[T] {
	return &Distinct[T]{integrated: zset.New[T](keyFn)}
}

// Step applies delta to the integrated input and returns the output
// delta: the set of threshold crossings this step caused.
func (d *Distinct[T]) Step(delta *zset.ZSet[T]) *zset.ZSet[T] {
	out := delta.Zero()
	delta.ForEach(func(v T, dv zset.Weight) {
		if dv == 0 {
			return
		}
		old := d.integrated.Weight(v)
		newWeight := old + dv
		switch {
		case old <= 0 && newWeight > 0:
			out.Insert(v, 1)
		case old > 0 && newWeight <= 0:
			out.Insert(v, -1)
		}
	})
	delta.ForEach(func(v T, dv zset.Weight) {
		d.integrated.Insert(v, dv)
	})
	return out
}

// Integrated exposes the current integrated input, e.g. for diagnostics
// or to assert the distinct threshold law in tests: Distinct(integrated)
// must equal the element-wise integration of every output delta emitted
// so far.
func (d *Distinct[T]) Integrated() *zset.ZSet[T] {
	return d.integrated
}

// Reset clears the integrated state.
func (d *Distinct[T]) Reset() {
	d.integrated = d.integrated.Zero()
}
