package stream

import "github.com/katalvlaran/lvldbsp/zset"

// Group is the capability bundle required for any type carried on a
// stream edge: a designated zero value and linear add/negate operations
// forming an abelian group. Two canonical instances are provided below:
// IntGroup and ZSetGroup.
type Group[T any] struct {
	Zero   T
	Add    func(a, b T) T
	Negate func(a T) T
}

// IntGroup is the group (ℤ, +, 0) over int64 weights, used for scalar
// aggregate streams (e.g. a running COUNT).
var IntGroup = Group[int64]{
	Zero:   0,
	Add:    func(a, b int64) int64 { return a + b },
	Negate: func(a int64) int64 { return -a },
}

// ZSetGroup builds the Z-set addition group for element type T, given
// T's identity key function. Every relation/delta stream in the engine
// is carried over a ZSetGroup instance.
func ZSetGroup[T any](keyFn zset.KeyFunc[T]) Group[*zset.ZSet[T]] {
	return Group[*zset.ZSet[T]]{
		Zero:   zset.New[T](keyFn),
		Add:    func(a, b *zset.ZSet[T]) *zset.ZSet[T] { return zset.Add(a, b) },
		Negate: func(a *zset.ZSet[T]) *zset.ZSet[T] { return zset.Negate(a) },
	}
}

// Subtract derives a - b from a Group's Add and Negate, used by
// Differentiate.
func (g Group[T]) Subtract(a, b T) T {
	return g.Add(a, g.Negate(b))
}
