package zset

// Filter returns {v ∈ z : pred(v)} with weights preserved exactly,
// including negative weights — negative-weight entries must never be
// dropped during filter or map. Linear: Filter(a+b) = Filter(a)+Filter(b).
func Filter[T any](z *ZSet[T], pred func(T) bool) *ZSet[T] {
	if pred == nil {
		panic(ErrNilTransform)
	}
	out := New[T](z.key)
	z.ForEach(func(v T, w Weight) {
		if pred(v) {
			out.Insert(v, w)
		}
	})
	return out
}

// Map applies fn to every value, preserving weights; values that collide
// under the output Z-set's key function have their weights combined. If
// newKey is nil, the output reuses z's own key function when U == T;
// a nil newKey with U != T panics with ErrNilKeyFunc.
func Map[T, U any](z *ZSet[T], fn func(T) U, newKey KeyFunc[U]) *ZSet[U] {
	if fn == nil {
		panic(ErrNilTransform)
	}
	if newKey == nil {
		sameKey, ok := any(z.key).(KeyFunc[U])
		if !ok {
			panic(ErrNilKeyFunc)
		}
		newKey = sameKey
	}
	out := New[U](newKey)
	z.ForEach(func(v T, w Weight) {
		out.Insert(fn(v), w)
	})
	return out
}

// FlatMap applies fn to every value, fanning each input entry out to zero
// or more output values, each carrying the input's weight; colliding
// output keys combine. Linear in the same sense as Map.
func FlatMap[T, U any](z *ZSet[T], fn func(T) []U, newKey KeyFunc[U]) *ZSet[U] {
	if fn == nil {
		panic(ErrNilTransform)
	}
	if newKey == nil {
		panic(ErrNilKeyFunc)
	}
	out := New[U](newKey)
	z.ForEach(func(v T, w Weight) {
		for _, u := range fn(v) {
			out.Insert(u, w)
		}
	})
	return out
}

// Count returns Σ weights — the scalar-weighted aggregation of the whole
// Z-set. Linear.
func Count[T any](z *ZSet[T]) Weight {
	var total Weight
	z.ForEach(func(_ T, w Weight) { total += w })
	return total
}

// Sum returns Σ f(v)·w over every entry. Linear in z for fixed f.
func Sum[T any](z *ZSet[T], f func(T) Weight) Weight {
	if f == nil {
		panic(ErrNilTransform)
	}
	var total Weight
	z.ForEach(func(v T, w Weight) { total += f(v) * w })
	return total
}

// Distinct collapses every positive-weight entry to weight 1 and drops
// every non-positive entry. Non-linear — the incremental replacement
// lives in package incr.
func Distinct[T any](z *ZSet[T]) *ZSet[T] {
	out := New[T](z.key)
	z.ForEach(func(v T, w Weight) {
		if w > 0 {
			out.Insert(v, 1)
		}
	})
	return out
}
