package izset

import "github.com/katalvlaran/lvldbsp/zset"

// JoinKeyFunc derives the join-key identity of a value, independent of
// the value-identity KeyFunc the underlying ZSet uses. Two values may
// share a value-identity but differ in join key, or vice versa.
type JoinKeyFunc[T any] func(T) string

// IndexedZSet is a zset.ZSet[T] plus a secondary map from join key to
// the set of value-keys currently present with that join key, kept in
// sync on every mutation. It is not safe for concurrent mutation,
// matching the single-threaded-per-step contract of the circuit runtime
// that owns it.
type IndexedZSet[T any] struct {
	base     *zset.ZSet[T]
	joinKey  JoinKeyFunc[T]
	index    map[string]map[string]struct{} // joinKey -> {valueKey}
	values   map[string]T                   // valueKey -> value, for EntriesByJoinKey
	valueKey zset.KeyFunc[T]
}

// New constructs an empty IndexedZSet. valueKeyFn identifies elements
// (as zset.KeyFunc does); joinKeyFn derives the secondary index key.
// Panics if either is nil — a construction-time programmer error.
func New[T any](valueKeyFn zset.KeyFunc[T], joinKeyFn JoinKeyFunc[T]) *IndexedZSet[T] {
	if valueKeyFn == nil {
		panic(zset.ErrNilKeyFunc)
	}
	if joinKeyFn == nil {
		panic(ErrNilJoinKeyFunc)
	}
	return &IndexedZSet[T]{
		base:     zset.New[T](valueKeyFn),
		joinKey:  joinKeyFn,
		index:    make(map[string]map[string]struct{}),
		values:   make(map[string]T),
		valueKey: valueKeyFn,
	}
}

// Base exposes the underlying plain Z-set for read-only use (e.g.
// Weight/Len/ForEach); mutate only through IndexedZSet's own methods so
// the index stays in sync.
func (ix *IndexedZSet[T]) Base() *zset.ZSet[T] {
	return ix.base
}

// Insert adds w to v's weight, maintaining both the base Z-set and the
// join-key index atomically. When the resulting weight is zero the
// value-key is removed from its bucket, and an emptied bucket is
// dropped entirely.
func (ix *IndexedZSet[T]) Insert(v T, w Weight) {
	vk := ix.valueKey(v)
	newWeight := ix.base.Insert(v, w)
	jk := ix.joinKey(v)

	if newWeight == 0 {
		if bucket, ok := ix.index[jk]; ok {
			delete(bucket, vk)
			if len(bucket) == 0 {
				delete(ix.index, jk)
			}
		}
		delete(ix.values, vk)
		return
	}

	if _, ok := ix.index[jk]; !ok {
		ix.index[jk] = make(map[string]struct{})
	}
	ix.index[jk][vk] = struct{}{}
	ix.values[vk] = v
}

// Weight is a pass-through to the base Z-set's lookup.
func (ix *IndexedZSet[T]) Weight(v T) Weight {
	return ix.base.Weight(v)
}

// Len is a pass-through to the base Z-set's size.
func (ix *IndexedZSet[T]) Len() int {
	return ix.base.Len()
}

// ForEach is a pass-through iterator over the base Z-set.
func (ix *IndexedZSet[T]) ForEach(fn func(v T, w Weight)) {
	ix.base.ForEach(fn)
}

// HasJoinKey reports whether any value currently carries join key k with
// non-zero weight.
func (ix *IndexedZSet[T]) HasJoinKey(k string) bool {
	if k == NullKey {
		return false
	}
	bucket, ok := ix.index[k]
	return ok && len(bucket) > 0
}

// EntriesByJoinKey returns every (value, weight) pair whose join key
// equals k, in O(1 + matches). A NullKey lookup always yields nothing,
// enforcing the "NULL matches nothing" rule at the index boundary.
func (ix *IndexedZSet[T]) EntriesByJoinKey(k string) []zset.Pair[T] {
	if k == NullKey {
		return nil
	}
	bucket, ok := ix.index[k]
	if !ok {
		return nil
	}
	out := make([]zset.Pair[T], 0, len(bucket))
	for vk := range bucket {
		v := ix.values[vk]
		out = append(out, zset.Pair[T]{Value: v, Weight: ix.base.Weight(v)})
	}
	return out
}

// Weight is re-exported as zset.Weight for callers that only import
// izset.
type Weight = zset.Weight

// ToZSet materializes the IndexedZSet back into a plain ZSet sharing the
// same value-key function. This always equals the plain ZSet the index
// was derived from, for any sequence of Insert calls, because the base
// Z-set is maintained directly rather than reconstructed from the index.
func (ix *IndexedZSet[T]) ToZSet() *zset.ZSet[T] {
	out := zset.New[T](ix.valueKey)
	ix.ForEach(func(v T, w Weight) { out.Insert(v, w) })
	return out
}
