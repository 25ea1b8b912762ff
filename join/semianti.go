package join

import (
	"github.com/katalvlaran/lvldbsp/izset"
	"github.com/katalvlaran/lvldbsp/zset"
)

// keySetOf collects the join keys present in z with strictly positive
// weight, the "appears in b" test both Anti and Semi join need. Keys
// equal to izset.NullKey are never recorded: a null join key matches
// nothing, including another null.
func keySetOf[B any](z *zset.ZSet[B], kB func(B) string) map[string]struct{} {
	set := make(map[string]struct{})
	z.ForEach(func(vb B, w zset.Weight) {
		if w > 0 {
			if k := kB(vb); k != izset.NullKey {
				set[k] = struct{}{}
			}
		}
	})
	return set
}

// AntiJoin returns the elements of a whose join key does not appear in
// b with positive weight. Stateless and linear in |a| given a key-set of
// b; not expressed via the bilinear delta formula because the anti-join
// predicate is not linear in either argument. An element whose join key
// is izset.NullKey always counts as unmatched.
func AntiJoin[A, B any](a *zset.ZSet[A], b *zset.ZSet[B], kA func(A) string, kB func(B) string) *zset.ZSet[A] {
	present := keySetOf(b, kB)
	return zset.Filter(a, func(va A) bool {
		k := kA(va)
		if k == izset.NullKey {
			return true
		}
		_, ok := present[k]
		return !ok
	})
}

// SemiJoin returns the elements of a whose join key does appear in b
// with positive weight. An element whose join key is izset.NullKey
// never matches.
func SemiJoin[A, B any](a *zset.ZSet[A], b *zset.ZSet[B], kA func(A) string, kB func(B) string) *zset.ZSet[A] {
	present := keySetOf(b, kB)
	return zset.Filter(a, func(va A) bool {
		k := kA(va)
		if k == izset.NullKey {
			return false
		}
		_, ok := present[k]
		return ok
	})
}
