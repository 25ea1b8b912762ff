package zset

// NullKey is the reserved join-key sentinel representing SQL NULL. A
// key function passed to Join must never return NullKey for a value
// that should participate in joins: a value mapped to NullKey matches
// nothing, including other NullKey-mapped values — null join keys
// never match any other key, including other nulls. The leading NUL
// byte makes accidental collision with a user-supplied printable key
// effectively impossible. Package izset re-exports this constant so
// both packages agree on the sentinel.
const NullKey = "\x00__null__"

// Pairing is the output element of Cartesian and Join: a matched pair
// from the left and right Z-sets, generic over both element types.
type Pairing[A, B any] struct {
	Left  A
	Right B
}

// Cartesian computes a × b: every combination of a left and right
// element, weight wa·wb. Bilinear: linear in a for fixed b and vice
// versa. keyOut derives the identity of the output Pairing — typically a
// concatenation of the two input keys.
func Cartesian[A, B any](a *ZSet[A], b *ZSet[B], keyOut KeyFunc[Pairing[A, B]]) (*ZSet[Pairing[A, B]], error) {
	if keyOut == nil {
		return nil, ErrNilKeyFunc
	}
	out := New[Pairing[A, B]](keyOut)
	var err error
	a.ForEach(func(va A, wa Weight) {
		if err != nil {
			return
		}
		b.ForEach(func(vb B, wb Weight) {
			if err != nil {
				return
			}
			w, mErr := MulWeight(wa, wb)
			if mErr != nil {
				err = wrapf("cartesian", mErr)
				return
			}
			out.Insert(Pairing[A, B]{Left: va, Right: vb}, w)
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Join computes the equi-join of a and b on kA(left) == kB(right): it
// builds a hash index on the right side keyed by kB, probes with kA, and
// emits (va, vb) with weight wa·wb for every matching pair. Bilinear:
// Join(a1+a2, b) = Join(a1,b) + Join(a2,b), and symmetrically on the
// right.
//
// Null-key semantics: if kA or kB maps a value to NullKey, that value
// joins to nothing — including another value that also maps to
// NullKey. Callers that need SQL NULL semantics should route keys
// through izset so both packages agree on the sentinel.
func Join[A, B any](a *ZSet[A], b *ZSet[B], kA func(A) string, kB func(B) string, keyOut KeyFunc[Pairing[A, B]]) (*ZSet[Pairing[A, B]], error) {
	if kA == nil || kB == nil {
		return nil, ErrNilTransform
	}
	if keyOut == nil {
		return nil, ErrNilKeyFunc
	}

	// Index the right side by join key. NullKey values are never
	// indexed: a null join key must never match, including another null.
	type rightEntry struct {
		value  B
		weight Weight
	}
	index := make(map[string][]rightEntry)
	b.ForEach(func(vb B, wb Weight) {
		k := kB(vb)
		if k == NullKey {
			return
		}
		index[k] = append(index[k], rightEntry{value: vb, weight: wb})
	})

	out := New[Pairing[A, B]](keyOut)
	var err error
	a.ForEach(func(va A, wa Weight) {
		if err != nil {
			return
		}
		ka := kA(va)
		if ka == NullKey {
			return
		}
		matches, ok := index[ka]
		if !ok {
			return
		}
		for _, re := range matches {
			w, mErr := MulWeight(wa, re.weight)
			if mErr != nil {
				err = wrapf("join", mErr)
				return
			}
			out.Insert(Pairing[A, B]{Left: va, Right: re.value}, w)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
