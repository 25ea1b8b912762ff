package join

import "github.com/katalvlaran/lvldbsp/zset"

// AppendOnly is the incremental join variant that assumes both sides
// only ever insert (no retractions): non-positive weight entries in
// either delta are skipped rather than rejected. Folding each delta into
// its accumulator before joining collapses the usual three-term
// bilinear formula into two terms, since (A_prev + Δa) ⋈ Δb already
// equals (A_prev ⋈ Δb) + (Δa ⋈ Δb).
type AppendOnly[A, B any] struct {
	kA     func(A) string
	kB     func(B) string
	keyOut zset.KeyFunc[zset.Pairing[A, B]]

	aPrev *zset.ZSet[A]
	bPrev *zset.ZSet[B]
}

// NewAppendOnly constructs an AppendOnly join on kA(left) == kB(right).
func NewAppendOnly[A, B any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	keyOut zset.KeyFunc[zset.Pairing[A, B]],
) (*AppendOnly[A, B], error) {
	if valueKeyA == nil || valueKeyB == nil || kA == nil || kB == nil || keyOut == nil {
		return nil, ErrNilKeyFunc
	}
	return &AppendOnly[A, B]{
		kA:     kA,
		kB:     kB,
		keyOut: keyOut,
		aPrev:  zset.New[A](valueKeyA),
		bPrev:  zset.New[B](valueKeyB),
	}, nil
}

func positiveOnly[T any](z *zset.ZSet[T]) *zset.ZSet[T] {
	out := z.Zero()
	z.ForEach(func(v T, w zset.Weight) {
		if w > 0 {
			out.Insert(v, w)
		}
	})
	return out
}

// Step folds deltaA into the left accumulator first, joins the updated
// left side against deltaB, then joins the raw deltaA against the
// pre-step right accumulator — two joins instead of three, at the cost
// of silently dropping any non-positive-weight entries in either delta.
func (ao *AppendOnly[A, B]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[zset.Pairing[A, B]], error) {
	deltaA = positiveOnly(deltaA)
	deltaB = positiveOnly(deltaB)

	ao.aPrev = zset.Add(ao.aPrev, deltaA)

	aNewB, err := zset.Join(ao.aPrev, deltaB, ao.kA, ao.kB, ao.keyOut)
	if err != nil {
		return nil, wrapf("appendOnly: A_new⋈Δb", err)
	}
	aBPrev, err := zset.Join(deltaA, ao.bPrev, ao.kA, ao.kB, ao.keyOut)
	if err != nil {
		return nil, wrapf("appendOnly: Δa⋈B_prev", err)
	}

	ao.bPrev = zset.Add(ao.bPrev, deltaB)

	return zset.Add(aNewB, aBPrev), nil
}

// Reset clears the integrated state on both sides.
func (ao *AppendOnly[A, B]) Reset() {
	ao.aPrev = ao.aPrev.Zero()
	ao.bPrev = ao.bPrev.Zero()
}
