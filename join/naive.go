package join

import "github.com/katalvlaran/lvldbsp/zset"

// Naive is the simplest incremental join: it stores the two integrated
// inputs as plain Z-sets and builds a fresh hash index for each of the
// three bilinear terms on every Step, costing O(|A| + |B|) regardless of
// how small the deltas are.
type Naive[A, B any] struct {
	kA     func(A) string
	kB     func(B) string
	keyOut zset.KeyFunc[zset.Pairing[A, B]]

	aPrev *zset.ZSet[A]
	bPrev *zset.ZSet[B]
}

// NewNaive constructs a Naive join on kA(left) == kB(right). valueKeyA
// and valueKeyB identify elements of A and B for the internal integrated
// accumulators.
func NewNaive[A, B any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	keyOut zset.KeyFunc[zset.Pairing[A, B]],
) (*Naive[A, B], error) {
	if valueKeyA == nil || valueKeyB == nil || kA == nil || kB == nil || keyOut == nil {
		return nil, ErrNilKeyFunc
	}
	return &Naive[A, B]{
		kA:     kA,
		kB:     kB,
		keyOut: keyOut,
		aPrev:  zset.New[A](valueKeyA),
		bPrev:  zset.New[B](valueKeyB),
	}, nil
}

// Step applies the bilinear delta formula and returns Δ(A ⋈ B) for this
// step's deltaA, deltaB, then folds both deltas into the integrated
// state.
func (n *Naive[A, B]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[zset.Pairing[A, B]], error) {
	deltaAB, err := zset.Join(deltaA, deltaB, n.kA, n.kB, n.keyOut)
	if err != nil {
		return nil, wrapf("naive: Δa⋈Δb", err)
	}
	aPrevB, err := zset.Join(n.aPrev, deltaB, n.kA, n.kB, n.keyOut)
	if err != nil {
		return nil, wrapf("naive: A_prev⋈Δb", err)
	}
	aBPrev, err := zset.Join(deltaA, n.bPrev, n.kA, n.kB, n.keyOut)
	if err != nil {
		return nil, wrapf("naive: Δa⋈B_prev", err)
	}

	out := zset.Add(zset.Add(deltaAB, aPrevB), aBPrev)

	n.aPrev = zset.Add(n.aPrev, deltaA)
	n.bPrev = zset.Add(n.bPrev, deltaB)

	return out, nil
}

// Reset clears the integrated state on both sides.
func (n *Naive[A, B]) Reset() {
	n.aPrev = n.aPrev.Zero()
	n.bPrev = n.bPrev.Zero()
}
