package join

import (
	"github.com/katalvlaran/lvldbsp/izset"
	"github.com/katalvlaran/lvldbsp/zset"
)

// Indexed is the index-maintained incremental join: A_prev and B_prev
// are kept as izset.IndexedZSet values keyed on the join column, so each
// of the three bilinear terms costs O(|Δ| · expected matches) instead of
// a full rescan of either side.
type Indexed[A, B any] struct {
	valueKeyA zset.KeyFunc[A]
	valueKeyB zset.KeyFunc[B]
	kA        func(A) string
	kB        func(B) string
	keyOut    zset.KeyFunc[zset.Pairing[A, B]]

	aPrev *izset.IndexedZSet[A]
	bPrev *izset.IndexedZSet[B]
}

// NewIndexed constructs an Indexed join on kA(left) == kB(right).
func NewIndexed[A, B any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	keyOut zset.KeyFunc[zset.Pairing[A, B]],
) (*Indexed[A, B], error) {
	if valueKeyA == nil || valueKeyB == nil || kA == nil || kB == nil || keyOut == nil {
		return nil, ErrNilKeyFunc
	}
	return &Indexed[A, B]{
		valueKeyA: valueKeyA,
		valueKeyB: valueKeyB,
		kA:        kA,
		kB:        kB,
		keyOut:    keyOut,
		aPrev:     izset.New[A](valueKeyA, kA),
		bPrev:     izset.New[B](valueKeyB, kB),
	}, nil
}

// joinAgainstIndex probes one side's join-key index with every element
// of the other (smaller, delta) side, emitting a matched pair for every
// hit instead of rescanning the indexed side.
func joinAgainstIndex[A, B any](
	a *zset.ZSet[A], bIndex *izset.IndexedZSet[B], kA func(A) string,
	keyOut zset.KeyFunc[zset.Pairing[A, B]],
) (*zset.ZSet[zset.Pairing[A, B]], error) {
	out := zset.New[zset.Pairing[A, B]](keyOut)
	var err error
	a.ForEach(func(va A, wa zset.Weight) {
		if err != nil {
			return
		}
		for _, pb := range bIndex.EntriesByJoinKey(kA(va)) {
			w, mErr := zset.MulWeight(wa, pb.Weight)
			if mErr != nil {
				err = mErr
				return
			}
			out.Insert(zset.Pairing[A, B]{Left: va, Right: pb.Value}, w)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func joinAgainstIndexRight[A, B any](
	aIndex *izset.IndexedZSet[A], b *zset.ZSet[B], kB func(B) string,
	keyOut zset.KeyFunc[zset.Pairing[A, B]],
) (*zset.ZSet[zset.Pairing[A, B]], error) {
	out := zset.New[zset.Pairing[A, B]](keyOut)
	var err error
	b.ForEach(func(vb B, wb zset.Weight) {
		if err != nil {
			return
		}
		for _, pa := range aIndex.EntriesByJoinKey(kB(vb)) {
			w, mErr := zset.MulWeight(pa.Weight, wb)
			if mErr != nil {
				err = mErr
				return
			}
			out.Insert(zset.Pairing[A, B]{Left: pa.Value, Right: vb}, w)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Step applies the bilinear delta formula using index probes for the
// two cross terms, then folds both deltas into the indexed state. Index
// updates happen only after both cross terms have been computed against
// the pre-step state.
func (ix *Indexed[A, B]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[zset.Pairing[A, B]], error) {
	deltaAB, err := zset.Join(deltaA, deltaB, ix.kA, ix.kB, ix.keyOut)
	if err != nil {
		return nil, wrapf("indexed: Δa⋈Δb", err)
	}
	aPrevB, err := joinAgainstIndexRight[A, B](ix.aPrev, deltaB, ix.kB, ix.keyOut)
	if err != nil {
		return nil, wrapf("indexed: A_prev⋈Δb", err)
	}
	aBPrev, err := joinAgainstIndex[A, B](deltaA, ix.bPrev, ix.kA, ix.keyOut)
	if err != nil {
		return nil, wrapf("indexed: Δa⋈B_prev", err)
	}

	out := zset.Add(zset.Add(deltaAB, aPrevB), aBPrev)

	deltaA.ForEach(func(va A, wa zset.Weight) { ix.aPrev.Insert(va, wa) })
	deltaB.ForEach(func(vb B, wb zset.Weight) { ix.bPrev.Insert(vb, wb) })

	return out, nil
}

// Reset clears both indexed accumulators.
func (ix *Indexed[A, B]) Reset() {
	ix.aPrev = izset.New[A](ix.valueKeyA, ix.kA)
	ix.bPrev = izset.New[B](ix.valueKeyB, ix.kB)
}
