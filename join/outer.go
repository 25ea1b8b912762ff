package join

import "github.com/katalvlaran/lvldbsp/zset"

// RowSide identifies which side of an OuterRow matched. Inner marks a
// row produced by the equi-join; LeftOnly/RightOnly mark the
// unmatched-complement rows an outer join adds.
type RowSide int

const (
	Inner RowSide = iota
	LeftOnly
	RightOnly
)

// OuterRow is the output element of LeftOuter and FullOuter: a matched
// pair, or one side of an unmatched complement with the other side at
// its zero value.
type OuterRow[A, B any] struct {
	Left  A
	Right B
	Side  RowSide
}

// LeftOuter incrementally maintains a ⋈ b ∪ (anti_join(a,b) × {null on
// right}). The matched portion is computed via the bilinear delta
// formula and is fully incremental; the unmatched-left complement is
// recomputed from the integrated state every step (anti-join is not
// linear in either argument) and the delta against the previous step's
// complement is emitted, so Step still returns a proper delta overall.
type LeftOuter[A, B any] struct {
	kA     func(A) string
	kB     func(B) string
	keyOut zset.KeyFunc[OuterRow[A, B]]

	aPrev *zset.ZSet[A]
	bPrev *zset.ZSet[B]

	matched       *Naive[A, B]
	prevUnmatched *zset.ZSet[OuterRow[A, B]]
}

// NewLeftOuter constructs a LeftOuter join on kA(left) == kB(right).
func NewLeftOuter[A, B any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	keyOut zset.KeyFunc[OuterRow[A, B]],
) (*LeftOuter[A, B], error) {
	if valueKeyA == nil || valueKeyB == nil || kA == nil || kB == nil || keyOut == nil {
		return nil, ErrNilKeyFunc
	}
	pairKey := func(p zset.Pairing[A, B]) string { return keyOut(OuterRow[A, B]{Left: p.Left, Right: p.Right, Side: Inner}) }
	matched, err := NewNaive(valueKeyA, valueKeyB, kA, kB, pairKey)
	if err != nil {
		return nil, err
	}
	return &LeftOuter[A, B]{
		kA:            kA,
		kB:            kB,
		keyOut:        keyOut,
		aPrev:         zset.New[A](valueKeyA),
		bPrev:         zset.New[B](valueKeyB),
		matched:       matched,
		prevUnmatched: zset.New[OuterRow[A, B]](keyOut),
	}, nil
}

// Step returns the delta of the left-outer join for this step's
// deltaA, deltaB.
func (lo *LeftOuter[A, B]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[OuterRow[A, B]], error) {
	matchedDelta, err := lo.matched.Step(deltaA, deltaB)
	if err != nil {
		return nil, wrapf("leftOuter: matched", err)
	}
	matchedRows := zset.Map(matchedDelta, func(p zset.Pairing[A, B]) OuterRow[A, B] {
		return OuterRow[A, B]{Left: p.Left, Right: p.Right, Side: Inner}
	}, lo.keyOut)

	lo.aPrev = zset.Add(lo.aPrev, deltaA)
	lo.bPrev = zset.Add(lo.bPrev, deltaB)

	unmatchedNow := zset.Map(AntiJoin(lo.aPrev, lo.bPrev, lo.kA, lo.kB), func(va A) OuterRow[A, B] {
		var zeroB B
		return OuterRow[A, B]{Left: va, Right: zeroB, Side: LeftOnly}
	}, lo.keyOut)

	unmatchedDelta := zset.Subtract(unmatchedNow, lo.prevUnmatched)
	lo.prevUnmatched = unmatchedNow

	return zset.Add(matchedRows, unmatchedDelta), nil
}

// Reset clears all integrated state.
func (lo *LeftOuter[A, B]) Reset() {
	lo.matched.Reset()
	lo.aPrev = lo.aPrev.Zero()
	lo.bPrev = lo.bPrev.Zero()
	lo.prevUnmatched = lo.prevUnmatched.Zero()
}

// FullOuter is LeftOuter plus the symmetric right-unmatched complement:
// every element appears once, with Side indicating which column (if
// any) is a placeholder, and matched rows are never double-counted
// against either complement.
type FullOuter[A, B any] struct {
	kA     func(A) string
	kB     func(B) string
	keyOut zset.KeyFunc[OuterRow[A, B]]

	aPrev *zset.ZSet[A]
	bPrev *zset.ZSet[B]

	matched            *Naive[A, B]
	prevLeftUnmatched  *zset.ZSet[OuterRow[A, B]]
	prevRightUnmatched *zset.ZSet[OuterRow[A, B]]
}

// NewFullOuter constructs a FullOuter join on kA(left) == kB(right).
func NewFullOuter[A, B any](
	valueKeyA zset.KeyFunc[A], valueKeyB zset.KeyFunc[B],
	kA func(A) string, kB func(B) string,
	keyOut zset.KeyFunc[OuterRow[A, B]],
) (*FullOuter[A, B], error) {
	if valueKeyA == nil || valueKeyB == nil || kA == nil || kB == nil || keyOut == nil {
		return nil, ErrNilKeyFunc
	}
	pairKey := func(p zset.Pairing[A, B]) string { return keyOut(OuterRow[A, B]{Left: p.Left, Right: p.Right, Side: Inner}) }
	matched, err := NewNaive(valueKeyA, valueKeyB, kA, kB, pairKey)
	if err != nil {
		return nil, err
	}
	return &FullOuter[A, B]{
		kA:                 kA,
		kB:                 kB,
		keyOut:             keyOut,
		aPrev:              zset.New[A](valueKeyA),
		bPrev:              zset.New[B](valueKeyB),
		matched:            matched,
		prevLeftUnmatched:  zset.New[OuterRow[A, B]](keyOut),
		prevRightUnmatched: zset.New[OuterRow[A, B]](keyOut),
	}, nil
}

// Step returns the delta of the full-outer join for this step's
// deltaA, deltaB.
func (fo *FullOuter[A, B]) Step(deltaA *zset.ZSet[A], deltaB *zset.ZSet[B]) (*zset.ZSet[OuterRow[A, B]], error) {
	matchedDelta, err := fo.matched.Step(deltaA, deltaB)
	if err != nil {
		return nil, wrapf("fullOuter: matched", err)
	}
	matchedRows := zset.Map(matchedDelta, func(p zset.Pairing[A, B]) OuterRow[A, B] {
		return OuterRow[A, B]{Left: p.Left, Right: p.Right, Side: Inner}
	}, fo.keyOut)

	fo.aPrev = zset.Add(fo.aPrev, deltaA)
	fo.bPrev = zset.Add(fo.bPrev, deltaB)

	leftUnmatchedNow := zset.Map(AntiJoin(fo.aPrev, fo.bPrev, fo.kA, fo.kB), func(va A) OuterRow[A, B] {
		var zeroB B
		return OuterRow[A, B]{Left: va, Right: zeroB, Side: LeftOnly}
	}, fo.keyOut)
	rightUnmatchedNow := zset.Map(AntiJoin(fo.bPrev, fo.aPrev, fo.kB, fo.kA), func(vb B) OuterRow[A, B] {
		var zeroA A
		return OuterRow[A, B]{Left: zeroA, Right: vb, Side: RightOnly}
	}, fo.keyOut)

	leftDelta := zset.Subtract(leftUnmatchedNow, fo.prevLeftUnmatched)
	rightDelta := zset.Subtract(rightUnmatchedNow, fo.prevRightUnmatched)
	fo.prevLeftUnmatched = leftUnmatchedNow
	fo.prevRightUnmatched = rightUnmatchedNow

	return zset.Add(zset.Add(matchedRows, leftDelta), rightDelta), nil
}

// Reset clears all integrated state.
func (fo *FullOuter[A, B]) Reset() {
	fo.matched.Reset()
	fo.aPrev = fo.aPrev.Zero()
	fo.bPrev = fo.bPrev.Zero()
	fo.prevLeftUnmatched = fo.prevLeftUnmatched.Zero()
	fo.prevRightUnmatched = fo.prevRightUnmatched.Zero()
}
