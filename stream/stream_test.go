package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldbsp/stream"
)

func TestDelayIntegrateDifferentiateRoundTrip(t *testing.T) {
	s := stream.FromValues(stream.IntGroup, []int64{1, 2, 3, 4, 5})

	diff := stream.Differentiate(s)
	require.Equal(t, []int64{1, 1, 1, 1, 1}, diff.Values())

	back := stream.Integrate(diff)
	require.Equal(t, s.Values(), back.Values())

	integ := stream.Integrate(stream.FromValues(stream.IntGroup, []int64{1, 1, 1, 1, 1}))
	require.Equal(t, []int64{1, 2, 3, 4, 5}, integ.Values())

	back2 := stream.Differentiate(integ)
	require.Equal(t, []int64{1, 1, 1, 1, 1}, back2.Values())
}

func TestDIAreInversesProperty(t *testing.T) {
	cases := [][]int64{
		{},
		{5},
		{1, -1, 1, -1},
		{10, 0, 0, -10, 3},
	}
	for _, vs := range cases {
		s := stream.FromValues(stream.IntGroup, vs)
		assert.Equal(t, s.Values(), stream.Integrate(stream.Differentiate(s)).Values())
		assert.Equal(t, s.Values(), stream.Differentiate(stream.Integrate(s)).Values())
	}
}

func TestDelaySemantics(t *testing.T) {
	s := stream.FromValues(stream.IntGroup, []int64{7, 8, 9})
	d := stream.Delay(s)
	assert.Equal(t, []int64{0, 7, 8}, d.Values())
}

func TestAtBeyondPrefixReturnsZero(t *testing.T) {
	s := stream.FromValues(stream.IntGroup, []int64{1, 2})
	assert.EqualValues(t, 0, s.At(5))
	assert.EqualValues(t, 0, s.At(-1))
}

func TestStatefulStepVariantsMatchBatch(t *testing.T) {
	vs := []int64{3, -1, 4, 1, 5}

	intStep := stream.NewIntegrateStep(stream.IntGroup)
	var gotIntegrate []int64
	for _, v := range vs {
		gotIntegrate = append(gotIntegrate, intStep.Step(v))
	}
	want := stream.Integrate(stream.FromValues(stream.IntGroup, vs))
	assert.Equal(t, want.Values(), gotIntegrate)

	diffStep := stream.NewDifferentiateStep(stream.IntGroup)
	var gotDiff []int64
	for _, v := range vs {
		gotDiff = append(gotDiff, diffStep.Step(v))
	}
	wantDiff := stream.Differentiate(stream.FromValues(stream.IntGroup, vs))
	assert.Equal(t, wantDiff.Values(), gotDiff)

	delayStep := stream.NewDelayStep(stream.IntGroup)
	var gotDelay []int64
	for _, v := range vs {
		gotDelay = append(gotDelay, delayStep.Step(v))
	}
	wantDelay := stream.Delay(stream.FromValues(stream.IntGroup, vs))
	assert.Equal(t, wantDelay.Values(), gotDelay)
}

func TestStepReset(t *testing.T) {
	s := stream.NewIntegrateStep(stream.IntGroup)
	s.Step(5)
	s.Step(5)
	assert.EqualValues(t, 10, s.Value())
	s.Reset()
	assert.EqualValues(t, 0, s.Value())
	assert.EqualValues(t, 3, s.Step(3))
}

func TestLiftPointwise(t *testing.T) {
	s := stream.FromValues(stream.IntGroup, []int64{1, 2, 3})
	doubled := stream.Lift(s, func(v int64) int64 { return v * 2 }, stream.IntGroup)
	assert.Equal(t, []int64{2, 4, 6}, doubled.Values())
}

func TestLift2Pointwise(t *testing.T) {
	a := stream.FromValues(stream.IntGroup, []int64{1, 2, 3})
	b := stream.FromValues(stream.IntGroup, []int64{10, 20})
	sum := stream.Lift2(a, b, func(x, y int64) int64 { return x + y }, stream.IntGroup)
	assert.Equal(t, []int64{11, 22, 3}, sum.Values())
}
