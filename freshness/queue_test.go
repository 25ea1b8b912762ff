package freshness_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldbsp/freshness"
)

// TestOverflowDropsOldest reproduces the capacity-3 overflow scenario:
// enqueue 1..5, drop counter reaches 2, dequeue in order yields 3,4,5.
func TestOverflowDropsOldest(t *testing.T) {
	q, err := freshness.New[int](3)
	require.NoError(t, err)

	for _, v := range []int{1, 2, 3, 4, 5} {
		q.Enqueue(v, "")
	}

	stats := q.Stats()
	assert.EqualValues(t, 2, stats.DroppedOldest)
	assert.Equal(t, 3, stats.Size)
	assert.Equal(t, 3, stats.Capacity)

	got := q.Dequeue(10, 0)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Value)
	assert.Equal(t, 4, got[1].Value)
	assert.Equal(t, 5, got[2].Value)
}

func TestSequenceNumbersStrictlyIncrease(t *testing.T) {
	q, err := freshness.New[int](2)
	require.NoError(t, err)

	seqs := make([]uint64, 5)
	for i, v := range []int{10, 20, 30, 40, 50} {
		seqs[i] = q.Enqueue(v, "")
	}
	for i := 1; i < len(seqs); i++ {
		assert.Greater(t, seqs[i], seqs[i-1])
	}
}

func TestDequeueNeverExceedsCapacityLiveSize(t *testing.T) {
	q, err := freshness.New[int](3)
	require.NoError(t, err)
	q.Enqueue(1, "")
	q.Enqueue(2, "")

	assert.LessOrEqual(t, q.Stats().Size, q.Stats().Capacity)
}

func TestStaleEntriesDroppedSeparatelyFromOverflow(t *testing.T) {
	now := time.Unix(1000, 0)
	clock := func() time.Time { return now }
	q, err := freshness.New[int](5, freshness.WithMaxAge(time.Second), freshness.WithClock(clock))
	require.NoError(t, err)

	q.Enqueue(1, "")
	now = now.Add(2 * time.Second) // now stale relative to maxAge
	q.Enqueue(2, "")

	got := q.Dequeue(10, 0)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Value)

	stats := q.Stats()
	assert.EqualValues(t, 1, stats.DroppedStale)
	assert.EqualValues(t, 0, stats.DroppedOldest)
}

func TestDequeueBlocksUntilEnqueueSignal(t *testing.T) {
	q, err := freshness.New[int](2)
	require.NoError(t, err)

	done := make(chan []freshness.Entry[int])
	go func() {
		done <- q.Dequeue(1, 500*time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	q.Enqueue(7, "")

	select {
	case got := <-done:
		require.Len(t, got, 1)
		assert.Equal(t, 7, got[0].Value)
	case <-time.After(time.Second):
		t.Fatal("Dequeue did not wake on Enqueue signal")
	}
}

func TestDequeueTimesOutOnEmptyQueue(t *testing.T) {
	q, err := freshness.New[int](2)
	require.NoError(t, err)

	start := time.Now()
	got := q.Dequeue(1, 30*time.Millisecond)
	assert.Empty(t, got)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestStatsUtilizationAndLag(t *testing.T) {
	now := time.Unix(2000, 0)
	clock := func() time.Time { return now }
	q, err := freshness.New[int](4, freshness.WithClock(clock))
	require.NoError(t, err)

	q.Enqueue(1, "")
	now = now.Add(3 * time.Second)

	stats := q.Stats()
	assert.InDelta(t, 0.25, stats.Utilization, 1e-9)
	assert.Equal(t, 3*time.Second, stats.Lag)
}
