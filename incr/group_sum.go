package incr

import (
	"fmt"

	"github.com/katalvlaran/lvldbsp/zset"
)

// GroupRow is one row of a GROUP BY SUM view: a group key paired with
// its current running total.
type GroupRow struct {
	Key string
	Sum int64
}

func groupRowKey(r GroupRow) string { return fmt.Sprintf("%s|%d", r.Key, r.Sum) }

// GroupSum is the stateful incremental form of a SELECT key,
// SUM(amount) ... GROUP BY key view. It maintains one running total
// per group and, on each Step, emits only the retraction of the stale
// (key, oldSum) row and the insertion of the fresh (key, newSum) row
// for every group whose total actually changed this step.
type GroupSum[T any] struct {
	groupKey func(T) string
	amount   func(T) int64
	totals   map[string]int64
}

// NewGroupSum constructs a GroupSum operator. groupKey derives a row's
// group identity; amount derives the value summed within each group.
func NewGroupSum[T any](groupKey func(T) string, amount func(T) int64) *GroupSum[T] {
	return &GroupSum[T]{
		groupKey: groupKey,
		amount:   amount,
		totals:   make(map[string]int64),
	}
}

// Step applies delta's rows to their groups' running totals and
// returns the output delta: a retraction of each changed group's
// previous (key, sum) row plus an insertion of its new one. A group
// whose total reaches zero is dropped entirely rather than emitted as
// a (key, 0) row.
func (g *GroupSum[T]) Step(delta *zset.ZSet[T]) *zset.ZSet[GroupRow] {
	changedBy := make(map[string]int64)
	delta.ForEach(func(v T, w zset.Weight) {
		k := g.groupKey(v)
		changedBy[k] += g.amount(v) * int64(w)
	})

	out := zset.New[GroupRow](groupRowKey)
	for k, diff := range changedBy {
		if diff == 0 {
			continue
		}
		old := g.totals[k]
		newTotal := old + diff

		if old != 0 {
			out.Insert(GroupRow{Key: k, Sum: old}, -1)
		}
		if newTotal != 0 {
			g.totals[k] = newTotal
			out.Insert(GroupRow{Key: k, Sum: newTotal}, 1)
		} else {
			delete(g.totals, k)
		}
	}
	return out
}

// Reset clears every group's running total.
func (g *GroupSum[T]) Reset() {
	g.totals = make(map[string]int64)
}
