package izset_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvldbsp/izset"
)

type order struct {
	ID, CustomerID int
}

func valueKey(o order) string    { return strconv.Itoa(o.ID) }
func customerKey(o order) string { return strconv.Itoa(o.CustomerID) }

func TestInsertAndEntriesByJoinKey(t *testing.T) {
	ix := izset.New[order](valueKey, customerKey)
	ix.Insert(order{ID: 1, CustomerID: 10}, 1)
	ix.Insert(order{ID: 2, CustomerID: 10}, 1)
	ix.Insert(order{ID: 3, CustomerID: 20}, 1)

	got := ix.EntriesByJoinKey("10")
	assert.Len(t, got, 2)

	assert.Len(t, ix.EntriesByJoinKey("30"), 0)
}

func TestBucketDroppedWhenEmpty(t *testing.T) {
	ix := izset.New[order](valueKey, customerKey)
	ix.Insert(order{ID: 1, CustomerID: 10}, 1)
	ix.Insert(order{ID: 1, CustomerID: 10}, -1)

	assert.False(t, ix.HasJoinKey("10"))
	assert.Len(t, ix.EntriesByJoinKey("10"), 0)
}

func TestNullKeyNeverMatches(t *testing.T) {
	nullable := func(o order) string {
		if o.CustomerID == 0 {
			return izset.NullKey
		}
		return customerKey(o)
	}
	ix := izset.New[order](valueKey, nullable)
	ix.Insert(order{ID: 1, CustomerID: 0}, 1)
	ix.Insert(order{ID: 2, CustomerID: 0}, 1)

	assert.False(t, ix.HasJoinKey(izset.NullKey))
	assert.Empty(t, ix.EntriesByJoinKey(izset.NullKey))
}

func TestRoundTripToZSet(t *testing.T) {
	ix := izset.New[order](valueKey, customerKey)
	ix.Insert(order{ID: 1, CustomerID: 10}, 2)
	ix.Insert(order{ID: 2, CustomerID: 20}, -1)

	plain := ix.ToZSet()
	assert.EqualValues(t, 2, plain.Weight(order{ID: 1, CustomerID: 10}))
	assert.EqualValues(t, -1, plain.Weight(order{ID: 2, CustomerID: 20}))
	assert.Equal(t, ix.Len(), plain.Len())
}
