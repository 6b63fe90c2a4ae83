package adjacency_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/konig-graphs/konig/adjacency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedPairs(p []adjacency.Pair) []adjacency.Pair {
	out := make([]adjacency.Pair, len(p))
	copy(out, p)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func drain(tr *adjacency.Tree) []adjacency.Pair {
	var out []adjacency.Pair
	for it := tr.Begin(); !it.Done(); it = it.Next() {
		out = append(out, it.Pair())
	}
	return out
}

func TestInsertFindHas(t *testing.T) {
	tr := adjacency.NewTree()
	p := adjacency.Pair{U: 3, V: 4}

	assert.False(t, tr.Has(p))
	tr.Insert(p)
	assert.True(t, tr.Has(p))

	it := tr.Find(p)
	require.False(t, it.Done())
	assert.Equal(t, p, it.Pair())
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	tr := adjacency.NewTree()
	tr.Insert(adjacency.Pair{U: 1, V: 1})
	tr.Insert(adjacency.Pair{U: 1, V: 1})
	assert.Equal(t, 1, tr.Size())
}

func TestSortedOrder(t *testing.T) {
	tr := adjacency.NewTree()
	pairs := []adjacency.Pair{
		{U: 5, V: 1}, {U: 1, V: 9}, {U: 1, V: 2}, {U: 3, V: 0}, {U: 0, V: 0},
	}
	for _, p := range pairs {
		tr.Insert(p)
	}
	assert.Equal(t, sortedPairs(pairs), drain(tr))
}

func TestRankSelectRoundTrip(t *testing.T) {
	tr := adjacency.NewTree()
	r := rand.New(rand.NewSource(1))
	seen := map[adjacency.Pair]bool{}
	var pairs []adjacency.Pair
	for len(pairs) < 200 {
		p := adjacency.Pair{U: uint32(r.Intn(50)), V: uint32(r.Intn(50))}
		if seen[p] {
			continue
		}
		seen[p] = true
		pairs = append(pairs, p)
		tr.Insert(p)
	}

	sorted := sortedPairs(pairs)
	for i, p := range sorted {
		it := tr.Select(i + 1)
		require.False(t, it.Done())
		assert.Equal(t, p, it.Pair())
		assert.Equal(t, i+1, it.Rank())
	}
}

func TestSelectOutOfRange(t *testing.T) {
	tr := adjacency.NewTree()
	tr.Insert(adjacency.Pair{U: 0, V: 0})
	assert.True(t, tr.Select(0).Done())
	assert.True(t, tr.Select(2).Done())
}

func TestLowerUpperBound(t *testing.T) {
	tr := adjacency.NewTree()
	for _, v := range []uint32{1, 3, 5, 7} {
		tr.Insert(adjacency.Pair{U: v, V: 0})
	}

	lb := tr.LowerBound(adjacency.Pair{U: 4, V: 0})
	require.False(t, lb.Done())
	assert.Equal(t, adjacency.Pair{U: 5, V: 0}, lb.Pair())

	ub := tr.UpperBound(adjacency.Pair{U: 5, V: 0})
	require.False(t, ub.Done())
	assert.Equal(t, adjacency.Pair{U: 7, V: 0}, ub.Pair())

	exact := tr.LowerBound(adjacency.Pair{U: 5, V: 0})
	require.False(t, exact.Done())
	assert.Equal(t, adjacency.Pair{U: 5, V: 0}, exact.Pair())
}

func TestEraseRemovesAndShrinks(t *testing.T) {
	tr := adjacency.NewTree()
	p1, p2, p3 := adjacency.Pair{U: 1, V: 1}, adjacency.Pair{U: 2, V: 2}, adjacency.Pair{U: 3, V: 3}
	tr.Insert(p1)
	tr.Insert(p2)
	tr.Insert(p3)
	require.Equal(t, 3, tr.Size())

	it := tr.Find(p2)
	require.False(t, it.Done())
	tr.Erase(it)

	assert.Equal(t, 2, tr.Size())
	assert.False(t, tr.Has(p2))
	assert.Equal(t, []adjacency.Pair{p1, p3}, drain(tr))
}

// TestArenaSlotReuse churns 1000 insert/erase cycles and checks that Size()
// stays exact afterwards. The backing arena's length is not visible from
// this package, so slot recycling itself is not asserted here.
func TestArenaSlotReuse(t *testing.T) {
	tr := adjacency.NewTree()
	for i := 0; i < 1000; i++ {
		p := adjacency.Pair{U: uint32(i), V: 0}
		tr.Insert(p)
		tr.Erase(tr.Find(p))
	}
	assert.Equal(t, 0, tr.Size())

	// One real survivor plus the churn above should not have bloated the
	// structure's visible size.
	tr.Insert(adjacency.Pair{U: 42, V: 42})
	assert.Equal(t, 1, tr.Size())
}

func TestEraseDoneIsNoop(t *testing.T) {
	tr := adjacency.NewTree()
	tr.Insert(adjacency.Pair{U: 1, V: 1})
	tr.Erase(tr.End())
	assert.Equal(t, 1, tr.Size())
}

func TestIteratorNextPrev(t *testing.T) {
	tr := adjacency.NewTree()
	for _, v := range []uint32{0, 1, 2} {
		tr.Insert(adjacency.Pair{U: v, V: 0})
	}

	it := tr.Begin()
	assert.Equal(t, adjacency.Pair{U: 0, V: 0}, it.Pair())
	it = it.Next()
	assert.Equal(t, adjacency.Pair{U: 1, V: 0}, it.Pair())
	it = it.Next()
	assert.Equal(t, adjacency.Pair{U: 2, V: 0}, it.Pair())
	it = it.Next()
	assert.True(t, it.Done())

	it = it.Prev()
	assert.Equal(t, adjacency.Pair{U: 2, V: 0}, it.Pair())
}

// TestIteratorSub checks the signed rank-difference contract, including the
// past-the-end special case: Done is counted as Size()+1, one past the
// last present rank, not 0 or some sentinel unrelated to tree size.
func TestIteratorSub(t *testing.T) {
	tr := adjacency.NewTree()
	for _, v := range []uint32{0, 1, 2, 3} {
		tr.Insert(adjacency.Pair{U: v, V: 0})
	}

	first := tr.Select(1)
	third := tr.Select(3)
	assert.Equal(t, 2, third.Sub(first))
	assert.Equal(t, -2, first.Sub(third))
	assert.Equal(t, 0, first.Sub(first))

	end := tr.End()
	assert.Equal(t, 2, end.Sub(third))
	assert.Equal(t, -2, third.Sub(end))
	assert.Equal(t, 0, end.Sub(end))
}
