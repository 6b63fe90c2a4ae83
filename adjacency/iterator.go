package adjacency

// Iterator is a random-access cursor over a Tree's adjacencies in sorted
// order. The zero Iterator is not valid; obtain one from Tree's Begin, End,
// Find, LowerBound, UpperBound, Insert, or Select.
type Iterator struct {
	tree *Tree
	id   nodeID
}

// Done reports whether it is the past-the-end iterator.
func (it Iterator) Done() bool {
	return it.id == nilNode
}

// Pair returns the adjacency it points at. Calling Pair on a Done iterator
// panics, matching the original's documented precondition that the
// iterator point at a valid element.
func (it Iterator) Pair() Pair {
	return it.tree.at(it.id).pair
}

// Next returns the iterator to the adjacency immediately following it in
// sorted order, or the Done iterator if it was already the last element.
func (it Iterator) Next() Iterator {
	return it.Advance(1)
}

// Prev returns the iterator to the adjacency immediately preceding it in
// sorted order. Calling Prev on the Done iterator steps back from the end,
// i.e. it returns an iterator to the last element (or Done, if the tree is
// empty) — mirroring operator+= handling past-the-end in the original.
func (it Iterator) Prev() Iterator {
	return it.Advance(-1)
}

// Advance returns the iterator delta positions away from it in sorted
// order, or Done if that walks off either end.
func (it Iterator) Advance(delta int) Iterator {
	t := it.tree
	if it.Done() {
		max := t.treeMaximum()
		if max == nilNode {
			return Iterator{tree: t, id: nilNode}
		}
		return Iterator{tree: t, id: max}.Advance(delta + 1)
	}
	return Iterator{tree: t, id: t.advanceID(it.id, delta)}
}

// Rank returns it's 1-based rank among the tree's adjacencies.
func (it Iterator) Rank() int {
	return it.tree.rank(it.id)
}

// Equal reports whether it and other address the same position. Comparing
// iterators from different Trees is a programmer error.
func (it Iterator) Equal(other Iterator) bool {
	return it.id == other.id
}

// Sub returns the signed difference between it's rank and other's rank.
// The Done iterator's rank is counted as Size()+1, one past the last
// present element, so Sub still gives a meaningful distance when either
// side is past-the-end.
func (it Iterator) Sub(other Iterator) int {
	return it.rankOrPastEnd() - other.rankOrPastEnd()
}

func (it Iterator) rankOrPastEnd() int {
	if it.Done() {
		return it.tree.Size() + 1
	}
	return it.Rank()
}

func (t *Tree) wrap(id nodeID) Iterator {
	return Iterator{tree: t, id: id}
}

// Begin returns an iterator to the smallest adjacency, or Done if the tree
// is empty.
func (t *Tree) Begin() Iterator {
	return t.wrap(t.treeMinimum())
}

// End returns the past-the-end iterator.
func (t *Tree) End() Iterator {
	return t.wrap(nilNode)
}

// LowerBound returns an iterator to the first adjacency that sorts at or
// after p. p need not already be present in the tree.
func (t *Tree) LowerBound(p Pair) Iterator {
	return t.wrap(t.lowerBoundID(p))
}

// UpperBound returns an iterator to the first adjacency that sorts strictly
// after p. p need not already be present in the tree.
func (t *Tree) UpperBound(p Pair) Iterator {
	return t.wrap(t.upperBoundID(p))
}

// Find returns an iterator to p, or End() if p is not present.
func (t *Tree) Find(p Pair) Iterator {
	if !t.hasID(p) {
		return t.End()
	}
	return t.wrap(t.lowerBoundID(p))
}

// Has reports whether p is present in the tree.
func (t *Tree) Has(p Pair) bool {
	return t.hasID(p)
}

// Insert adds p to the tree (a no-op if already present, since the tree
// holds no duplicates) and returns an iterator to it.
func (t *Tree) Insert(p Pair) Iterator {
	return t.wrap(t.insertID(p))
}

// Erase removes the adjacency it points to. Erasing the Done iterator is a
// no-op. it is invalid after Erase returns.
func (t *Tree) Erase(it Iterator) {
	t.eraseID(it.id)
}

// Rank returns it's 1-based position among the tree's adjacencies in
// sorted order.
func (t *Tree) Rank(it Iterator) int {
	return t.rank(it.id)
}

// Select returns an iterator to the adjacency with the given 1-based rank,
// or Done if rank is out of [1, Size()].
func (t *Tree) Select(rank int) Iterator {
	return t.wrap(t.selectRank(rank))
}
