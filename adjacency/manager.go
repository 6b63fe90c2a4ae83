// manager.go — per-vertex adjacency bookkeeping layered over Tree.
//
// Grounded on the AdjacencyManager.hpp draft's field layout (vector<iterator>
// vertex_lower_bound, one slot per vertex, renamed here to the first_adj/
// last_adj pair the spec calls out) and method surface (begin(first),
// end(first), kth_present, kth_absent). The cache is keyed by nodeID, which
// an arena-backed Tree never recycles out from under a live node: erasing a
// node returns its slot to the free list, but a cached Iterator for a
// *different*, still-present node keeps pointing at the right slot no
// matter how many rotations Insert/Erase on other vertices trigger. Insert
// and Erase keep first_adj[u]/last_adj[u] exact, so BeginFor/EndFor skip the
// tree's O(log n) LowerBound splay whenever the cache already has the
// answer.

package adjacency

// Manager owns a Tree of (first, second) adjacencies and answers
// per-vertex range queries and present/absent rank queries over it.
type Manager struct {
	tree     *Tree
	firstAdj map[uint32]Iterator
	lastAdj  map[uint32]Iterator
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{
		tree:     NewTree(),
		firstAdj: make(map[uint32]Iterator),
		lastAdj:  make(map[uint32]Iterator),
	}
}

// Tree exposes the underlying adjacency tree for callers that need direct
// rank/select access (graph.Graph's rank-based edge sampling does).
func (m *Manager) Tree() *Tree {
	return m.tree
}

// Size returns the number of adjacencies currently tracked.
func (m *Manager) Size() int {
	return m.tree.Size()
}

// Insert records the adjacency (first, second) and updates first_adj[first]/
// last_adj[first] if (first, second) becomes the new extremal adjacency for
// first. A no-op on the cache if the pair was already present.
func (m *Manager) Insert(first, second uint32) Iterator {
	it := m.tree.Insert(Pair{U: first, V: second})

	if cur, ok := m.firstAdj[first]; !ok || it.Pair().V < cur.Pair().V {
		m.firstAdj[first] = it
	}
	if cur, ok := m.lastAdj[first]; !ok || it.Pair().V > cur.Pair().V {
		m.lastAdj[first] = it
	}
	return it
}

// Erase removes the adjacency (first, second), if present, and repairs
// first_adj[first]/last_adj[first]: if the removed adjacency was the sole
// one for first, both entries are dropped; if it was first_adj[first] the
// cache advances to the next adjacency in tree order; if it was
// last_adj[first] the cache steps back to the previous one.
func (m *Manager) Erase(first, second uint32) {
	it := m.tree.Find(Pair{U: first, V: second})
	if it.Done() {
		return
	}

	if cur, ok := m.firstAdj[first]; ok && cur.Equal(it) {
		if nxt := it.Next(); !nxt.Done() && nxt.Pair().U == first {
			m.firstAdj[first] = nxt
		} else {
			delete(m.firstAdj, first)
		}
	}
	if cur, ok := m.lastAdj[first]; ok && cur.Equal(it) {
		if prev := it.Prev(); !prev.Done() && prev.Pair().U == first {
			m.lastAdj[first] = prev
		} else {
			delete(m.lastAdj, first)
		}
	}

	m.tree.Erase(it)
}

// Has reports whether (first, second) is present.
func (m *Manager) Has(first, second uint32) bool {
	return m.tree.Has(Pair{U: first, V: second})
}

// Find returns an iterator to (first, second), or a Done iterator if
// absent.
func (m *Manager) Find(first, second uint32) Iterator {
	return m.tree.Find(Pair{U: first, V: second})
}

// BeginFor returns an iterator to the first adjacency whose first
// coordinate is first, or the first adjacency that sorts after it if
// first has no adjacencies at all. Answered straight from first_adj[first]
// when cached, with no tree descent at all.
func (m *Manager) BeginFor(first uint32) Iterator {
	if it, ok := m.firstAdj[first]; ok {
		return it
	}
	return m.tree.LowerBound(Pair{U: first})
}

// EndFor returns the past-the-range iterator for first's adjacencies: the
// first adjacency belonging to first+1 (or Done, if no higher vertex has
// any adjacency at all). Ranging from BeginFor(first) to EndFor(first)
// visits exactly first's adjacencies in increasing order of second.
// Answered from first_adj[first+1] when cached.
func (m *Manager) EndFor(first uint32) Iterator {
	if it, ok := m.firstAdj[first+1]; ok {
		return it
	}
	return m.tree.LowerBound(Pair{U: first + 1})
}

// Neighbors returns a freshly allocated, sorted slice of the second
// coordinates of every adjacency whose first coordinate is first.
func (m *Manager) Neighbors(first uint32) []uint32 {
	var out []uint32
	for it := m.BeginFor(first); !it.Equal(m.EndFor(first)); it = it.Next() {
		out = append(out, it.Pair().V)
	}
	return out
}

// KthPresent returns an iterator to the k-th adjacency (0-indexed) in
// sorted order, or Done if k is out of range.
func (m *Manager) KthPresent(k int) Iterator {
	return m.tree.Select(k + 1)
}

// KthAbsent returns the k-th (0-indexed) pair, in row-major order over
// [0,n)x[0,n), that is NOT present in the tree.
//
// This walks the present adjacencies in sorted order and hops the target
// linear index past each one at or below it, the same exclusion-hopping
// idea sampler.New uses for a batch of samples, specialized to a single
// query. It visits present adjacencies in order until the first one past
// the target, with one Select per visited adjacency. The graph package does
// not call it; AddEdges samples through sampler.New instead.
func (m *Manager) KthAbsent(n int, k int) Pair {
	idx := k
	for i := 0; ; i++ {
		it := m.tree.Select(i + 1)
		if it.Done() {
			break
		}
		linear := int(it.Pair().U)*n + int(it.Pair().V)
		if linear <= idx {
			idx++
		} else {
			break
		}
	}
	return Pair{U: uint32(idx / n), V: uint32(idx % n)}
}
