// Package adjacency implements the core data structure of konig: an
// augmented splay tree that stores graph adjacencies (ordered vertex pairs)
// and supports insertion, deletion, membership, and logarithmic rank/select
// random access over them in sorted order.
//
// Tree knows nothing about graphs, weights, or vertex labels — it is a
// sorted container of Pair values. Manager layers first/last-adjacency
// bookkeeping per source vertex on top of Tree, which is what the graph
// package actually talks to.
//
// Nodes live in a single growable arena (Tree.nodes) addressed by a small
// unsigned index rather than a pointer, so the structure carries no
// lifetime or aliasing hazards and needs no finalizer or manual free: erased
// slots are simply pushed onto a free list and reused by the next Insert.
package adjacency
