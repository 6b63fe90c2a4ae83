// Package dsu provides a disjoint-set forest (union-find) over a dense
// range of uint32 elements [0, N).
//
// It supports the two classic operations with full path compression and
// union-by-rank:
//
//	Find(i)    - O(1) amortized, returns the representative of i's set.
//	Merge(a,b) - O(1) amortized, unions the two sets, reports whether they
//	             were previously distinct.
//
// DisjointSet is used by graph.Connect to find connected components before
// wiring a random spanning tree across them.
package dsu
