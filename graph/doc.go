// Package graph is the generation engine: a fixed-size vertex set backed by
// an adjacency.Manager, supporting single and bulk random edge insertion,
// random connectivity repair, and serialization to the plain-text edge-list
// format.
//
// A Graph is directed or undirected for its whole lifetime, set at
// construction via NewDirected/NewUndirected; there is no mixed-mode
// per-edge override the way core.Graph in the wider example pack supports,
// since random-graph generation never needs it.
package graph
