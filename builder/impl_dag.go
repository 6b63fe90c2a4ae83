// SPDX-License-Identifier: MIT
//
// impl_dag.go — implementation of the DAG constructor.
//
// Contract:
//   - g.Directed() must be true (else graph.ErrNotImplemented, surfaced
//     unwrapped from graph.Graph.AddDAGEdges).
//   - Adds edgesNo random edges such that every edge points from a
//     higher to a lower vertex index, so the natural index order is a
//     valid topological order and the result is acyclic by construction.

package builder

import (
	"github.com/konig-graphs/konig/graph"
)

// DAG adds edgesNo random edges to a directed graph such that the vertex
// index order is a valid topological order.
func DAG(edgesNo int) Constructor {
	return func(g *graph.Graph) error {
		return g.AddDAGEdges(edgesNo)
	}
}
