// SPDX-License-Identifier: MIT
//
// impl_forest.go — implementation of the Tree and Forest constructors.
//
// Contract:
//   - Forest(edgesNo): 0 ≤ edgesNo ≤ N-1 (else graph.ErrTooManyEdges,
//     surfaced unwrapped from graph.BuildForest).
//   - Tree(): equivalent to Forest(N-1), a single random spanning tree
//     (a random recursive tree) over all of g's vertices.
//
// Both delegate to graph.Graph.BuildForest, which already implements the
// randomized attach-to-an-earlier-vertex algorithm; this file only adapts
// that primitive to the Constructor shape.

package builder

import (
	"github.com/konig-graphs/konig/graph"
)

// Forest adds edgesNo edges forming a random forest.
func Forest(edgesNo int) Constructor {
	return func(g *graph.Graph) error {
		return g.BuildForest(edgesNo)
	}
}

// Tree builds a single random spanning tree over all of g's vertices.
func Tree() Constructor {
	return func(g *graph.Graph) error {
		if g.N() == 0 {
			return nil
		}
		return g.BuildForest(int(g.N() - 1))
	}
}
