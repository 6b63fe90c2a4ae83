// SPDX-License-Identifier: MIT
//
// impl_path.go — implementation of the Path constructor.
//
// Contract:
//   - g.N() ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1)->i for i=1..N-1 in stable increasing order.
//
// Complexity:
//   - Time: O(N) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/konig-graphs/konig/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a simple path 0-1-2-...-(N-1) over all of g's vertices.
func Path() Constructor {
	return func(g *graph.Graph) error {
		n := g.N()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := uint32(1); i < n; i++ {
			if err := g.AddEdge(i-1, i); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}
		return nil
	}
}
