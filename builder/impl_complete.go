// SPDX-License-Identifier: MIT
//
// impl_complete.go — implementation of the Clique constructor.
//
// Contract:
//   - g.N() ≥ 1 (else ErrTooFewVertices).
//   - Emits every pair {i,j}, i<j, exactly once, mirrored to j->i when
//     g.Directed().
//
// Complexity:
//   - Time: O(N^2) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/konig-graphs/konig/graph"
)

const (
	methodClique     = "Clique"
	minCompleteNodes = 1
)

// Clique builds the complete simple graph K_N over all of g's vertices.
func Clique() Constructor {
	return func(g *graph.Graph) error {
		n := g.N()
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodClique, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := uint32(0); i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: %w", methodClique, err)
				}
				if g.Directed() {
					if err := g.AddEdge(j, i); err != nil {
						return fmt.Errorf("%s: %w", methodClique, err)
					}
				}
			}
		}
		return nil
	}
}
