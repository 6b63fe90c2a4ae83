// SPDX-License-Identifier: MIT
//
// impl_star.go — implementation of the Star constructor.
//
// Contract:
//   - g.N() ≥ 2 (else ErrTooFewVertices).
//   - Hub is vertex index 0; leaves are 1..N-1.
//   - Emits spokes hub->leaf[i] in ascending leaf order. For directed
//     graphs also emits leaf[i]->hub to keep spokes symmetric.
//
// Complexity:
//   - Time: O(N) edges (undirected) or O(2N-2) (directed).
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/konig-graphs/konig/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	hub          = uint32(0)
)

// Star builds a star with hub vertex 0 and N-1 leaves.
func Star() Constructor {
	return func(g *graph.Graph) error {
		n := g.N()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := uint32(1); i < n; i++ {
			if err := g.AddEdge(hub, i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
			if g.Directed() {
				if err := g.AddEdge(i, hub); err != nil {
					return fmt.Errorf("%s: %w", methodStar, err)
				}
			}
		}
		return nil
	}
}
