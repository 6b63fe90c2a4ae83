// SPDX-License-Identifier: MIT
//
// impl_cycle.go — implementation of the Cycle constructor.
//
// Contract:
//   - g.N() ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i->(i+1)%N for i=0..N-1 in stable increasing order.
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
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds an N-vertex simple cycle C_N over all of g's vertices.
func Cycle() Constructor {
	return func(g *graph.Graph) error {
		n := g.N()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := uint32(0); i < n; i++ {
			if err := g.AddEdge(i, (i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}
		return nil
	}
}
