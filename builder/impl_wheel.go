// SPDX-License-Identifier: MIT
//
// impl_wheel.go — implementation of the Wheel constructor.
//
// Canonical definition:
//   - W_n = C_{n-1} + hub, i.e. a cycle over vertices 1..N-1 plus a hub at
//     vertex 0. N ≥ 4, since the outer ring must itself be a valid cycle
//     (N-1 ≥ 3).
//
// This fixes an off-by-one present in the rim's closing edge of some
// reference implementations, which close the ring back onto vertex N
// instead of N-1; here the ring is exactly vertices 1..N-1.
//
// Contract:
//   - g.N() ≥ 4 (else ErrTooFewVertices).
//   - Outer ring: i->(i+1) for i=1..N-2, plus closing edge (N-1)->1.
//   - Spokes: hub->i for i=1..N-1 in ascending order. For directed graphs
//     also emits i->hub.
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
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel builds a wheel W_n = C_{n-1} + hub (vertex 0).
func Wheel() Constructor {
	return func(g *graph.Graph) error {
		n := g.N()
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		for i := uint32(1); i < n-1; i++ {
			if err := g.AddEdge(i, i+1); err != nil {
				return fmt.Errorf("%s: ring: %w", methodWheel, err)
			}
		}
		if err := g.AddEdge(n-1, 1); err != nil {
			return fmt.Errorf("%s: ring closing edge: %w", methodWheel, err)
		}

		for i := uint32(1); i < n; i++ {
			if err := g.AddEdge(hub, i); err != nil {
				return fmt.Errorf("%s: spoke: %w", methodWheel, err)
			}
			if g.Directed() {
				if err := g.AddEdge(i, hub); err != nil {
					return fmt.Errorf("%s: spoke: %w", methodWheel, err)
				}
			}
		}
		return nil
	}
}
