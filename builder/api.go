// SPDX-License-Identifier: MIT
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, directed, gopts, cons...). Creates g,
//     runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Determinism: same n/gopts/constructor order/PRNG seed ⇒ identical
//     graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/konig-graphs/konig/graph"
)

// Constructor applies a deterministic or randomized mutation to an
// already-sized graph.Graph. Constructors MUST:
//   - Validate g.N() against the shape's structural minimum and return a
//     sentinel error (no panics) if it is too small.
//   - Emit edges in a stable, documented order for the deterministic
//     shapes (Path/Cycle/Star/Wheel/Clique).
//   - Preserve determinism for the same graph and PRNG state for the
//     randomized shapes (Tree/Forest/DAG).
type Constructor func(g *graph.Graph) error

// BuildGraph creates a new graph.Graph of n vertices (directed or
// undirected per the directed flag) with the given options, and applies
// every constructor in order. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately; no partial cleanup is
// attempted.
func BuildGraph(n uint32, directed bool, gopts []graph.GraphOption, cons ...Constructor) (*graph.Graph, error) {
	var g *graph.Graph
	if directed {
		g = graph.NewDirected(n, gopts...)
	} else {
		g = graph.NewUndirected(n, gopts...)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// Topology factories Path, Cycle, Star, Wheel, Clique, Tree, Forest and
// DAG are implemented in impl_*.go.
