// Package builder provides deterministic and randomized topology
// constructors — Path, Cycle, Star, Wheel, Clique, Tree, Forest, DAG — as
// a uniform Constructor function type applied to an already-sized
// graph.Graph.
//
// Guarantees:
//
//   - Idempotent where it matters: re-running a deterministic constructor
//     (Path/Cycle/Star/Wheel/Clique) on the same freshly built graph
//     produces the same edge set every time.
//   - Fast-fail on invalid sizes via sentinel errors, never panics.
//   - Deterministic composition: BuildGraph runs constructors in order and
//     stops at the first error.
//
// See individual function documentation for contracts and complexity.
package builder
