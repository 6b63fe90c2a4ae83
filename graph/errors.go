// errors.go — sentinel errors for the graph package.
//
// Error policy (same as builder/errors.go):
//   - Only sentinel variables are exported.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     call sites attach context with fmt.Errorf("...: %w", ErrX).

package graph

import "errors"

// ErrInvalidVertex indicates a vertex index outside [0, N) was supplied to
// an operation that addresses a specific vertex.
var ErrInvalidVertex = errors.New("graph: vertex index out of range")

// ErrLoopNotAllowed indicates AddEdge was asked to connect a vertex to
// itself. Konig's original C++ silently stored such adjacencies and then
// filtered them out of ToString; this port rejects them at the source
// instead, matching the teacher's stricter core.Graph error taxonomy.
var ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

// ErrTooManyEdges indicates a requested edge count exceeds the number of
// distinct edges available in the graph's vertex space (or, for
// BuildForest, exceeds N-1).
var ErrTooManyEdges = errors.New("graph: requested edge count exceeds capacity")

// ErrTooFewNodes indicates a shape constructor was asked to build on fewer
// vertices than it structurally requires.
var ErrTooFewNodes = errors.New("graph: too few vertices for this operation")

// ErrNotImplemented indicates an operation konig's original source also
// left unimplemented, or one that has no meaning for the graph's kind.
// Directed Connect is the first case: computing minimum additional edges
// for strong connectivity needs a Tarjan-style SCC pass the original never
// wrote (see graphgen.hpp's DirectedGraph::connect, which throws
// NotImplementedException with a "TODO: tarjan?" comment). AddDAGEdges on
// an undirected graph also returns it.
var ErrNotImplemented = errors.New("graph: not implemented")
