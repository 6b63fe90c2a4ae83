// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context with %w at the call site.

package builder

import "errors"

// ErrTooFewVertices indicates a shape constructor was run against a graph
// with fewer vertices than the shape structurally requires.
var ErrTooFewVertices = errors.New("builder: too few vertices for this shape")

// ErrConstructFailed indicates BuildGraph was given a nil constructor, or a
// constructor failed for a reason with no more specific sentinel.
var ErrConstructFailed = errors.New("builder: construction failed")
