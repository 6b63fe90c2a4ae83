package graph

import "github.com/konig-graphs/konig/prng"

// Weighter assigns a weight to an edge given its two endpoints. A nil
// Weighter means the graph is unweighted: ToString omits the weight column
// entirely, mirroring graphgen.hpp's NoWeighter/utils::write_weight
// specialization for Weighter<void> rather than making callers pass an
// explicit "no-op" functor.
//
// Grounded on graphgen.hpp's Weighter<T> hierarchy (RandomWeighter,
// NoWeighter), collapsed to a function type exactly as Labeler is.
type Weighter func(u, v uint32) float64

// RandomWeighter returns a Weighter that draws each edge's weight
// independently and uniformly from [min, max).
func RandomWeighter(min, max float64, src *prng.Source) Weighter {
	return func(u, v uint32) float64 {
		return src.Float64n(min, max)
	}
}
