// Package sampler draws a sorted, duplicate-free sample of K integers from
// a half-open range [lo, hi), optionally excluding a caller-supplied set of
// values, without ever materializing the excluded interior of the range.
//
// The algorithm compresses the range down to hi-lo-len(excl) slots, draws K
// uniform picks from the compressed space, sorts them, and walks the sorted
// excluded list once to shift each pick past the exclusions beneath it. This
// runs in O(K log K + E log E) instead of the O(hi-lo) a naive shuffle-then-take
// would cost, which matters when hi-lo is the number of possible edges in a
// graph with many vertices and only a handful need to be sampled.
package sampler
