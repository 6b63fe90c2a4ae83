// sampler.go — exclusion-aware uniform range sampling.
//
// Error policy mirrors builder/errors.go: only sentinel variables are
// exported, callers branch with errors.Is, and context is attached with %w
// at the call site rather than baked into the sentinel string.

package sampler

import (
	"errors"
	"fmt"
	"sort"

	"github.com/konig-graphs/konig/prng"
)

// ErrTooManySamples indicates the requested sample size plus the number of
// excluded values does not fit in the requested range.
var ErrTooManySamples = errors.New("sampler: sample size exceeds available range")

// Sample holds a sorted, duplicate-free draw of integers from [lo, hi),
// none of which appear in the exclusion set supplied to New.
type Sample struct {
	values []int64
}

// New draws k distinct values uniformly from [lo, hi), none of which is a
// member of excl, and returns them sorted ascending.
//
// excl need not be pre-sorted; New copies and sorts it internally rather
// than mutating the caller's slice. Excluded values outside [lo, hi) are
// harmless: they are dropped before sampling.
//
// New returns ErrTooManySamples if hi-lo < k+E, where E is the number of
// excl values inside [lo, hi), wrapped with the requested parameters for
// diagnosis.
func New(k int, lo, hi int64, excl []int64, src *prng.Source) (*Sample, error) {
	e := make([]int64, 0, len(excl))
	for _, x := range excl {
		if x >= lo && x < hi {
			e = append(e, x)
		}
	}
	sort.Slice(e, func(i, j int) bool { return e[i] < e[j] })

	span := hi - lo
	if span < int64(k)+int64(len(e)) {
		return nil, fmt.Errorf("sampler.New(k=%d, lo=%d, hi=%d, excl=%d): %w",
			k, lo, hi, len(e), ErrTooManySamples)
	}

	// Draw from the compressed space with the excluded slots squeezed out,
	// then grow each pick back out past the exclusions beneath it.
	top := hi - int64(k) - int64(len(e)) + 1
	vals := make([]int64, k)
	for i := range vals {
		vals[i] = src.Int63n(lo, top)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })

	exclIdx := 0
	for i := range vals {
		for exclIdx < len(e) && e[exclIdx] <= vals[i]+int64(i+exclIdx) {
			exclIdx++
		}
		vals[i] += int64(i + exclIdx)
	}

	return &Sample{values: vals}, nil
}

// Len returns the number of sampled values.
func (s *Sample) Len() int {
	return len(s.values)
}

// At returns the i-th sampled value in ascending order.
func (s *Sample) At(i int) int64 {
	return s.values[i]
}

// Slice returns the sampled values as a fresh, caller-owned slice.
func (s *Sample) Slice() []int64 {
	out := make([]int64, len(s.values))
	copy(out, s.values)
	return out
}
