package graph

import (
	"strconv"

	"github.com/konig-graphs/konig/prng"
)

// Labeler assigns an external, printable label to a vertex index. It must
// be deterministic and injective — two distinct indices must never produce
// the same label — since ToString relies on labels to uniquely name
// vertices in its output.
//
// Grounded on graphgen.hpp's Labeler<T> class hierarchy (IotaLabeler,
// RandIntLabeler, StaticLabeler), collapsed from an abstract-class
// hierarchy to a single function type per the teacher's own WeightFn
// pattern in builder/weight_fn.go.
type Labeler func(i uint32) string

// IotaLabeler returns a Labeler that labels vertex i as the decimal integer
// start+i.
func IotaLabeler(start int) Labeler {
	return func(i uint32) string {
		return strconv.Itoa(start + int(i))
	}
}

// RandIntLabeler returns a Labeler that assigns each vertex a distinct
// integer label drawn from a random permutation of [start, start+n), where
// n is the number of vertices the Labeler is ever called with. The
// permutation is fixed at construction time, not recomputed per call.
func RandIntLabeler(start int, n int, src *prng.Source) Labeler {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = start + i
	}
	for i := n - 1; i > 0; i-- {
		j := src.Intn(0, i+1)
		labels[i], labels[j] = labels[j], labels[i]
	}
	return func(i uint32) string {
		return strconv.Itoa(labels[i])
	}
}

// StaticLabeler returns a Labeler backed by a fixed, caller-supplied slice
// of labels, one per vertex index.
func StaticLabeler(labels []string) Labeler {
	cp := make([]string, len(labels))
	copy(cp, labels)
	return func(i uint32) string {
		return cp[i]
	}
}
