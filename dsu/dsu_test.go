package dsu_test

import (
	"testing"

	"github.com/konig-graphs/konig/dsu"
	"github.com/stretchr/testify/assert"
)

// TestScenario mirrors spec.md §8 concrete scenario 1:
//
//	DisjointSet(5); merge(0,1)->true, merge(1,2)->true, merge(0,2)->false,
//	find(0)==find(2), find(3)==3.
func TestScenario(t *testing.T) {
	d := dsu.New(5)

	assert.True(t, d.Merge(0, 1))
	assert.True(t, d.Merge(1, 2))
	assert.False(t, d.Merge(0, 2))
	assert.Equal(t, d.Find(0), d.Find(2))
	assert.Equal(t, uint32(3), d.Find(3))
}

// TestComponents checks the running component count through a sequence of
// merges.
func TestComponents(t *testing.T) {
	d := dsu.New(4)
	assert.Equal(t, 4, d.Components())

	d.Merge(0, 1)
	assert.Equal(t, 3, d.Components())

	d.Merge(2, 3)
	assert.Equal(t, 2, d.Components())

	d.Merge(1, 2)
	assert.Equal(t, 1, d.Components())

	// Merging within the same set changes nothing.
	d.Merge(0, 3)
	assert.Equal(t, 1, d.Components())
}

// TestFindIdempotent checks find(i) is idempotent once a set is formed.
func TestFindIdempotent(t *testing.T) {
	d := dsu.New(10)
	for i := uint32(1); i < 10; i++ {
		d.Merge(0, i)
	}
	root := d.Find(0)
	for i := uint32(0); i < 10; i++ {
		assert.Equal(t, root, d.Find(i))
	}
}

// TestOutOfRangePanics asserts the documented panic-on-precondition-
// violation behavior.
func TestOutOfRangePanics(t *testing.T) {
	d := dsu.New(3)
	assert.Panics(t, func() { d.Find(3) })
}
