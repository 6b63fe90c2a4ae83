// SPDX-License-Identifier: MIT
//
// konig is a random-graph generation library for producing test inputs
// for competitive-programming problems, and the CLI that drives it.
//
//	prng/     — deterministic 64-bit xorshift PRNG
//	dsu/      — disjoint-set forest
//	sampler/  — exclusion-aware uniform sampling without materializing gaps
//	adjacency — splay-tree-backed adjacency store with rank/select
//	graph/    — fixed-size vertex set, bulk random edge insertion, connectivity repair
//	builder/  — Path/Cycle/Star/Wheel/Clique/Tree/Forest/DAG constructors
//	cmd/      — konig CLI
//
// Everything routes nondeterminism through prng.Source so a fixed seed
// yields a reproducible graph, down to serialization order.
package main

import "github.com/konig-graphs/konig/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}
