// SPDX-License-Identifier: MIT
//
// build.go — `konig build` constructs one shape and writes ToString() to
// stdout.

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/konig-graphs/konig/builder"
	"github.com/konig-graphs/konig/graph"
	"github.com/konig-graphs/konig/prng"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildShape    string
	buildN        uint32
	buildSeed     int64
	buildDirected bool
	buildWeighted string
	buildEdges    int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a graph of the given shape and print it as an edge list",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildShape, "shape", "", "path|cycle|star|wheel|clique|tree|forest|dag")
	buildCmd.Flags().Uint32Var(&buildN, "n", 0, "number of vertices")
	buildCmd.Flags().Int64Var(&buildSeed, "seed", 1, "PRNG seed")
	buildCmd.Flags().BoolVar(&buildDirected, "directed", false, "build a directed graph")
	buildCmd.Flags().StringVar(&buildWeighted, "weighted", "", "uniform:MIN:MAX to attach random edge weights")
	buildCmd.Flags().IntVar(&buildEdges, "edges", 0, "edge count for forest/dag shapes")
	_ = buildCmd.MarkFlagRequired("shape")
	_ = buildCmd.MarkFlagRequired("n")
}

func runBuild(cmd *cobra.Command, args []string) error {
	src := prng.NewSource(buildSeed)
	log.Debugf("seed=%d shape=%s n=%d directed=%t", buildSeed, buildShape, buildN, buildDirected)

	gopts := []graph.GraphOption{graph.WithSource(src)}
	if buildWeighted != "" {
		w, err := parseWeighted(buildWeighted, src)
		if err != nil {
			return err
		}
		gopts = append(gopts, graph.WithWeighter(w))
	}

	cons, err := shapeConstructor(buildShape, buildEdges)
	if err != nil {
		return err
	}

	g, err := builder.BuildGraph(buildN, buildDirected, gopts, cons)
	if err != nil {
		return err
	}

	log.Debugf("edges=%d", g.EdgeCount())
	fmt.Println(g.ToString())
	return nil
}

func shapeConstructor(shape string, edges int) (builder.Constructor, error) {
	switch shape {
	case "path":
		return builder.Path(), nil
	case "cycle":
		return builder.Cycle(), nil
	case "star":
		return builder.Star(), nil
	case "wheel":
		return builder.Wheel(), nil
	case "clique":
		return builder.Clique(), nil
	case "tree":
		return builder.Tree(), nil
	case "forest":
		return builder.Forest(edges), nil
	case "dag":
		return builder.DAG(edges), nil
	default:
		return nil, fmt.Errorf("konig build: unknown shape %q", shape)
	}
}

// parseWeighted parses "uniform:MIN:MAX" into a graph.Weighter.
func parseWeighted(spec string, src *prng.Source) (graph.Weighter, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 || parts[0] != "uniform" {
		return nil, fmt.Errorf("konig build: --weighted must be uniform:MIN:MAX, got %q", spec)
	}
	min, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, fmt.Errorf("konig build: --weighted min: %w", err)
	}
	max, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, fmt.Errorf("konig build: --weighted max: %w", err)
	}
	return graph.RandomWeighter(min, max, src), nil
}
