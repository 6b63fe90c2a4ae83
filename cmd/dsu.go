// SPDX-License-Identifier: MIT
//
// dsu.go — `konig dsu` exercises the disjoint-set package directly,
// applying a sequence of merges and printing the resulting components.

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/konig-graphs/konig/dsu"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dsuN      int
	dsuMerges string
)

var dsuCmd = &cobra.Command{
	Use:   "dsu",
	Short: "Apply a sequence of merges to a disjoint-set forest and print its components",
	RunE:  runDSU,
}

func init() {
	dsuCmd.Flags().IntVar(&dsuN, "n", 0, "number of elements")
	dsuCmd.Flags().StringVar(&dsuMerges, "merge", "", "comma-separated a-b merge pairs, e.g. 0-1,1-2")
	_ = dsuCmd.MarkFlagRequired("n")
}

func runDSU(cmd *cobra.Command, args []string) error {
	d := dsu.New(dsuN)

	if dsuMerges != "" {
		for _, pair := range strings.Split(dsuMerges, ",") {
			a, b, err := parseMergePair(pair)
			if err != nil {
				return fmt.Errorf("konig dsu: --merge: %w", err)
			}
			merged := d.Merge(a, b)
			log.Debugf("merge(%d,%d)=%t", a, b, merged)
		}
	}

	roots := make(map[uint32][]uint32)
	for i := uint32(0); i < uint32(dsuN); i++ {
		roots[d.Find(i)] = append(roots[d.Find(i)], i)
	}
	ordered := make([]uint32, 0, len(roots))
	for root := range roots {
		ordered = append(ordered, root)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	for _, root := range ordered {
		members := roots[root]
		strs := make([]string, len(members))
		for i, m := range members {
			strs[i] = strconv.FormatUint(uint64(m), 10)
		}
		fmt.Printf("%d: %s\n", root, strings.Join(strs, " "))
	}
	return nil
}

func parseMergePair(s string) (uint32, uint32, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected a-b, got %q", s)
	}
	a, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return uint32(a), uint32(b), nil
}
