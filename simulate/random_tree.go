// SPDX-License-Identifier: MIT
// Package: lvalign/simulate
//
// random_tree.go: random coalescent trees.

package simulate

import (
	"strconv"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/tree"
)

// RandomTree returns a random strictly bifurcating tree over nLeaves tips
// named "0".."nLeaves-1", built by coalescence.
//
// MAIN DESCRIPTION:
//   - All tips start at height 0. While k > 1 lineages remain, the clock
//     advances by an Exponential(rate = k(k−1)/2) waiting time, two distinct
//     lineages are drawn uniformly and joined under a new node at the current
//     height. Each child's branch length is the parent height minus the child
//     height, so every tip is equally far from the root.
//   - The root carries no branch length. Internal nodes are named y0..y(n−2)
//     in level order by align.RenameInternalNodes.
//
// Implementation:
//   - Stage 1: validate nLeaves.
//   - Stage 2: seed the active list with the tips.
//   - Stage 3: coalesce until one lineage remains; the new node takes the
//     first drawn lineage as its left child and is appended to the active list.
//   - Stage 4: name internal nodes in place.
//
// Errors:
//   - ErrStructuralMismatch if nLeaves < 1.
//
// Determinism: identical options (seed) give identical trees.
// Complexity: O(n²) for active-list maintenance, O(n) space.
func RandomTree(nLeaves int, opts ...Option) (*tree.Node, error) {
	// Stage 1
	if nLeaves < 1 {
		return nil, mismatchf(methodRandomTree, "need at least 1 leaf, got %d", nLeaves)
	}
	cfg := newConfig(opts...)

	// Stage 2
	active := make([]*tree.Node, nLeaves)
	heights := make([]float64, nLeaves)
	for i := range active {
		active[i] = tree.New(strconv.Itoa(i))
	}

	// Stage 3
	now := 0.0
	for k := nLeaves; k > 1; k-- {
		wait := distuv.Exponential{Rate: float64(k*(k-1)) / 2, Src: cfg.rng}
		now += wait.Rand()

		i := cfg.rng.IntN(k)
		j := cfg.rng.IntN(k - 1)
		if j >= i {
			j++
		}
		first, second := active[i], active[j]
		first.SetLength(now - heights[i])
		second.SetLength(now - heights[j])
		joined := tree.New("", first, second)

		active, heights = dropPair(active, heights, i, j)
		active = append(active, joined)
		heights = append(heights, now)
	}
	root := active[0]

	// Stage 4
	if _, err := align.RenameInternalNodes(root, align.WithInPlace(), align.WithLogger(cfg.logger)); err != nil {
		return nil, err
	}
	cfg.logger.V(1).Info("random tree generated", "leaves", nLeaves, "height", now)

	return root, nil
}

// dropPair removes positions i and j (i != j), keeping the order of the rest.
func dropPair(nodes []*tree.Node, heights []float64, i, j int) ([]*tree.Node, []float64) {
	outN := nodes[:0:0]
	outH := heights[:0:0]
	for k := range nodes {
		if k == i || k == j {
			continue
		}
		outN = append(outN, nodes[k])
		outH = append(outH, heights[k])
	}

	return outN, outH
}
