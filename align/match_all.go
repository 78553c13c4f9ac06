// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// match_all.go: joint sample and feature alignment.

package align

import (
	"fmt"

	"github.com/katalvlaran/lvalign/frame"
	"github.com/katalvlaran/lvalign/tree"
)

// MatchAll aligns a table against both its sample metadata and its feature
// tree: Match on rows first, then MatchTips on the matched table's columns.
// The returned table's rows equal the returned metadata's rows, and its
// columns equal the returned tree's tips, both in order.
//
// Errors are those of Match and MatchTips, tagged with MatchAll.
func MatchAll(table, metadata *frame.Table, t *tree.Node, opts ...Option) (*frame.Table, *frame.Table, *tree.Node, error) {
	rows, meta, err := Match(table, metadata, opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodMatchAll, err)
	}
	out, pruned, err := MatchTips(rows, t, opts...)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", methodMatchAll, err)
	}

	return out, meta, pruned, nil
}
