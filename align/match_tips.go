// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// match_tips.go: feature alignment of a table against tree tips.

package align

import (
	"fmt"

	"github.com/katalvlaran/lvalign/frame"
	"github.com/katalvlaran/lvalign/tree"
)

// MatchTips restricts a table's columns and a tree's tips to the labels they
// share. The tree is sheared to the shared tips and pruned; the table's
// columns are then reordered to the pruned tree's tip order, so column j of
// the returned table is tip j of the returned tree.
//
// Errors:
//   - ErrStructuralMismatch on duplicate column labels, duplicate tip names
//     or no shared labels.
//   - frame.ErrNilTable / tree.ErrNilNode on nil inputs.
//
// Neither input is modified.
func MatchTips(table *frame.Table, t *tree.Node, opts ...Option) (*frame.Table, *tree.Node, error) {
	if table == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatchTips, frame.ErrNilTable)
	}
	if t == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatchTips, tree.ErrNilNode)
	}
	cfg := newConfig(opts...)

	if dup := table.DuplicateColumns(); len(dup) > 0 {
		return nil, nil, mismatchf(methodMatchTips, "table has duplicate column labels %q", dup)
	}
	tips := t.TipNames()
	if dup := duplicateNames(tips); len(dup) > 0 {
		return nil, nil, mismatchf(methodMatchTips, "tree has duplicate tip names %q", dup)
	}

	inTable := make(map[string]struct{})
	for _, c := range table.Columns() {
		inTable[c] = struct{}{}
	}
	shared := make([]string, 0, len(tips))
	for _, name := range tips {
		if _, ok := inTable[name]; ok {
			shared = append(shared, name)
		}
	}
	if len(shared) == 0 {
		return nil, nil, mismatchf(methodMatchTips, "no shared labels between %d columns and %d tips",
			len(inTable), len(tips))
	}

	pruned, err := t.Shear(shared)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatchTips, err)
	}
	sub, err := table.ReindexColumns(pruned.TipNames())
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatchTips, err)
	}

	cfg.logger.V(1).Info("matched features",
		"columns", len(inTable), "tips", len(tips), "shared", len(shared),
		"droppedTips", len(tips)-len(shared))

	return sub, pruned, nil
}

func duplicateNames(names []string) []string {
	seen := make(map[string]int, len(names))
	var out []string
	for _, n := range names {
		seen[n]++
		if seen[n] == 2 {
			out = append(out, n)
		}
	}

	return out
}
