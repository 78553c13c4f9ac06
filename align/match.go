// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// match.go: sample alignment of a table against its metadata.

package align

import (
	"fmt"

	"github.com/katalvlaran/lvalign/frame"
)

// Match restricts table and metadata to the row labels they share and
// returns reindexed copies whose row-label sequences are identical.
//
// MAIN DESCRIPTION:
//   - Samples are rows in both inputs; the shared order is the table's
//     original row order.
//
// Implementation:
//   - Stage 1: reject duplicate row labels in either input. This runs on the
//     full label sets, so a duplicate outside the shared set still fails.
//   - Stage 2: intersect, keeping table order; reject an empty intersection.
//   - Stage 3: reindex both inputs onto the shared labels.
//
// Errors:
//   - ErrStructuralMismatch on duplicates or no shared labels.
//   - frame.ErrNilTable if either input is nil.
//
// Inputs are never modified. Complexity: O(rows(table)+rows(metadata)) label
// work plus O(cells) copying.
func Match(table, metadata *frame.Table, opts ...Option) (*frame.Table, *frame.Table, error) {
	if table == nil || metadata == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatch, frame.ErrNilTable)
	}
	cfg := newConfig(opts...)

	// Stage 1: duplicates first
	if dup := table.DuplicateIndex(); len(dup) > 0 {
		return nil, nil, mismatchf(methodMatch, "table has duplicate row labels %q", dup)
	}
	if dup := metadata.DuplicateIndex(); len(dup) > 0 {
		return nil, nil, mismatchf(methodMatch, "metadata has duplicate row labels %q", dup)
	}

	// Stage 2: ordered intersection
	inMeta := make(map[string]struct{})
	for _, id := range metadata.Index() {
		inMeta[id] = struct{}{}
	}
	tableIdx := table.Index()
	shared := make([]string, 0, len(tableIdx))
	for _, id := range tableIdx {
		if _, ok := inMeta[id]; ok {
			shared = append(shared, id)
		}
	}
	if len(shared) == 0 {
		return nil, nil, mismatchf(methodMatch, "no shared row labels between table (%d) and metadata (%d)",
			len(tableIdx), len(inMeta))
	}

	// Stage 3: reindex both
	subTable, err := table.ReindexRows(shared)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatch, err)
	}
	subMeta, err := metadata.ReindexRows(shared)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodMatch, err)
	}

	cfg.logger.V(1).Info("matched samples",
		"tableRows", len(tableIdx), "metadataRows", len(inMeta), "shared", len(shared))

	return subTable, subMeta, nil
}
