// SPDX-License-Identifier: MIT
// Package: lvalign/align
//
// rename.go: internal node labeling.

package align

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvalign/tree"
)

// internalPrefix is the stem of automatic internal node names.
const internalPrefix = "y"

// RenameInternalNodes labels the internal nodes of t, visiting them in level
// order with the root first. Leaves are never renamed.
//
// Modes:
//   - default: the i-th internal node receives "y<i>" unless it already has
//     a name. A named node keeps its name and still consumes index i.
//   - WithNames(names): names[i] is assigned to the i-th internal node
//     unconditionally; len(names) must equal the internal node count.
//
// By default a renamed copy is returned and t is untouched. WithInPlace()
// renames t itself and returns it.
//
// Errors:
//   - ErrStructuralMismatch if the names list has the wrong length.
//   - tree.ErrNilNode if t is nil.
func RenameInternalNodes(t *tree.Node, opts ...Option) (*tree.Node, error) {
	if t == nil {
		return nil, fmt.Errorf("%s: %w", methodRenameNode, tree.ErrNilNode)
	}
	cfg := newConfig(opts...)

	target := t
	if !cfg.inPlace {
		target = t.Clone()
	}
	internal := target.NonTips(true)
	if cfg.namesSet && len(cfg.names) != len(internal) {
		return nil, mismatchf(methodRenameNode, "got %d names for %d internal nodes",
			len(cfg.names), len(internal))
	}

	renamed := 0
	for i, n := range internal {
		switch {
		case cfg.namesSet:
			n.SetName(cfg.names[i])
			renamed++
		case n.Name() == "":
			n.SetName(internalPrefix + strconv.Itoa(i))
			renamed++
		}
	}
	cfg.logger.V(1).Info("renamed internal nodes",
		"internal", len(internal), "renamed", renamed, "inPlace", cfg.inPlace)

	return target, nil
}
