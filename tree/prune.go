// SPDX-License-Identifier: MIT
// Package: lvalign/tree
//
// prune.go: Shear and Prune.

package tree

import "fmt"

// Shear returns a copy of the tree restricted to the tips named in names.
// Every node that is neither a kept tip nor an ancestor of one is dropped,
// then the copy is pruned (see Prune). The receiver is never modified.
//
// Errors:
//   - ErrEmptySelection if names is empty.
//   - ErrUnknownTip if a name does not belong to any tip.
//
// Complexity: O(N + len(names)).
func (n *Node) Shear(names []string) (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if len(names) == 0 {
		return nil, ErrEmptySelection
	}

	tipSet := make(map[string]struct{})
	for _, t := range n.Tips() {
		tipSet[t.name] = struct{}{}
	}
	keep := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := tipSet[name]; !ok {
			return nil, fmt.Errorf("Shear(%q): %w", name, ErrUnknownTip)
		}
		keep[name] = struct{}{}
	}

	cp := n.Clone()

	// mark kept tips and their ancestors; stop climbing at the first marked node
	marked := make(map[*Node]struct{})
	for _, t := range cp.Tips() {
		if _, ok := keep[t.name]; !ok {
			continue
		}
		for cur := t; cur != nil; cur = cur.parent {
			if _, seen := marked[cur]; seen {
				break
			}
			marked[cur] = struct{}{}
		}
	}

	// snapshot before detaching so the walk is not disturbed by removals
	for _, v := range cp.PreOrder(false) {
		if _, ok := marked[v]; ok {
			continue
		}
		if v.parent != nil {
			v.parent.Remove(v)
		}
	}
	cp.Prune()

	return cp, nil
}

// Prune collapses, in place, every internal node that has exactly one child.
//
// Rule:
//   - Non-root single-child node: its child is re-attached at the end of the
//     grandparent's children and the node is removed. Branch lengths are
//     summed when both are set, otherwise the set one is kept.
//   - Root with a single child afterwards: the root adopts the child's name,
//     length and children.
//
// Complexity: O(N · fanout) in the worst case.
func (n *Node) Prune() {
	var collapse []*Node
	for _, v := range n.PreOrder(false) {
		if len(v.children) == 1 {
			collapse = append(collapse, v)
		}
	}

	var child, parent *Node
	for _, v := range collapse {
		if len(v.children) != 1 || v.parent == nil {
			continue
		}
		child = v.children[0]
		mergeLength(child, v)
		parent = v.parent
		parent.adopt(child) // detaches child from v, appends to parent
		parent.Remove(v)
	}

	if len(n.children) == 1 {
		only := n.children[0]
		n.name = only.name
		n.length, n.hasLength = only.length, only.hasLength
		n.children = nil
		only.parent = nil
		for _, c := range only.children {
			c.parent = n
			n.children = append(n.children, c)
		}
		only.children = nil
	}
}

// mergeLength folds the collapsed node's branch length into its surviving child.
func mergeLength(child, collapsed *Node) {
	switch {
	case child.hasLength && collapsed.hasLength:
		child.length += collapsed.length
	case collapsed.hasLength:
		child.length, child.hasLength = collapsed.length, true
	}
}
