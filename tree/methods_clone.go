// SPDX-License-Identifier: MIT
// Package: lvalign/tree
//
// methods_clone.go: deep structural copy of a subtree.
//
// Determinism:
//   - Child order, names and lengths are reproduced exactly; String() of the
//     clone equals String() of the source.

package tree

// Clone returns a deep copy of the subtree rooted at n. The copy is a root
// (its parent is nil) and shares no *Node with the source, so pruning or
// renaming the copy can never be observed through the original.
//
// Implementation:
//   - Walk the source with an explicit stack of (source, copy) pairs.
//   - Copy children in order so the clone's traversal order matches.
//
// Complexity: O(N) time and space.
func (n *Node) Clone() *Node {
	type pair struct{ src, dst *Node }

	root := &Node{name: n.name, length: n.length, hasLength: n.hasLength}
	stack := []pair{{src: n, dst: root}}
	var p pair
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(p.src.children) == 0 {
			continue
		}
		p.dst.children = make([]*Node, len(p.src.children))
		for i, c := range p.src.children {
			cp := &Node{name: c.name, length: c.length, hasLength: c.hasLength, parent: p.dst}
			p.dst.children[i] = cp
			stack = append(stack, pair{src: c, dst: cp})
		}
	}

	return root
}
