// SPDX-License-Identifier: MIT
// Package: lvalign/tree
//
// traverse.go: non-recursive traversals.

package tree

// LevelOrder returns nodes in breadth-first order starting at n, ties broken
// by child order. When includeSelf is false, n itself is omitted.
// Uses an explicit FIFO queue; never recurses.
// Complexity: O(N) time, O(N) space.
func (n *Node) LevelOrder(includeSelf bool) []*Node {
	out := make([]*Node, 0, 8)
	queue := []*Node{n}
	var cur *Node
	for len(queue) > 0 {
		cur = queue[0]
		queue = queue[1:]
		if cur != n || includeSelf {
			out = append(out, cur)
		}
		queue = append(queue, cur.children...)
	}

	return out
}

// PreOrder returns nodes parent-before-children, left to right.
// Complexity: O(N) time, O(N) space.
func (n *Node) PreOrder(includeSelf bool) []*Node {
	out := make([]*Node, 0, 8)
	stack := []*Node{n}
	var cur *Node
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur != n || includeSelf {
			out = append(out, cur)
		}
		// push right-to-left so the leftmost child pops first
		for i := len(cur.children) - 1; i >= 0; i-- {
			stack = append(stack, cur.children[i])
		}
	}

	return out
}

// postFrame is a PostOrder stack entry: a node and the index of the next child to descend into.
type postFrame struct {
	node *Node
	next int
}

// PostOrder returns nodes children-before-parent, left to right.
// Complexity: O(N) time, O(depth) stack.
func (n *Node) PostOrder(includeSelf bool) []*Node {
	out := make([]*Node, 0, 8)
	stack := []postFrame{{node: n}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.children) {
			child := top.node.children[top.next]
			top.next++
			stack = append(stack, postFrame{node: child})
			continue
		}
		done := top.node
		stack = stack[:len(stack)-1]
		if done != n || includeSelf {
			out = append(out, done)
		}
	}

	return out
}

// Tips returns the leaves under n in canonical (left-to-right) order.
// A childless n is its own single tip.
func (n *Node) Tips() []*Node {
	all := n.PostOrder(true)
	out := make([]*Node, 0, len(all)/2+1)
	for _, v := range all {
		if v.IsTip() {
			out = append(out, v)
		}
	}

	return out
}

// TipNames returns the names of Tips() in the same order.
func (n *Node) TipNames() []string {
	tips := n.Tips()
	out := make([]string, len(tips))
	for i, t := range tips {
		out[i] = t.name
	}

	return out
}

// NonTips returns internal nodes in level order. When includeSelf is false the
// receiver is omitted even if it is internal.
func (n *Node) NonTips(includeSelf bool) []*Node {
	var out []*Node
	for _, v := range n.LevelOrder(includeSelf) {
		if !v.IsTip() {
			out = append(out, v)
		}
	}

	return out
}

// CountInternal returns the number of internal nodes, root included.
func (n *Node) CountInternal() int { return len(n.NonTips(true)) }

// Find returns the first node named name in level order, or nil.
func (n *Node) Find(name string) *Node {
	for _, v := range n.LevelOrder(true) {
		if v.name == name {
			return v
		}
	}

	return nil
}

// Ancestors returns the chain from n's parent up to the root.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for cur := n.parent; cur != nil; cur = cur.parent {
		out = append(out, cur)
	}

	return out
}
