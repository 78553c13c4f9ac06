// SPDX-License-Identifier: MIT
// Package: lvalign/tree
//
// types.go: Node type and sentinel errors.

package tree

import "errors"

// Sentinel errors for tree operations.
var (
	// ErrNilNode indicates that a nil *Node was passed where a node is required.
	ErrNilNode = errors.New("tree: node is nil")

	// ErrCycle indicates that Append would attach an ancestor (or the node itself) as a child.
	ErrCycle = errors.New("tree: append would create a cycle")

	// ErrParse indicates malformed Newick input.
	ErrParse = errors.New("tree: malformed newick")

	// ErrUnknownTip indicates that a requested tip name is not present in the tree.
	ErrUnknownTip = errors.New("tree: unknown tip name")

	// ErrEmptySelection indicates that Shear was called with no names.
	ErrEmptySelection = errors.New("tree: empty tip selection")
)

// Node is a vertex of a rooted, ordered tree.
//
// The zero value is an unnamed, childless root with no branch length.
// An empty name means "unnamed". Children are kept in insertion order,
// which is the order every traversal honours.
type Node struct {
	name      string
	length    float64
	hasLength bool

	parent   *Node
	children []*Node
}

// New returns a node named name adopting children in the given order.
// Children already attached elsewhere are detached from their old parent.
// Nil children are skipped.
func New(name string, children ...*Node) *Node {
	n := &Node{name: name}
	for _, c := range children {
		if c == nil {
			continue
		}
		n.adopt(c)
	}

	return n
}

// NewWithLength is New plus a branch length.
func NewWithLength(name string, length float64, children ...*Node) *Node {
	n := New(name, children...)
	n.SetLength(length)

	return n
}

// Name returns the node label ("" when unnamed).
func (n *Node) Name() string { return n.name }

// SetName replaces the node label.
func (n *Node) SetName(name string) { n.name = name }

// Length returns the branch length to the parent and whether one is set.
func (n *Node) Length() (float64, bool) { return n.length, n.hasLength }

// SetLength sets the branch length to the parent.
func (n *Node) SetLength(l float64) {
	n.length = l
	n.hasLength = true
}

// ClearLength removes the branch length.
func (n *Node) ClearLength() {
	n.length = 0
	n.hasLength = false
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// IsTip reports whether n has no children.
func (n *Node) IsTip() bool { return len(n.children) == 0 }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Root walks parent links up to the root.
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// Append attaches c as the last child of n, detaching it from any previous parent.
// Returns ErrCycle if c is n or one of n's ancestors.
// Complexity: O(depth(n) + children(oldParent)).
func (n *Node) Append(c *Node) error {
	if n == nil || c == nil {
		return ErrNilNode
	}
	for cur := n; cur != nil; cur = cur.parent {
		if cur == c {
			return ErrCycle
		}
	}
	n.adopt(c)

	return nil
}

// Remove detaches c from n's children. Reports whether c was a child of n.
func (n *Node) Remove(c *Node) bool {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return true
		}
	}

	return false
}

// adopt moves c under n without cycle checks; callers guarantee acyclicity.
func (n *Node) adopt(c *Node) {
	if c.parent != nil {
		c.parent.Remove(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}
