// SPDX-License-Identifier: MIT

// Package tree provides a rooted, ordered, n-ary hierarchy whose leaves
// (tips) are named features, together with the traversal, copy and pruning
// primitives that alignment code needs.
//
// What
//
//   - Node: name, optional branch length, parent link and ordered children.
//   - Traversal: LevelOrder (explicit FIFO queue), PreOrder and PostOrder
//     (explicit stacks), Tips, NonTips. None of them recurse, so very deep
//     trees never hit the goroutine stack limit.
//   - Clone: deep structural copy; the copy shares no *Node with the source.
//   - Shear / Prune: restrict a tree to a set of tip names and collapse
//     internal nodes left with a single child.
//   - Parse / String: Newick (bracket notation) codec.
//
// Canonical leaf order
//
//	Tips() returns tips in post-order, which for an ordered tree is the
//	left-to-right leaf order. Every consumer that must line tips up with
//	table columns uses this order.
//
// Prune rule
//
//	A non-root node with one child is removed; its child is re-attached at
//	the END of the grandparent's child list and inherits the summed branch
//	length. A root left with one child adopts that child's name, length and
//	children. For (((a,b)f,c),d)r sheared to {a,b,d} the result is
//	(d,(a,b)f)r.
//
// Ownership
//
//	Shear and Clone never touch the receiver. Prune, Append, Remove,
//	SetName and SetLength mutate in place and are not safe for concurrent
//	use on the same tree.
//
// Errors
//
//   - ErrNilNode         nil receiver or argument.
//   - ErrCycle           Append would make a node its own ancestor.
//   - ErrParse           malformed Newick input.
//   - ErrUnknownTip      Shear was asked for a name that is not a tip.
//   - ErrEmptySelection  Shear was asked for no tips at all.
package tree
