package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Color is the red-black color tag of a node.
type Color uint8

// Node colors.
const (
	Red Color = iota
	Black
)

// String returns the color name for debugging output.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "invalid"
	}
}

// Node is a single tree node. Nodes are exclusively owned by their tree;
// the child and parent links are non-owning back-references used for
// rotation and fixup bookkeeping.
type Node[K constraints.Ordered, V any] struct {
	// Key orders the node within the tree. Keys are immutable once placed;
	// rewriting a key would silently break the in-order invariant.
	Key K

	// Val is the stored value. Callers may overwrite it in place, which
	// never affects the node's position.
	Val V

	// left, right, and parent point at the tree's shared sentinel when
	// the corresponding neighbor is absent, never at nil.
	left, right, parent *Node[K, V]

	color Color
}

// isRed reports whether the node is red.
func (n *Node[K, V]) isRed() bool {
	return n.color == Red
}

// isBlack reports whether the node is black.
func (n *Node[K, V]) isBlack() bool {
	return n.color == Black
}
