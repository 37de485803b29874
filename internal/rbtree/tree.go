package rbtree

import (
	"golang.org/x/exp/constraints"
)

// Tree is a red-black tree holding key-value nodes in strict key order.
// It maintains the standard red-black invariants after every mutation:
//
//  1. Every node is red or black; the sentinel is black.
//  2. The root is black (or the tree is empty).
//  3. A red node never has a red child.
//  4. Every path from a node down to a descendant sentinel passes through
//     the same number of black nodes.
type Tree[K constraints.Ordered, V any] struct {
	root *Node[K, V]

	// sentinel is the shared "nil" node. It is a dummy that simplifies
	// boundary conditions: an absent child of a node x is treated as an
	// ordinary node, and one shared sentinel represents all absent
	// leaves and the root's missing parent. Its color is never mutated.
	sentinel *Node[K, V]

	// count is the number of real (non-sentinel) nodes.
	count int
}

// New creates an empty tree. The placeholder key/value pair seeds the
// sentinel node; the sentinel's key is never compared against real keys,
// so any values will do.
func New[K constraints.Ordered, V any](nilKey K, nilVal V) *Tree[K, V] {
	sentinel := &Node[K, V]{
		Key:   nilKey,
		Val:   nilVal,
		color: Black,
	}
	sentinel.left = sentinel
	sentinel.right = sentinel
	sentinel.parent = sentinel
	return &Tree[K, V]{
		root:     sentinel,
		sentinel: sentinel,
		count:    0,
	}
}

// Len returns the number of nodes in the tree.
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Root returns the root node, or the sentinel if the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Nil returns the tree's sentinel node.
func (t *Tree[K, V]) Nil() *Node[K, V] {
	return t.sentinel
}

// IsNil reports whether n is the tree's sentinel, i.e. an absent position.
func (t *Tree[K, V]) IsNil(n *Node[K, V]) bool {
	return n == t.sentinel
}

// Clear discards every node but retains the sentinel, which is reset to
// link to itself and becomes the root again.
func (t *Tree[K, V]) Clear() {
	t.root = t.sentinel
	t.sentinel.left = t.sentinel
	t.sentinel.right = t.sentinel
	t.sentinel.parent = t.sentinel
	t.count = 0
}

// Min returns the minimum node of the subtree rooted at x, or the sentinel
// if x is the sentinel.
func (t *Tree[K, V]) Min(x *Node[K, V]) *Node[K, V] {
	for x != t.sentinel && x.left != t.sentinel {
		x = x.left
	}
	return x
}

// Max returns the maximum node of the subtree rooted at x, or the sentinel
// if x is the sentinel.
func (t *Tree[K, V]) Max(x *Node[K, V]) *Node[K, V] {
	for x != t.sentinel && x.right != t.sentinel {
		x = x.right
	}
	return x
}

// Successor returns the next node in key order after x, or the sentinel
// if x is the maximum or the sentinel itself.
func (t *Tree[K, V]) Successor(x *Node[K, V]) *Node[K, V] {
	if x == t.sentinel {
		return t.sentinel
	}
	if x.right != t.sentinel {
		return t.Min(x.right)
	}
	y := x.parent
	for y != t.sentinel && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// Predecessor returns the previous node in key order before x, or the
// sentinel if x is the minimum or the sentinel itself.
func (t *Tree[K, V]) Predecessor(x *Node[K, V]) *Node[K, V] {
	if x == t.sentinel {
		return t.sentinel
	}
	if x.left != t.sentinel {
		return t.Max(x.left)
	}
	y := x.parent
	for y != t.sentinel && x == y.left {
		x = y
		y = y.parent
	}
	return y
}

// rotateLeft moves x so it becomes the left child of its right child:
//
//	     |                |
//	     x                y
//	    / \    ====>     / \
//	   a   y            x   c
//	      / \          / \
//	     b   c        a   b
//
// x must have a non-sentinel right child.
func (t *Tree[K, V]) rotateLeft(x *Node[K, V]) {
	if x.right == t.sentinel {
		return
	}

	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}

	y.left = x
	x.parent = y
}

// rotateRight moves x so it becomes the right child of its left child;
// the mirror image of rotateLeft. x must have a non-sentinel left child.
func (t *Tree[K, V]) rotateRight(x *Node[K, V]) {
	if x.left == t.sentinel {
		return
	}

	y := x.left
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}

	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}

	y.right = x
	x.parent = y
}
