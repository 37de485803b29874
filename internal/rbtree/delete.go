package rbtree

// Remove detaches a node from the tree and returns the physically removed
// node. Passing the sentinel is a no-op that returns the sentinel.
//
// Algorithm:
//  1. If z has at most one non-sentinel child, z itself is spliced out
//  2. Otherwise z's in-order successor y is spliced out in z's place and
//     y's key/value are copied into z, so the node holding z's original
//     identity now holds y's data
//  3. If the spliced-out node was black, the position that replaced it
//     carries a "double-black" deficiency and the remove fixup runs
//
// Callers that need the removed value must read it from z before calling
// Remove: in the two-children case z's fields are overwritten by the
// successor's data and the returned node is the successor's old shell.
func (t *Tree[K, V]) Remove(z *Node[K, V]) *Node[K, V] {
	if z == t.sentinel {
		return t.sentinel
	}

	y := z
	if z.left != t.sentinel && z.right != t.sentinel {
		y = t.Successor(z)
	}

	// x replaces y; it may be the sentinel, whose parent link is
	// temporarily borrowed so the fixup can walk upward from it.
	x := t.sentinel
	if y.left != t.sentinel {
		x = y.left
	} else if y.right != t.sentinel {
		x = y.right
	}
	x.parent = y.parent

	if y.parent == t.sentinel {
		t.root = x
	} else if y == y.parent.left {
		y.parent.left = x
	} else {
		y.parent.right = x
	}

	if y != z {
		z.Key = y.Key
		z.Val = y.Val
	}

	if y.isBlack() {
		t.removeFixup(x)
	}

	t.count--
	y.left = nil
	y.right = nil
	y.parent = nil
	return y
}

// removeFixup resolves the double-black deficiency at x after a black
// node was spliced out. While x is not the root and is black, with w as
// x's sibling:
//
//   - Case 1, w red: recolor w black and the parent red, rotate the
//     parent toward x's side, re-derive w, and retry.
//   - Case 2, w black with two black children: recolor w red and move
//     the deficiency up to the parent.
//   - Case 3, w black, near child red, far child black: swap the colors
//     of w and its near child, rotate w away from x, re-derive w, and
//     fall through to case 4.
//   - Case 4, w black with a red far child: swap the colors of w and the
//     parent, rotate the parent toward x's side, recolor the far child
//     black, and terminate.
//
// Both mirrored halves are implemented; x is forced black after the loop.
func (t *Tree[K, V]) removeFixup(x *Node[K, V]) {
	for x != t.root && x.isBlack() {
		if x == x.parent.left {
			w := x.parent.right // sibling
			if w.isRed() {
				// Case 1
				w.color = Black
				x.parent.color = Red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.isBlack() && w.right.isBlack() {
				// Case 2
				w.color = Red
				x = x.parent
				continue
			}
			if w.right.isBlack() {
				// Case 3
				w.left.color = Black
				w.color = Red
				t.rotateRight(w)
				w = x.parent.right
			}
			// Case 4
			w.color = x.parent.color
			x.parent.color = Black
			w.right.color = Black
			t.rotateLeft(x.parent)
			x = t.root
		} else {
			// Mirror: x is a right child.
			w := x.parent.left
			if w.isRed() {
				w.color = Black
				x.parent.color = Red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.left.isBlack() && w.right.isBlack() {
				w.color = Red
				x = x.parent
				continue
			}
			if w.left.isBlack() {
				w.right.color = Black
				w.color = Red
				t.rotateLeft(w)
				w = x.parent.left
			}
			w.color = x.parent.color
			x.parent.color = Black
			w.left.color = Black
			t.rotateRight(x.parent)
			x = t.root
		}
	}
	x.color = Black
}
