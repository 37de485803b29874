package rbtree

// Insert attaches a new node holding key/val and returns it.
//
// Algorithm:
//  1. Descend from the root to the leaf position the key orders into
//  2. Attach a new red node there, both children pointing at the sentinel
//  3. Run the insert fixup to restore the red-black invariants
//
// Insert always creates a node; it is the caller's responsibility not to
// insert a key that is already present (the treemap facade searches first
// and replaces the value in place on a hit).
func (t *Tree[K, V]) Insert(key K, val V) *Node[K, V] {
	z := &Node[K, V]{
		Key:    key,
		Val:    val,
		color:  Red,
		left:   t.sentinel,
		right:  t.sentinel,
		parent: t.sentinel,
	}

	y := t.sentinel
	x := t.root
	for x != t.sentinel {
		y = x
		if key < x.Key {
			x = x.left
		} else {
			x = x.right
		}
	}

	z.parent = y
	if y == t.sentinel {
		t.root = z
	} else if key < y.Key {
		y.left = z
	} else {
		y.right = z
	}

	t.insertFixup(z)
	t.count++
	return z
}

// insertFixup restores the red-black invariants after attaching the red
// node z. While z's parent is red:
//
//   - Uncle red: recolor parent and uncle black, grandparent red, and
//     continue from the grandparent (pushes the violation upward).
//   - Uncle black, z an inner child: rotate z's parent so z becomes an
//     outer child (structural normalization for the next step).
//   - Uncle black, z an outer child: recolor parent black, grandparent
//     red, rotate the grandparent the opposite way; this terminates.
//
// Both mirrored halves are implemented; the loop ends when the parent is
// black (the sentinel is black, so reaching the root ends it too), and
// the root is forced black afterwards.
func (t *Tree[K, V]) insertFixup(z *Node[K, V]) {
	for z.parent.isRed() {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.isRed() {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateRight(z.parent.parent)
			}
		} else {
			// Mirror: parent is a right child.
			y := z.parent.parent.left
			if y.isRed() {
				z.parent.color = Black
				y.color = Black
				z.parent.parent.color = Red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = Black
				z.parent.parent.color = Red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = Black
}
