package rbtree

// Search finds the node holding key, or returns the sentinel if the key
// is not present. Callers distinguish a miss with IsNil, never with a
// nil check.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	curr := t.root
	for curr != t.sentinel {
		switch {
		case key < curr.Key:
			curr = curr.left
		case key > curr.Key:
			curr = curr.right
		default:
			return curr
		}
	}
	return t.sentinel
}

// FindGE returns the first node whose key is >= key, or the sentinel if
// every key in the tree is smaller. This is the lower-boundary primitive
// for inclusive range starts.
func (t *Tree[K, V]) FindGE(key K) *Node[K, V] {
	result := t.sentinel
	curr := t.root
	for curr != t.sentinel {
		if curr.Key >= key {
			result = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return result
}

// FindGT returns the first node whose key is > key, or the sentinel if
// every key in the tree is <= key. This is the lower-boundary primitive
// for exclusive range starts.
func (t *Tree[K, V]) FindGT(key K) *Node[K, V] {
	result := t.sentinel
	curr := t.root
	for curr != t.sentinel {
		if curr.Key > key {
			result = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	return result
}
