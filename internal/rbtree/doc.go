// Package rbtree implements the sentinel-based red-black tree that backs
// the treemap package.
//
// # Overview
//
// The tree is a classic CLRS red-black tree: every node carries a color tag
// and three links (left child, right child, parent). It provides:
//
//   - O(log n) search, insertion, and deletion
//   - In-order navigation via Min/Max/Successor/Predecessor
//   - Boundary searches (FindGE/FindGT) for range scans
//
// # Sentinel
//
// A single shared sentinel node stands in for every missing child and the
// root's missing parent. It is created once at construction from a
// caller-supplied placeholder key/value, is permanently black, and links to
// itself, so every node in the tree always has three valid links. Callers
// detect "absent" by comparing against the sentinel, never against nil:
//
//	t := rbtree.New[int, string](0, "")
//	n := t.Search(42)
//	if t.IsNil(n) {
//	    // key 42 is not present
//	}
//
// # Ownership
//
// Nodes are created only by Insert and detached only by Remove or Clear.
// The sentinel survives Clear: the root resets to it and the node count
// drops to zero, but the sentinel itself is retained and reused.
package rbtree
