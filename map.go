package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/KilimcininKorOglu/treemap/internal/rbtree"
)

// Map is an in-memory ordered key-value map. Keys are kept in strictly
// increasing order; there are no duplicate keys. A Map is exclusively
// owned by a single goroutine: it performs no internal locking, and
// concurrent access without external synchronization is undefined.
type Map[K constraints.Ordered, V any] struct {
	tree *rbtree.Tree[K, V]

	// version counts structural mutations (node attach/detach). Entries,
	// iterators, and ranges capture it at creation and validate it before
	// every use, so a map modified under a live view fails fast instead
	// of silently corrupting a traversal.
	version uint64
}

// NewMap creates an empty map. The placeholder key/value pair seeds the
// tree's sentinel node; the placeholder key should compare <= every real
// key used (it is never actually compared, so the zero value is fine for
// the usual key types).
func NewMap[K constraints.Ordered, V any](nilKey K, nilVal V) *Map[K, V] {
	return &Map[K, V]{
		tree: rbtree.New[K, V](nilKey, nilVal),
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.Len() == 0
}

// Clear removes every entry. The tree's sentinel is retained, so a
// cleared map is immediately reusable.
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
	m.version++
}

// Get returns the value stored under key, or the zero value and false if
// the key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	n := m.tree.Search(key)
	if m.tree.IsNil(n) {
		var zero V
		return zero, false
	}
	return n.Val, true
}

// GetMut returns a pointer to the value stored under key, or nil if the
// key is absent. The pointer aliases the map's storage: no structural
// mutation of the map may happen while it is retained.
func (m *Map[K, V]) GetMut(key K) *V {
	n := m.tree.Search(key)
	if m.tree.IsNil(n) {
		return nil
	}
	return &n.Val
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return !m.tree.IsNil(m.tree.Search(key))
}

// First returns the smallest key and its value, or zero values and false
// if the map is empty.
func (m *Map[K, V]) First() (K, V, bool) {
	n := m.tree.Min(m.tree.Root())
	if m.tree.IsNil(n) {
		var k K
		var v V
		return k, v, false
	}
	return n.Key, n.Val, true
}

// Last returns the largest key and its value, or zero values and false
// if the map is empty.
func (m *Map[K, V]) Last() (K, V, bool) {
	n := m.tree.Max(m.tree.Root())
	if m.tree.IsNil(n) {
		var k K
		var v V
		return k, v, false
	}
	return n.Key, n.Val, true
}

// Insert stores val under key. If the key was already present its value
// is replaced in place and the previous value is returned with true; the
// entry count is unchanged. Otherwise a new entry is created and the
// zero value is returned with false.
func (m *Map[K, V]) Insert(key K, val V) (V, bool) {
	n := m.tree.Search(key)
	if !m.tree.IsNil(n) {
		prev := n.Val
		n.Val = val
		return prev, true
	}
	m.tree.Insert(key, val)
	m.version++
	var zero V
	return zero, false
}

// Remove deletes the entry under key and returns its value, or the zero
// value and false if the key is absent.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	n := m.tree.Search(key)
	if m.tree.IsNil(n) {
		var zero V
		return zero, false
	}
	val := n.Val
	m.tree.Remove(n)
	m.version++
	return val, true
}

// PopFirst removes and returns the entry with the smallest key, or zero
// values and false if the map is empty.
func (m *Map[K, V]) PopFirst() (K, V, bool) {
	n := m.tree.Min(m.tree.Root())
	if m.tree.IsNil(n) {
		var k K
		var v V
		return k, v, false
	}
	key, val := n.Key, n.Val
	m.tree.Remove(n)
	m.version++
	return key, val, true
}

// PopLast removes and returns the entry with the largest key, or zero
// values and false if the map is empty.
func (m *Map[K, V]) PopLast() (K, V, bool) {
	n := m.tree.Max(m.tree.Root())
	if m.tree.IsNil(n) {
		var k K
		var v V
		return k, v, false
	}
	key, val := n.Key, n.Val
	m.tree.Remove(n)
	m.version++
	return key, val, true
}

// checkVersion panics if the map has been structurally modified since
// the view capturing captured was created. Misuse of a stale view is a
// programming error, not a recoverable condition.
func (m *Map[K, V]) checkVersion(captured uint64, what string) {
	if m.version != captured {
		panic("treemap: " + what + " used after the map was structurally modified")
	}
}
