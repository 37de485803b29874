package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/KilimcininKorOglu/treemap/internal/rbtree"
)

// Entry is a short-lived view over a single key of a Map, resolved by one
// tree traversal. It is either occupied (the key is present and the node
// is captured) or vacant (the key is captured for a later insert), and
// every subsequent operation on it runs without a second lookup.
//
// An Entry holds exclusive access to its map: no other read or write may
// happen between Map.Entry and the last use of the Entry or of any
// pointer it produced. The map's version counter enforces this at
// runtime; using a stale Entry panics.
type Entry[K constraints.Ordered, V any] struct {
	m    *Map[K, V]
	node *rbtree.Node[K, V] // sentinel when vacant
	key  K
	ver  uint64
}

// Entry resolves key with a single traversal and returns a view that can
// read, insert, modify, or remove the key's value without searching again.
func (m *Map[K, V]) Entry(key K) *Entry[K, V] {
	return &Entry[K, V]{
		m:    m,
		node: m.tree.Search(key),
		key:  key,
		ver:  m.version,
	}
}

// Occupied reports whether the entry's key is present in the map.
func (e *Entry[K, V]) Occupied() bool {
	e.m.checkVersion(e.ver, "entry")
	return !e.m.tree.IsNil(e.node)
}

// Key returns the entry's key. For an occupied entry this is the stored
// key (keys are immutable once placed); for a vacant entry it is the key
// that a later insert would use.
func (e *Entry[K, V]) Key() K {
	e.m.checkVersion(e.ver, "entry")
	if !e.m.tree.IsNil(e.node) {
		return e.node.Key
	}
	return e.key
}

// Value returns a pointer to the stored value for an occupied entry, or
// nil for a vacant one. The pointer aliases the map's storage.
func (e *Entry[K, V]) Value() *V {
	e.m.checkVersion(e.ver, "entry")
	if e.m.tree.IsNil(e.node) {
		return nil
	}
	return &e.node.Val
}

// OrInsert inserts def if the entry is vacant, and returns a pointer to
// the stored value either way.
func (e *Entry[K, V]) OrInsert(def V) *V {
	e.m.checkVersion(e.ver, "entry")
	if e.m.tree.IsNil(e.node) {
		e.insert(def)
	}
	return &e.node.Val
}

// OrInsertWith inserts the value produced by f if the entry is vacant,
// and returns a pointer to the stored value either way. f is evaluated
// at most once and never for an occupied entry.
func (e *Entry[K, V]) OrInsertWith(f func() V) *V {
	e.m.checkVersion(e.ver, "entry")
	if e.m.tree.IsNil(e.node) {
		e.insert(f())
	}
	return &e.node.Val
}

// AndModify applies f to the value in place if the entry is occupied and
// returns the same entry for chaining. For a vacant entry f is never
// invoked.
func (e *Entry[K, V]) AndModify(f func(*V)) *Entry[K, V] {
	e.m.checkVersion(e.ver, "entry")
	if !e.m.tree.IsNil(e.node) {
		f(&e.node.Val)
	}
	return e
}

// Set stores val under the entry's key. For an occupied entry the value
// is swapped in place and the previous value returned with true; for a
// vacant entry the value is inserted and the zero value returned with
// false. The entry is occupied afterwards.
func (e *Entry[K, V]) Set(val V) (V, bool) {
	e.m.checkVersion(e.ver, "entry")
	if !e.m.tree.IsNil(e.node) {
		prev := e.node.Val
		e.node.Val = val
		return prev, true
	}
	e.insert(val)
	var zero V
	return zero, false
}

// Remove detaches the entry's node from the map and returns the held
// value with true. For a vacant entry it returns the zero value and
// false. The entry is vacant afterwards and may be reused to re-insert
// the same key.
func (e *Entry[K, V]) Remove() (V, bool) {
	e.m.checkVersion(e.ver, "entry")
	if e.m.tree.IsNil(e.node) {
		var zero V
		return zero, false
	}
	val := e.node.Val
	e.m.tree.Remove(e.node)
	e.m.version++
	e.ver = e.m.version
	e.node = e.m.tree.Nil()
	return val, true
}

// insert attaches a node for the entry's key and re-captures the map
// version so the entry remains usable after the structural change.
func (e *Entry[K, V]) insert(val V) {
	e.node = e.m.tree.Insert(e.key, val)
	e.m.version++
	e.ver = e.m.version
}
