package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/KilimcininKorOglu/treemap/internal/rbtree"
)

// Iter is a lazy in-order iterator over a Map. It is forward-only,
// single-pass, and yields each entry exactly once in increasing key
// order. Advancing costs amortized O(log n) with O(1) extra space.
//
// No structural mutation of the map may happen while the iterator is
// alive; the next call to Next panics if it did.
type Iter[K constraints.Ordered, V any] struct {
	m    *Map[K, V]
	next *rbtree.Node[K, V]
	ver  uint64
}

// Iter returns an iterator positioned at the smallest key.
func (m *Map[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{
		m:    m,
		next: m.tree.Min(m.tree.Root()),
		ver:  m.version,
	}
}

// Next yields the next key-value pair, or zero values and false when the
// iterator is exhausted.
func (it *Iter[K, V]) Next() (K, V, bool) {
	it.m.checkVersion(it.ver, "iterator")
	if it.m.tree.IsNil(it.next) {
		var k K
		var v V
		return k, v, false
	}
	n := it.next
	it.next = it.m.tree.Successor(n)
	return n.Key, n.Val, true
}

// IterMut is the mutable counterpart of Iter: it yields a pointer to
// each value, so values can be updated in place during the pass. Value
// mutation never changes key order and is always safe; structural
// mutation of the map remains forbidden while the iterator is alive.
type IterMut[K constraints.Ordered, V any] struct {
	m    *Map[K, V]
	next *rbtree.Node[K, V]
	ver  uint64
}

// IterMut returns a mutable iterator positioned at the smallest key.
func (m *Map[K, V]) IterMut() *IterMut[K, V] {
	return &IterMut[K, V]{
		m:    m,
		next: m.tree.Min(m.tree.Root()),
		ver:  m.version,
	}
}

// Next yields the next key and a pointer to its value, or a zero key and
// nil when the iterator is exhausted.
func (it *IterMut[K, V]) Next() (K, *V, bool) {
	it.m.checkVersion(it.ver, "iterator")
	if it.m.tree.IsNil(it.next) {
		var k K
		return k, nil, false
	}
	n := it.next
	it.next = it.m.tree.Successor(n)
	return n.Key, &n.Val, true
}

// Keys projects only the keys from an underlying Iter.
type Keys[K constraints.Ordered, V any] struct {
	it *Iter[K, V]
}

// Keys returns an iterator over the map's keys in increasing order.
func (m *Map[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{it: m.Iter()}
}

// Next yields the next key, or the zero key and false when exhausted.
func (ks *Keys[K, V]) Next() (K, bool) {
	k, _, ok := ks.it.Next()
	return k, ok
}

// Values projects only the values from an underlying Iter.
type Values[K constraints.Ordered, V any] struct {
	it *Iter[K, V]
}

// Values returns an iterator over the map's values in key order.
func (m *Map[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{it: m.Iter()}
}

// Next yields the next value, or the zero value and false when exhausted.
func (vs *Values[K, V]) Next() (V, bool) {
	_, v, ok := vs.it.Next()
	return v, ok
}

// ValuesMut projects mutable value pointers from an underlying IterMut.
type ValuesMut[K constraints.Ordered, V any] struct {
	it *IterMut[K, V]
}

// ValuesMut returns an iterator over pointers to the map's values in
// key order.
func (m *Map[K, V]) ValuesMut() *ValuesMut[K, V] {
	return &ValuesMut[K, V]{it: m.IterMut()}
}

// Next yields a pointer to the next value, or nil and false when
// exhausted.
func (vs *ValuesMut[K, V]) Next() (*V, bool) {
	_, v, ok := vs.it.Next()
	return v, ok
}
