package treemap

import (
	"golang.org/x/exp/constraints"

	"github.com/KilimcininKorOglu/treemap/internal/rbtree"
)

// boundKind distinguishes the three ways a range end can be specified.
type boundKind uint8

const (
	boundIncluded boundKind = iota
	boundExcluded
	boundUnbounded
)

// Bound is one side of a range query: a key that is included, a key that
// is excluded, or no constraint at all.
type Bound[K constraints.Ordered] struct {
	key  K
	kind boundKind
}

// Included bounds a range at key, with key itself inside the range.
func Included[K constraints.Ordered](key K) Bound[K] {
	return Bound[K]{key: key, kind: boundIncluded}
}

// Excluded bounds a range at key, with key itself outside the range.
func Excluded[K constraints.Ordered](key K) Bound[K] {
	return Bound[K]{key: key, kind: boundExcluded}
}

// Unbounded leaves one side of a range open.
func Unbounded[K constraints.Ordered]() Bound[K] {
	return Bound[K]{kind: boundUnbounded}
}

// Range is a lazy iterator over the entries whose keys fall between a
// start and an end bound, in increasing key order. Construction costs
// O(log n); a full pass over k results costs O(log n + k).
//
// The end bound is kept as a key and checked against each candidate
// before it is yielded; key order guarantees that the first failing
// check ends the range for good.
type Range[K constraints.Ordered, V any] struct {
	m    *Map[K, V]
	next *rbtree.Node[K, V]
	end  Bound[K]
	ver  uint64
}

// Range returns an iterator over the entries between start and end.
// A genuinely inverted pair of bounds (start key greater than end key)
// is a caller error and panics at construction; bounds that merely
// select nothing (equal keys with an exclusive side) yield an empty
// range.
func (m *Map[K, V]) Range(start, end Bound[K]) *Range[K, V] {
	checkBounds(start, end)
	return &Range[K, V]{
		m:    m,
		next: m.startNode(start),
		end:  end,
		ver:  m.version,
	}
}

// Next yields the next in-range key-value pair, or zero values and false
// when the range is exhausted.
func (r *Range[K, V]) Next() (K, V, bool) {
	r.m.checkVersion(r.ver, "range")
	var zk K
	var zv V
	if r.m.tree.IsNil(r.next) {
		return zk, zv, false
	}
	n := r.next
	if !withinEnd(n.Key, r.end) {
		r.next = r.m.tree.Nil()
		return zk, zv, false
	}
	r.next = r.m.tree.Successor(n)
	return n.Key, n.Val, true
}

// RangeMut is the mutable counterpart of Range: it yields a pointer to
// each value. The end is resolved to a node once at construction (the
// first node past the range), which is stable because structural
// mutation is forbidden while the range is alive.
type RangeMut[K constraints.Ordered, V any] struct {
	m    *Map[K, V]
	next *rbtree.Node[K, V]
	end  *rbtree.Node[K, V]
	ver  uint64
}

// RangeMut returns a mutable iterator over the entries between start and
// end, with the same bound semantics as Range.
func (m *Map[K, V]) RangeMut(start, end Bound[K]) *RangeMut[K, V] {
	checkBounds(start, end)
	var endNode *rbtree.Node[K, V]
	switch end.kind {
	case boundIncluded:
		endNode = m.tree.FindGT(end.key)
	case boundExcluded:
		endNode = m.tree.FindGE(end.key)
	default:
		endNode = m.tree.Nil()
	}
	return &RangeMut[K, V]{
		m:    m,
		next: m.startNode(start),
		end:  endNode,
		ver:  m.version,
	}
}

// Next yields the next in-range key and a pointer to its value, or a
// zero key and nil when the range is exhausted.
func (r *RangeMut[K, V]) Next() (K, *V, bool) {
	r.m.checkVersion(r.ver, "range")
	if r.next == r.end || r.m.tree.IsNil(r.next) {
		var k K
		return k, nil, false
	}
	n := r.next
	r.next = r.m.tree.Successor(n)
	return n.Key, &n.Val, true
}

// startNode resolves a start bound to the first candidate node.
func (m *Map[K, V]) startNode(start Bound[K]) *rbtree.Node[K, V] {
	switch start.kind {
	case boundIncluded:
		return m.tree.FindGE(start.key)
	case boundExcluded:
		return m.tree.FindGT(start.key)
	default:
		return m.tree.Min(m.tree.Root())
	}
}

// withinEnd reports whether key is inside the range's end bound.
func withinEnd[K constraints.Ordered](key K, end Bound[K]) bool {
	switch end.kind {
	case boundIncluded:
		return key <= end.key
	case boundExcluded:
		return key < end.key
	default:
		return true
	}
}

// checkBounds rejects an inverted bound pair at construction.
func checkBounds[K constraints.Ordered](start, end Bound[K]) {
	if start.kind == boundUnbounded || end.kind == boundUnbounded {
		return
	}
	if start.key > end.key {
		panic("treemap: range start bound exceeds end bound")
	}
}
