// Package treemap provides an in-memory ordered key-value map backed by
// a sentinel-based red-black tree.
//
// # Overview
//
// Map keeps its entries sorted by key at all times and offers:
//
//   - O(log n) Get, Insert, Remove, and Contains
//   - O(1) Len and O(log n) First/Last
//   - A single-traversal Entry API for get-or-insert and conditional
//     mutation without a second lookup
//   - Lazy in-order iterators (entries, keys, values, mutable values)
//   - Sorted range queries with inclusive, exclusive, or open bounds
//
// # Usage
//
// Create a map and work with it:
//
//	m := treemap.NewMap[int, string](0, "")
//
//	m.Insert(2, "two")
//	m.Insert(1, "one")
//
//	if v, ok := m.Get(1); ok {
//	    fmt.Println(v) // "one"
//	}
//
//	// Get-or-insert with a single traversal.
//	counter := m.Entry(3).OrInsert("three")
//	*counter = "III"
//
//	// Sorted range scan.
//	r := m.Range(treemap.Included(1), treemap.Excluded(3))
//	for k, v, ok := r.Next(); ok; k, v, ok = r.Next() {
//	    fmt.Println(k, v)
//	}
//
// # Exclusivity
//
// A Map is a single-owner structure: it performs no internal locking and
// must not be shared between goroutines without external synchronization.
// Entries, iterators, and ranges additionally require that the map is not
// structurally modified (no insert of a new key, no removal, no clear)
// while they are alive. The map tracks a structural version counter and
// every view validates it before each use, so a violation panics instead
// of corrupting the traversal. Overwriting values in place, including
// through IterMut or RangeMut pointers, is always permitted.
package treemap
