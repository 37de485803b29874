package treemap

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildRangeMap builds the map used by the fixed range scenarios:
// keys 1..10 with val = key*10.
func buildRangeMap(t *testing.T) *Map[int, int] {
	t.Helper()
	m := NewMap[int, int](0, 0)
	for k := 1; k <= 10; k++ {
		m.Insert(k, k*10)
	}
	return m
}

func collectRange(r *Range[int, int]) ([]int, []int) {
	var keys, vals []int
	for k, v, ok := r.Next(); ok; k, v, ok = r.Next() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}

func TestRangeInclusiveEnd(t *testing.T) {
	m := buildRangeMap(t)

	keys, vals := collectRange(m.Range(Included(2), Included(5)))

	require.Equal(t, []int{2, 3, 4, 5}, keys)
	require.Equal(t, []int{20, 30, 40, 50}, vals)
}

func TestRangeExclusiveEnd(t *testing.T) {
	m := buildRangeMap(t)

	keys, vals := collectRange(m.Range(Included(2), Excluded(5)))

	require.Equal(t, []int{2, 3, 4}, keys)
	require.Equal(t, []int{20, 30, 40}, vals)
}

func TestRangeExclusiveStart(t *testing.T) {
	m := buildRangeMap(t)

	keys, _ := collectRange(m.Range(Excluded(2), Included(5)))

	require.Equal(t, []int{3, 4, 5}, keys)
}

func TestRangeUnbounded(t *testing.T) {
	m := buildRangeMap(t)

	keys, _ := collectRange(m.Range(Unbounded[int](), Unbounded[int]()))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, keys)

	keys, _ = collectRange(m.Range(Unbounded[int](), Excluded(4)))
	require.Equal(t, []int{1, 2, 3}, keys)

	keys, _ = collectRange(m.Range(Included(8), Unbounded[int]()))
	require.Equal(t, []int{8, 9, 10}, keys)
}

func TestRangeEmptyMap(t *testing.T) {
	m := NewMap[int, int](0, 0)

	_, _, ok := m.Range(Included(1), Included(10)).Next()
	require.False(t, ok)

	_, _, ok = m.Range(Unbounded[int](), Unbounded[int]()).Next()
	require.False(t, ok)
}

func TestRangeNoOverlap(t *testing.T) {
	m := buildRangeMap(t)

	_, _, ok := m.Range(Included(11), Included(20)).Next()
	require.False(t, ok)
}

func TestRangeAdjacentExclusiveBounds(t *testing.T) {
	m := buildRangeMap(t)

	// Equal keys with an exclusive side select nothing; this is an empty
	// range, not an error.
	_, _, ok := m.Range(Excluded(5), Excluded(5)).Next()
	require.False(t, ok)

	_, _, ok = m.Range(Included(5), Excluded(5)).Next()
	require.False(t, ok)

	_, _, ok = m.Range(Excluded(5), Included(5)).Next()
	require.False(t, ok)

	keys, _ := collectRange(m.Range(Included(5), Included(5)))
	require.Equal(t, []int{5}, keys)
}

func TestRangeInvertedBoundsPanic(t *testing.T) {
	m := buildRangeMap(t)

	require.Panics(t, func() { m.Range(Included(6), Included(2)) })
	require.Panics(t, func() { m.Range(Excluded(6), Excluded(2)) })
	require.Panics(t, func() { m.RangeMut(Included(6), Included(2)) })
}

// TestRangeBruteForce checks every bound-kind combination over a spread
// of bound keys against a brute-force filter of the full contents.
func TestRangeBruteForce(t *testing.T) {
	m := NewMap[int, int](0, 0)
	present := []int{2, 4, 6, 8, 10, 12, 14}
	for _, k := range present {
		m.Insert(k, k*10)
	}

	type boundCase struct {
		bound Bound[int]
		// admit reports whether key k is on the right side of the bound.
		admitLo func(k int) bool
		admitHi func(k int) bool
	}
	mkCases := func(key int) []boundCase {
		return []boundCase{
			{Included(key), func(k int) bool { return k >= key }, func(k int) bool { return k <= key }},
			{Excluded(key), func(k int) bool { return k > key }, func(k int) bool { return k < key }},
			{Unbounded[int](), func(int) bool { return true }, func(int) bool { return true }},
		}
	}

	boundKeys := []int{1, 2, 5, 8, 13, 14, 15}
	for _, lo := range boundKeys {
		for _, hi := range boundKeys {
			for _, start := range mkCases(lo) {
				for _, end := range mkCases(hi) {
					inverted := start.bound.kind != boundUnbounded &&
						end.bound.kind != boundUnbounded && lo > hi
					name := fmt.Sprintf("lo=%d/%d hi=%d/%d", lo, start.bound.kind, hi, end.bound.kind)

					if inverted {
						require.Panics(t, func() { m.Range(start.bound, end.bound) }, name)
						continue
					}

					var want []int
					for _, k := range present {
						if start.admitLo(k) && end.admitHi(k) {
							want = append(want, k)
						}
					}

					got, _ := collectRange(m.Range(start.bound, end.bound))
					require.Equal(t, want, got, name)
				}
			}
		}
	}
}

func TestRangeMut(t *testing.T) {
	m := buildRangeMap(t)

	r := m.RangeMut(Included(2), Excluded(5))
	var keys []int
	for k, v, ok := r.Next(); ok; k, v, ok = r.Next() {
		keys = append(keys, k)
		*v = -*v
	}
	require.Equal(t, []int{2, 3, 4}, keys)

	// Mutations through the range pointers landed in the map.
	for k := 1; k <= 10; k++ {
		v, _ := m.Get(k)
		if k >= 2 && k < 5 {
			require.Equal(t, -k*10, v)
		} else {
			require.Equal(t, k*10, v)
		}
	}
}

func TestRangeMutBounds(t *testing.T) {
	m := buildRangeMap(t)

	cases := []struct {
		name       string
		start, end Bound[int]
		want       []int
	}{
		{"inclusive both", Included(3), Included(7), []int{3, 4, 5, 6, 7}},
		{"exclusive start", Excluded(3), Included(7), []int{4, 5, 6, 7}},
		{"exclusive end", Included(3), Excluded(7), []int{3, 4, 5, 6}},
		{"unbounded start", Unbounded[int](), Included(3), []int{1, 2, 3}},
		{"unbounded end", Included(8), Unbounded[int](), []int{8, 9, 10}},
		{"unbounded both", Unbounded[int](), Unbounded[int](), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"adjacent exclusive", Excluded(5), Excluded(5), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := m.RangeMut(tc.start, tc.end)
			var got []int
			for k, _, ok := r.Next(); ok; k, _, ok = r.Next() {
				got = append(got, k)
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRangePanicsAfterStructuralChange(t *testing.T) {
	m := buildRangeMap(t)

	r := m.Range(Included(1), Included(10))
	_, _, ok := r.Next()
	require.True(t, ok)

	m.Remove(7)

	require.Panics(t, func() { r.Next() })
}

func TestRangeCollectEqualsIterFilter(t *testing.T) {
	// A fully unbounded range and a plain iterator must agree exactly.
	m := buildRangeMap(t)

	wantKeys, wantVals := collect(m.Iter())
	gotKeys, gotVals := collectRange(m.Range(Unbounded[int](), Unbounded[int]()))

	require.Equal(t, wantKeys, gotKeys)
	require.Equal(t, wantVals, gotVals)
}
