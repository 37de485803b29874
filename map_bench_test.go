package treemap

import (
	"testing"

	"github.com/tidwall/btree"
)

// The benchmarks pit the red-black map against tidwall's B-tree map on
// the same workloads, insert / lookup / full scan over benchN integer
// keys, so regressions show up as a widening gap rather than an
// absolute number.

const benchN = 10_000

func benchKeys() []int {
	keys := make([]int, benchN)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys()

	b.Run("treemap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m := NewMap[int, int](0, 0)
			for _, k := range keys {
				m.Insert(k, k)
			}
		}
	})

	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			m := btree.NewMap[int, int](32)
			for _, k := range keys {
				m.Set(k, k)
			}
		}
	})
}

func BenchmarkGet(b *testing.B) {
	keys := benchKeys()

	m := NewMap[int, int](0, 0)
	oracle := btree.NewMap[int, int](32)
	for _, k := range keys {
		m.Insert(k, k)
		oracle.Set(k, k)
	}

	b.Run("treemap", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, k := range keys {
				if _, ok := m.Get(k); !ok {
					b.Fatal("missing key")
				}
			}
		}
	})

	b.Run("btree", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			for _, k := range keys {
				if _, ok := oracle.Get(k); !ok {
					b.Fatal("missing key")
				}
			}
		}
	})
}

func BenchmarkIter(b *testing.B) {
	m := NewMap[int, int](0, 0)
	for _, k := range benchKeys() {
		m.Insert(k, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := m.Iter()
		n := 0
		for _, _, ok := it.Next(); ok; _, _, ok = it.Next() {
			n++
		}
		if n != benchN {
			b.Fatalf("expected %d entries, got %d", benchN, n)
		}
	}
}

func BenchmarkRange(b *testing.B) {
	m := NewMap[int, int](0, 0)
	for _, k := range benchKeys() {
		m.Insert(k, k)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := m.Range(Included(benchN/4), Excluded(benchN/2))
		for _, _, ok := r.Next(); ok; _, _, ok = r.Next() {
		}
	}
}

func BenchmarkEntry(b *testing.B) {
	words := []string{"alpha", "beta", "gamma", "delta", "alpha", "beta", "alpha"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewMap[string, int]("", 0)
		for _, w := range words {
			m.Entry(w).AndModify(func(v *int) { *v++ }).OrInsert(1)
		}
	}
}
