package TreeSet

import (
	"math/rand"
	"testing"
)

const (
	size = 1 << 15
)

func BenchmarkTreeSet_Add(b *testing.B) {
	var t *TreeSet[int]
	for i := 0; i < b.N; i++ {
		t = New[int]()
		for _, j := range rand.Perm(size) {
			t.Add(j)
		}
	}
	b.Log(t.depth())
}

// sorted insertion degenerates the tree into a list.
func BenchmarkTreeSet_AddSorted(b *testing.B) {
	var t *TreeSet[int]
	for i := 0; i < b.N; i++ {
		t = New[int]()
		for j := range size >> 4 {
			t.Add(j)
		}
	}
	b.Log(t.depth())
}

func BenchmarkTreeSet_Remove(b *testing.B) {
	var t *TreeSet[int]
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t = New[int]()
		for _, j := range rand.Perm(size) {
			t.Add(j)
		}
		b.StartTimer()
		for j := 0; j < size; j++ {
			t.Remove(j)
		}
	}
}

func BenchmarkTreeSet_All(b *testing.B) {
	var t *TreeSet[int]
	for i := 0; i < b.N; i++ {
		t = New[int]()
		for _, j := range rand.Perm(size / 2) {
			t.Add(j)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Remove(j)
			}
		}
		for _, j := range rand.Perm(size / 2) {
			t.Add(j + size)
		}
		for j, k := range rand.Perm(size / 2) {
			if k&1 == 1 {
				t.Add(j)
			}
		}
	}
	b.Log(t.depth())
}

func BenchmarkTreeSet_Iterate(b *testing.B) {
	t := New[int]()
	for _, j := range rand.Perm(size) {
		t.Add(j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for range t.All() {
			n++
		}
		if n != size {
			b.Fatalf("iterated %d elements, want %d", n, size)
		}
	}
}
