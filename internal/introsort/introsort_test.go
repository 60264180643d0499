package introsort

import (
	"math/rand"
	"sort"
	"testing"
)

func isSorted(a []int32) bool {
	return sort.SliceIsSorted(a, func(i, j int) bool { return a[i] < a[j] })
}

func multiset(a []int32) map[int32]int {
	m := make(map[int32]int, len(a))
	for _, v := range a {
		m[v]++
	}
	return m
}

func TestSortRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for trial := 0; trial < 300; trial++ {
		n := rnd.Intn(3000)
		a := make([]int32, n)
		for i := range a {
			a[i] = int32(rnd.Intn(20000) - 10000)
		}
		before := multiset(a)
		Sort(a)
		if !isSorted(a) {
			t.Fatalf("trial %d: not sorted (n=%d)", trial, n)
		}
		after := multiset(a)
		if len(before) != len(after) {
			t.Fatalf("trial %d: multiset size mismatch", trial)
		}
	}
}

func TestSortAdversarialAllEqual(t *testing.T) {
	// Many duplicate pivots is the classic quicksort degenerate case;
	// the heapsort fallback must kick in before this blows the stack.
	a := make([]int32, 5000)
	for i := range a {
		a[i] = 42
	}
	Sort(a)
	if !isSorted(a) {
		t.Fatal("all-equal input not sorted")
	}
}

func TestSortAlreadySortedAndReversed(t *testing.T) {
	n := 4000
	asc := make([]int32, n)
	for i := range asc {
		asc[i] = int32(i)
	}
	Sort(asc)
	if !isSorted(asc) {
		t.Fatal("ascending input not sorted")
	}

	desc := make([]int32, n)
	for i := range desc {
		desc[i] = int32(n - i)
	}
	Sort(desc)
	if !isSorted(desc) {
		t.Fatal("descending input not sorted")
	}
}

func TestHeapsortDirect(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	a := make([]int32, 777)
	for i := range a {
		a[i] = int32(rnd.Intn(1000))
	}
	heapsort(a)
	if !isSorted(a) {
		t.Fatal("heapsort failed to sort")
	}
}

func TestPartitionInvariant(t *testing.T) {
	a := []int32{5, 3, 8, 1, 9, 2, 7, 4, 6}
	p := partition(a, 0, len(a)-1)
	pivot := a[p]
	for i := 0; i < p; i++ {
		if a[i] > pivot {
			t.Fatalf("left side element %d > pivot %d", a[i], pivot)
		}
	}
	for i := p + 1; i < len(a); i++ {
		if a[i] < pivot {
			t.Fatalf("right side element %d < pivot %d", a[i], pivot)
		}
	}
}
