package shellsort

import (
	"math/rand"
	"sort"
	"testing"
)

func isSorted(a []int32) bool {
	return sort.SliceIsSorted(a, func(i, j int) bool { return a[i] < a[j] })
}

func TestSortRandomSizes(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, n := range []int{0, 1, 2, 3, 10, 63, 64, 65, 200, 5000} {
		a := make([]int32, n)
		for i := range a {
			a[i] = int32(rnd.Intn(10000) - 5000)
		}
		before := append([]int32(nil), a...)
		Sort(a)
		if !isSorted(a) {
			t.Fatalf("n=%d: not sorted: %v", n, a)
		}
		sort.Slice(before, func(i, j int) bool { return before[i] < before[j] })
		for i := range a {
			if a[i] != before[i] {
				t.Fatalf("n=%d: multiset mismatch at %d", n, i)
			}
		}
	}
}

func TestSortAllEqual(t *testing.T) {
	a := make([]int32, 100)
	for i := range a {
		a[i] = 5
	}
	Sort(a)
	for _, v := range a {
		if v != 5 {
			t.Fatalf("expected all 5s, got %v", a)
		}
	}
}
