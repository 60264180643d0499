package radix

import (
	"math"
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

func TestSortRandomWithNegatives(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rnd.Intn(2000)
		a := make([]int32, n)
		for i := range a {
			a[i] = rnd.Int31() - rnd.Int31()
		}
		aux := make([]int32, n)
		before := multiset(a)

		Sort(a, aux)

		if !isSorted(a) {
			t.Fatalf("trial %d: not sorted", trial)
		}
		after := multiset(a)
		if len(before) != len(after) {
			t.Fatalf("trial %d: multiset size changed", trial)
		}
		for k, v := range before {
			if after[k] != v {
				t.Fatalf("trial %d: multiset mismatch for %d", trial, k)
			}
		}
	}
}

func TestSortExtremes(t *testing.T) {
	a := []int32{math.MaxInt32, math.MinInt32, 0, math.MaxInt32 - 1, math.MinInt32 + 1}
	aux := make([]int32, len(a))
	Sort(a, aux)
	want := []int32{math.MinInt32, math.MinInt32 + 1, 0, math.MaxInt32 - 1, math.MaxInt32}
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("Sort(extremes) = %v, want %v", a, want)
		}
	}
}

func TestBiasSignBitOrdersLikeSigned(t *testing.T) {
	// Biasing must turn signed ordering into unsigned ordering: for any
	// a < b (signed), biasSignBit(a) < biasSignBit(b) (unsigned).
	rnd := rand.New(rand.NewSource(8))
	for i := 0; i < 10000; i++ {
		a := rnd.Int31() - rnd.Int31()
		b := rnd.Int31() - rnd.Int31()
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		if !(biasSignBit(uint32(a)) < biasSignBit(uint32(b))) {
			t.Fatalf("bias broke ordering for a=%d b=%d", a, b)
		}
	}
}

func TestSortAllEqual(t *testing.T) {
	a := make([]int32, 300)
	for i := range a {
		a[i] = -7
	}
	aux := make([]int32, 300)
	Sort(a, aux)
	for _, v := range a {
		if v != -7 {
			t.Fatalf("expected all -7, got %v", a)
		}
	}
}

func TestSortShortAuxPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short aux")
		}
	}()
	Sort(make([]int32, 10), make([]int32, 5))
}
