package network

import (
	"math/rand"
	"sort"
	"testing"
)

func permutations(n int) [][]int32 {
	base := make([]int, n)
	for i := range base {
		base[i] = i
	}
	var out [][]int32
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			cp := make([]int32, n)
			for i, v := range base {
				cp[i] = int32(v)
			}
			out = append(out, cp)
			return
		}
		for i := k; i < n; i++ {
			base[k], base[i] = base[i], base[k]
			permute(k + 1)
			base[k], base[i] = base[i], base[k]
		}
	}
	permute(0)
	return out
}

func isSorted(a []int32) bool {
	return sort.SliceIsSorted(a, func(i, j int) bool { return a[i] < a[j] })
}

func TestSort4Exhaustive(t *testing.T) {
	for _, p := range permutations(4) {
		Sort4(p)
		if !isSorted(p) {
			t.Fatalf("Sort4 failed to sort %v", p)
		}
	}
}

func TestSort8Exhaustive(t *testing.T) {
	for _, p := range permutations(8) {
		Sort8(p)
		if !isSorted(p) {
			t.Fatalf("Sort8 failed to sort %v", p)
		}
	}
}

func TestSort16Sampled(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20000; trial++ {
		a := make([]int32, 16)
		for i := range a {
			a[i] = int32(i)
		}
		rnd.Shuffle(16, func(i, j int) { a[i], a[j] = a[j], a[i] })
		Sort16(a)
		if !isSorted(a) {
			t.Fatalf("Sort16 failed to sort %v", a)
		}
	}
}

func TestSort16ZeroOne(t *testing.T) {
	// 0/1 principle: exhaustively check every binary (0/1) input of length 16.
	a := make([]int32, 16)
	for bits := 0; bits < 1<<16; bits++ {
		for i := range a {
			a[i] = int32((bits >> uint(i)) & 1)
		}
		Sort16(a)
		if !isSorted(a) {
			t.Fatalf("Sort16 failed 0/1 principle for bits=%016b -> %v", bits, a)
		}
	}
}

func TestNetworksPreserveMultiset(t *testing.T) {
	in := []int32{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	a4 := append([]int32(nil), in[:4]...)
	Sort4(a4)
	if !isSorted(a4) {
		t.Fatalf("Sort4 descending input not sorted: %v", a4)
	}

	a8 := append([]int32(nil), in[:8]...)
	Sort8(a8)
	for i := 0; i < 8; i++ {
		if a8[i] != int32(i+9) {
			t.Fatalf("Sort8([16..9 reversed slice]) = %v, want 9..16", a8)
		}
	}

	a16 := append([]int32(nil), in...)
	Sort16(a16)
	for i := 0; i < 16; i++ {
		if a16[i] != int32(i+1) {
			t.Fatalf("Sort16 descending input = %v, want 1..16", a16)
		}
	}
}
