// Package network implements fixed-size sorting networks for N=4, 8 and 16
// elements: a predetermined sequence of compare-exchanges with no
// data-dependent control flow. Correctness follows from the 0/1 principle.
package network

import "github.com/MilkmanAbi/MimiSort/internal/bitops"

// Sort4 sorts exactly 4 elements using a 5-comparator network:
// (0,1)(2,3)(0,2)(1,3)(1,2).
func Sort4(a []int32) {
	_ = a[3]
	bitops.MinMax(&a[0], &a[1])
	bitops.MinMax(&a[2], &a[3])
	bitops.MinMax(&a[0], &a[2])
	bitops.MinMax(&a[1], &a[3])
	bitops.MinMax(&a[1], &a[2])
}

// Sort8 sorts exactly 8 elements using Batcher's odd-even mergesort
// network (19 comparators).
func Sort8(a []int32) {
	_ = a[7]
	bitops.MinMax(&a[0], &a[1])
	bitops.MinMax(&a[2], &a[3])
	bitops.MinMax(&a[4], &a[5])
	bitops.MinMax(&a[6], &a[7])

	bitops.MinMax(&a[0], &a[2])
	bitops.MinMax(&a[1], &a[3])
	bitops.MinMax(&a[4], &a[6])
	bitops.MinMax(&a[5], &a[7])

	bitops.MinMax(&a[1], &a[2])
	bitops.MinMax(&a[5], &a[6])

	bitops.MinMax(&a[0], &a[4])
	bitops.MinMax(&a[1], &a[5])
	bitops.MinMax(&a[2], &a[6])
	bitops.MinMax(&a[3], &a[7])

	bitops.MinMax(&a[2], &a[4])
	bitops.MinMax(&a[3], &a[5])

	bitops.MinMax(&a[1], &a[2])
	bitops.MinMax(&a[3], &a[4])
	bitops.MinMax(&a[5], &a[6])
}

// Sort16 sorts exactly 16 elements: each half is sorted with Sort8, then
// the two runs are merged with Batcher's odd-even merge network (25
// comparators), for 63 comparators total.
func Sort16(a []int32) {
	_ = a[15]
	Sort8(a[:8])
	Sort8(a[8:16])

	bitops.MinMax(&a[0], &a[8])
	bitops.MinMax(&a[4], &a[12])
	bitops.MinMax(&a[4], &a[8])
	bitops.MinMax(&a[2], &a[10])
	bitops.MinMax(&a[6], &a[14])
	bitops.MinMax(&a[6], &a[10])
	bitops.MinMax(&a[2], &a[4])
	bitops.MinMax(&a[6], &a[8])
	bitops.MinMax(&a[10], &a[12])
	bitops.MinMax(&a[1], &a[9])
	bitops.MinMax(&a[5], &a[13])
	bitops.MinMax(&a[5], &a[9])
	bitops.MinMax(&a[3], &a[11])
	bitops.MinMax(&a[7], &a[15])
	bitops.MinMax(&a[7], &a[11])
	bitops.MinMax(&a[3], &a[5])
	bitops.MinMax(&a[7], &a[9])
	bitops.MinMax(&a[11], &a[13])
	bitops.MinMax(&a[1], &a[2])
	bitops.MinMax(&a[3], &a[4])
	bitops.MinMax(&a[5], &a[6])
	bitops.MinMax(&a[7], &a[8])
	bitops.MinMax(&a[9], &a[10])
	bitops.MinMax(&a[11], &a[12])
	bitops.MinMax(&a[13], &a[14])
}
