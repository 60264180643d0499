// Package bitops provides branchless arithmetic primitives shared by the
// sort kernels: conditional min/max/swap and integer log2. They are leaf
// helpers with no dependency on anything else in the module.
package bitops

import "math/bits"

// Min returns the smaller of a and b without a data-dependent branch.
func Min(a, b int32) int32 {
	return a ^ ((a ^ b) & -boolToInt32(a > b))
}

// Max returns the larger of a and b without a data-dependent branch.
func Max(a, b int32) int32 {
	return b ^ ((a ^ b) & -boolToInt32(a > b))
}

// MinMax orders *a and *b in place so that *a <= *b, without a
// data-dependent branch in the common case.
func MinMax(a, b *int32) {
	x, y := *a, *b
	gt := -boolToInt32(x > y)
	*a = (x &^ gt) | (y & gt)
	*b = (y &^ gt) | (x & gt)
}

// Log2 returns floor(log2(n)) for n >= 1. Log2(0) returns 0 rather than
// panicking or returning -1, since 31-clz(n|1) is total over all uint32.
func Log2(n uint32) uint32 {
	return 31 - uint32(bits.LeadingZeros32(n|1))
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
