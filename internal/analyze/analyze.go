// Package analyze extracts the feature vector that drives strategy
// selection, in a single O(n) pass over the input.
package analyze

import "github.com/MilkmanAbi/MimiSort/internal/bitops"

// Features holds the per-call statistics produced by Run.
type Features struct {
	N         int
	MinVal    int32
	MaxVal    int32
	RangeLog2 uint32
	Runs      int
	// Presort is an 8-bit score on [0,255]: 255 means perfectly ascending,
	// 0 means maximally anti-sorted.
	Presort uint8
}

// Run analyzes arr and returns its feature vector. For n <= 1, Presort is
// defined to be 255 and all other fields are zero valued except N.
func Run(arr []int32) Features {
	n := len(arr)
	if n <= 1 {
		return Features{N: n, Presort: 255}
	}

	minVal, maxVal := arr[0], arr[0]
	runs := 1
	for i := 1; i < n; i++ {
		if arr[i] < arr[i-1] {
			runs++
		}
		if arr[i] < minVal {
			minVal = arr[i]
		}
		if arr[i] > maxVal {
			maxVal = arr[i]
		}
	}

	// 255 - round(255*(runs-1)/(n-1)); round-half-up via adding half the
	// denominator before truncating integer division.
	num := 255 * uint64(runs-1)
	den := uint64(n - 1)
	rounded := (num + den/2) / den
	presort := 255 - uint8(rounded)

	rng := uint32(maxVal - minVal)
	var rangeLog2 uint32
	if rng > 0 {
		rangeLog2 = bitops.Log2(rng)
	}

	return Features{
		N:         n,
		MinVal:    minVal,
		MaxVal:    maxVal,
		RangeLog2: rangeLog2,
		Runs:      runs,
		Presort:   presort,
	}
}
