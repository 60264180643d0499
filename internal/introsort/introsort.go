// Package introsort implements introspective sort: quicksort with
// median-of-three partitioning, a heapsort fallback past a recursion depth
// budget, and an insertion-sort leaf for small subranges.
package introsort

import (
	"github.com/MilkmanAbi/MimiSort/internal/bitops"
	"github.com/MilkmanAbi/MimiSort/internal/insertion"
)

// leafThreshold is the subrange length at or below which the unrolled
// insertion kernel is used instead of recursing further.
const leafThreshold = 16

// Sort sorts arr in place. The recursion depth budget is 2*floor(log2(n)).
func Sort(arr []int32) {
	n := len(arr)
	if n <= 1 {
		return
	}
	depth := 2 * int(bitops.Log2(uint32(n)))
	sortRange(arr, 0, n-1, depth)
}

func sortRange(arr []int32, lo, hi, depth int) {
	n := hi - lo + 1

	if n <= leafThreshold {
		insertion.Small(arr[lo : hi+1])
		return
	}

	if depth == 0 {
		heapsort(arr[lo : hi+1])
		return
	}

	pivot := partition(arr, lo, hi)

	if pivot > lo {
		sortRange(arr, lo, pivot-1, depth-1)
	}
	if pivot < hi {
		sortRange(arr, pivot+1, hi, depth-1)
	}
}

// partition orders {arr[lo], arr[mid], arr[hi]} so arr[lo] <= arr[hi] <=
// arr[mid], which places the median of the three at hi, and partitions the
// range about it using a single Lomuto-style scan.
func partition(arr []int32, lo, hi int) int {
	mid := lo + (hi-lo)/2

	if arr[mid] < arr[lo] {
		arr[lo], arr[mid] = arr[mid], arr[lo]
	}
	if arr[hi] < arr[lo] {
		arr[lo], arr[hi] = arr[hi], arr[lo]
	}
	if arr[mid] < arr[hi] {
		arr[mid], arr[hi] = arr[hi], arr[mid]
	}

	pivot := arr[hi]
	i := lo

	for j := lo; j < hi; j++ {
		if arr[j] <= pivot {
			arr[i], arr[j] = arr[j], arr[i]
			i++
		}
	}

	arr[i], arr[hi] = arr[hi], arr[i]
	return i
}

// heapsort sorts arr in place with a bottom-up binary max-heap.
func heapsort(arr []int32) {
	n := len(arr)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(arr, i, n)
	}
	for i := n - 1; i > 0; i-- {
		arr[0], arr[i] = arr[i], arr[0]
		siftDown(arr, 0, i)
	}
}

func siftDown(arr []int32, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && arr[left] > arr[largest] {
			largest = left
		}
		if right < n && arr[right] > arr[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		arr[i], arr[largest] = arr[largest], arr[i]
		i = largest
	}
}
