// Package insertion implements the sentinel and small/unrolled insertion
// sort kernels used for near-sorted inputs and as the introsort leaf.
package insertion

// Sentinel sorts arr in place. It requires len(arr) >= 2. It first locates
// the minimum element and swaps it to position 0, where it then acts as a
// lower guard so the inner shift loop needs no bounds check.
func Sentinel(arr []int32) {
	n := len(arr)
	if n < 2 {
		panic("insertion: Sentinel requires len(arr) >= 2")
	}

	minIdx := 0
	for i := 1; i < n; i++ {
		if arr[i] < arr[minIdx] {
			minIdx = i
		}
	}
	arr[0], arr[minIdx] = arr[minIdx], arr[0]

	for i := 2; i < n; i++ {
		key := arr[i]
		j := i - 1
		// No bounds check: arr[0] (the minimum) stops the loop.
		for arr[j] > key {
			arr[j+1] = arr[j]
			j--
		}
		arr[j+1] = key
	}
}

// Small sorts arr in place using standard insertion sort with the inner
// shift loop unrolled up to 4 manual shifts before a guarded residual loop.
// Used as the introsort leaf for small subranges.
func Small(arr []int32) {
	n := len(arr)
	for i := 1; i < n; i++ {
		key := arr[i]
		j := i

		if j >= 1 && arr[j-1] > key {
			arr[j] = arr[j-1]
			j--
		}
		if j >= 1 && arr[j-1] > key {
			arr[j] = arr[j-1]
			j--
		}
		if j >= 1 && arr[j-1] > key {
			arr[j] = arr[j-1]
			j--
		}
		if j >= 1 && arr[j-1] > key {
			arr[j] = arr[j-1]
			j--
		}

		for j >= 1 && arr[j-1] > key {
			arr[j] = arr[j-1]
			j--
		}
		arr[j] = key
	}
}
