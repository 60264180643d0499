// Package hydra implements an adaptive, in-place integer sort: a single
// entry point analyzes the input in one pass and dispatches to whichever
// kernel (sorting network, insertion sort, Shell sort, counting/radix sort,
// or introsort, optionally split across a helper goroutine) best fits the
// observed size, value range and presortedness.
//
// The package has five public sorting entry points: Sort, Sort4/Sort8/Sort16,
// and SortU8/SortU16, plus CloseWorkerPool, which releases the helper
// goroutine used by the parallel path. Everything else, including feature
// analysis, strategy selection, the individual kernels, and the parallel
// coordinator, is an implementation detail under internal/.
package hydra
