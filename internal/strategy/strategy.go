// Package strategy implements the dispatcher's algorithm-selection rules:
// an ordered list of predicates over the feature vector, first match wins.
package strategy

import (
	"github.com/MilkmanAbi/MimiSort/internal/analyze"
	"github.com/MilkmanAbi/MimiSort/internal/bitops"
)

// Algorithm is the closed set of kernels the selector can choose.
type Algorithm int

const (
	Network4 Algorithm = iota
	Network8
	Network16
	InsertionSentinel
	ShellCiura
	Radix256
	Introsort
)

// Compile-time tunables, exported so a caller tuning for a specific target
// can read the thresholds the selector uses. They are constants, not
// variables, so they cannot be overridden at runtime.
const (
	SmallNetworkThreshold = 16
	ShellThreshold        = 64
	RadixThreshold        = 256
	BlockSize             = 4096
	PresortThreshold      = 242 // ~0.95 * 255
)

// Strategy is the selector's decision: an algorithm tag plus flags
// governing whether the parallel block coordinator should be engaged.
type Strategy struct {
	Algorithm       Algorithm
	UsePartitioning bool
	UseParallel     bool
	BlockSize       int
}

// Select evaluates the ordered selector rules against f and returns the
// chosen strategy. The rules are evaluated in this order; the first match
// wins:
//
//  1. n <= 4           -> Network4
//  2. n <= 8           -> Network8
//  3. n <= 16          -> Network16
//  4. presort >= 242   -> InsertionSentinel
//  5. n <= 64          -> ShellCiura
//  6. range_log2 <= log2(n)+3 && n >= 256 -> Radix256
//  7. n > 4096         -> Introsort, parallel block sort enabled
//  8. otherwise        -> Introsort
func Select(f analyze.Features) Strategy {
	n := f.N

	switch {
	case n <= 4:
		return Strategy{Algorithm: Network4}
	case n <= 8:
		return Strategy{Algorithm: Network8}
	case n <= SmallNetworkThreshold:
		return Strategy{Algorithm: Network16}
	case f.Presort >= PresortThreshold:
		return Strategy{Algorithm: InsertionSentinel}
	case n <= ShellThreshold:
		return Strategy{Algorithm: ShellCiura}
	}

	if f.RangeLog2 <= bitops.Log2(uint32(n))+3 && n >= RadixThreshold {
		return Strategy{Algorithm: Radix256}
	}

	if n > BlockSize {
		return Strategy{
			Algorithm:       Introsort,
			UsePartitioning: true,
			UseParallel:     true,
			BlockSize:       BlockSize,
		}
	}

	return Strategy{Algorithm: Introsort}
}
