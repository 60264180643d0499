package hydra

import (
	"math"

	"github.com/MilkmanAbi/MimiSort/internal/analyze"
	"github.com/MilkmanAbi/MimiSort/internal/countsort"
	"github.com/MilkmanAbi/MimiSort/internal/insertion"
	"github.com/MilkmanAbi/MimiSort/internal/introsort"
	"github.com/MilkmanAbi/MimiSort/internal/network"
	"github.com/MilkmanAbi/MimiSort/internal/parallel"
	"github.com/MilkmanAbi/MimiSort/internal/radix"
	"github.com/MilkmanAbi/MimiSort/internal/shellsort"
	"github.com/MilkmanAbi/MimiSort/internal/strategy"
)

// Compile-time tunables, re-exported from internal/strategy for callers
// tuning the dispatcher for a specific target.
const (
	SmallNetworkThreshold = strategy.SmallNetworkThreshold
	ShellThreshold        = strategy.ShellThreshold
	RadixThreshold        = strategy.RadixThreshold
	BlockSize             = strategy.BlockSize
	PresortThreshold      = strategy.PresortThreshold
)

// worker is the package-level parallel coordinator: one long-lived helper
// goroutine, lazily started the first time a sort triggers the parallel
// strategy, shared across calls rather than spun up per call.
var worker parallel.Coordinator

// CloseWorkerPool tears down the background worker goroutine used for
// large, parallel sorts. It is not required for correct operation; it
// exists so a host that wants to release the helper goroutine (for example
// before process exit, or in a test) can do so deterministically. Sort may
// be called again afterward: the worker restarts on demand.
func CloseWorkerPool() {
	worker.Close()
}

// Sort sorts arr in place in ascending order. aux must have length at
// least len(arr); its contents on return are unspecified. profile is
// accepted but ignored: it does not affect the chosen strategy.
//
// Very small inputs (len(arr) <= 16) bypass feature analysis entirely and
// dispatch straight to the matching fixed-size network.
func Sort(arr, aux []int32, profile Profile) {
	_ = profile
	n := len(arr)
	if n <= 1 {
		return
	}
	if n <= SmallNetworkThreshold {
		sortSmall(arr)
		return
	}
	if len(aux) < n {
		panic("hydra: aux shorter than arr")
	}

	f := analyze.Run(arr)
	s := strategy.Select(f)

	switch s.Algorithm {
	case strategy.InsertionSentinel:
		insertion.Sentinel(arr)
	case strategy.ShellCiura:
		shellsort.Sort(arr)
	case strategy.Radix256:
		radix.Sort(arr, aux)
	case strategy.Introsort:
		if s.UseParallel {
			worker.Sort(arr, aux, s.BlockSize)
		} else {
			introsort.Sort(arr)
		}
	default:
		panic("hydra: strategy selector returned an unreachable algorithm for n > 16")
	}
}

// sortSmall dispatches arr (2 <= len(arr) <= 16) to the smallest fixed-size
// network that covers it, staging arr into a stack-local buffer padded
// with math.MaxInt32 sentinels when len(arr) doesn't exactly match a
// network size (2..3, 5..7, 9..15).
func sortSmall(arr []int32) {
	n := len(arr)
	size := 4
	switch {
	case n > 8:
		size = 16
	case n > 4:
		size = 8
	}

	var buf [16]int32
	copy(buf[:n], arr)
	for i := n; i < size; i++ {
		buf[i] = math.MaxInt32
	}

	switch size {
	case 4:
		network.Sort4(buf[:4])
	case 8:
		network.Sort8(buf[:8])
	default:
		network.Sort16(buf[:16])
	}

	copy(arr, buf[:n])
}

// Sort4 sorts arr in place using the fixed 5-comparator N=4 network.
// len(arr) must be exactly 4.
func Sort4(arr []int32) {
	if len(arr) != 4 {
		panic("hydra: Sort4 requires len(arr) == 4")
	}
	network.Sort4(arr)
}

// Sort8 sorts arr in place using the fixed N=8 Batcher network.
// len(arr) must be exactly 8.
func Sort8(arr []int32) {
	if len(arr) != 8 {
		panic("hydra: Sort8 requires len(arr) == 8")
	}
	network.Sort8(arr)
}

// Sort16 sorts arr in place using the fixed N=16 Batcher network.
// len(arr) must be exactly 16.
func Sort16(arr []int32) {
	if len(arr) != 16 {
		panic("hydra: Sort16 requires len(arr) == 16")
	}
	network.Sort16(arr)
}

// SortU8 sorts arr (byte-valued keys) in place using counting sort.
func SortU8(arr []uint8) {
	countsort.U8(arr)
}

// SortU16 sorts arr in place using a two-pass LSD counting sort. aux must
// have length at least len(arr).
func SortU16(arr, aux []uint16) {
	countsort.U16(arr, aux)
}
