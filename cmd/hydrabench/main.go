// Command hydrabench compares hydra.Sort and hydra.SortU8 against the
// standard library's sort.Slice across a scenario table of random data,
// nearly-sorted data, and byte-valued keys, at a range of sizes. It is
// not part of the core library: the core is a pure function over memory,
// with no logging, no CLI, and no dependency on this binary.
package main

import (
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/MilkmanAbi/MimiSort"
)

var testSizes = []int{16, 64, 256, 1024, 4096, 10000}

const iterations = 10

type result struct {
	scenario string
	size     int
	hydra    time.Duration
	baseline time.Duration
}

func (r result) speedup() float64 {
	if r.hydra == 0 {
		return 0
	}
	return float64(r.baseline) / float64(r.hydra)
}

func fillRandom(rnd *rand.Rand, arr []int32) {
	for i := range arr {
		arr[i] = rnd.Int31()
	}
}

func fillNearlySorted(rnd *rand.Rand, arr []int32) {
	for i := range arr {
		arr[i] = int32(i)
	}
	n := len(arr)
	for i := 0; i < n/20; i++ {
		idx := rnd.Intn(n)
		arr[idx] = int32(rnd.Intn(n))
	}
}

func verifySorted32(arr []int32) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

func verifySorted8(arr []uint8) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

func runScenario(log *logiface.Logger[*izerolog.Event], scenario string, fill func(*rand.Rand, []int32)) []result {
	rnd := rand.New(rand.NewSource(12345))
	results := make([]result, 0, len(testSizes))

	for _, n := range testSizes {
		var hydraTotal, baselineTotal time.Duration
		hydraOK, baselineOK := true, true

		original := make([]int32, n)
		hydraBuf := make([]int32, n)
		auxBuf := make([]int32, n)
		baselineBuf := make([]int32, n)

		for iter := 0; iter < iterations; iter++ {
			fill(rnd, original)

			copy(hydraBuf, original)
			start := time.Now()
			hydra.Sort(hydraBuf, auxBuf, hydra.ProfileUltraFast)
			hydraTotal += time.Since(start)
			hydraOK = hydraOK && verifySorted32(hydraBuf)

			copy(baselineBuf, original)
			start = time.Now()
			sort.Slice(baselineBuf, func(i, j int) bool { return baselineBuf[i] < baselineBuf[j] })
			baselineTotal += time.Since(start)
			baselineOK = baselineOK && verifySorted32(baselineBuf)
		}

		r := result{
			scenario: scenario,
			size:     n,
			hydra:    hydraTotal / iterations,
			baseline: baselineTotal / iterations,
		}
		results = append(results, r)

		log.Info().
			Str(`scenario`, scenario).
			Int(`size`, n).
			Dur(`hydra`, r.hydra).
			Dur(`baseline`, r.baseline).
			Float64(`speedup`, r.speedup()).
			Log(`benchmark result`)

		if !hydraOK || !baselineOK {
			log.Err().
				Str(`scenario`, scenario).
				Int(`size`, n).
				Log(`sort verification failed`)
		}
	}

	return results
}

func runU8Scenario(log *logiface.Logger[*izerolog.Event]) []result {
	rnd := rand.New(rand.NewSource(12345))
	results := make([]result, 0, len(testSizes))

	for _, n := range testSizes {
		var hydraTotal, baselineTotal time.Duration

		original := make([]uint8, n)
		hydraBuf := make([]uint8, n)
		baselineBuf := make([]uint8, n)

		for iter := 0; iter < iterations; iter++ {
			for i := range original {
				original[i] = uint8(rnd.Intn(256))
			}

			copy(hydraBuf, original)
			start := time.Now()
			hydra.SortU8(hydraBuf)
			hydraTotal += time.Since(start)

			copy(baselineBuf, original)
			start = time.Now()
			sort.Slice(baselineBuf, func(i, j int) bool { return baselineBuf[i] < baselineBuf[j] })
			baselineTotal += time.Since(start)
		}

		if !verifySorted8(hydraBuf) || !verifySorted8(baselineBuf) {
			log.Err().Int(`size`, n).Log(`u8 sort verification failed`)
		}

		r := result{
			scenario: "UInt8",
			size:     n,
			hydra:    hydraTotal / iterations,
			baseline: baselineTotal / iterations,
		}
		results = append(results, r)

		log.Info().
			Str(`scenario`, r.scenario).
			Int(`size`, n).
			Dur(`hydra`, r.hydra).
			Dur(`baseline`, r.baseline).
			Float64(`speedup`, r.speedup()).
			Log(`benchmark result`)
	}

	return results
}

func main() {
	log := izerolog.L.New(
		izerolog.L.WithZerolog(zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()),
		izerolog.L.WithLevel(izerolog.L.LevelTrace()),
	)
	defer hydra.CloseWorkerPool()

	var all []result
	all = append(all, runScenario(log, "Random", fillRandom)...)
	all = append(all, runScenario(log, "NearlySorted", fillNearlySorted)...)
	all = append(all, runU8Scenario(log)...)

	slices.SortFunc(all, func(a, b result) int {
		if a.scenario != b.scenario {
			if a.scenario < b.scenario {
				return -1
			}
			return 1
		}
		return a.size - b.size
	})

	for _, r := range all {
		log.Info().
			Str(`scenario`, r.scenario).
			Int(`size`, r.size).
			Float64(`speedup`, r.speedup()).
			Log(`summary`)
	}
}
