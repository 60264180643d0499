// Package parallel implements the dual-core block coordinator: the caller's
// core partitions the array into fixed-size blocks, hands every other block
// to a long-lived worker goroutine, sorts the remaining blocks itself, then
// merges the per-block sorted runs back into a single ascending sequence
// using aux as merge scratch.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/MilkmanAbi/MimiSort/internal/introsort"
	"github.com/MilkmanAbi/MimiSort/internal/merge"
	"github.com/MilkmanAbi/MimiSort/internal/ring"
)

// workQueueCapacity bounds the number of outstanding block hand-offs. One
// round only ever has a single block in flight to the worker at a time, but
// the buffer is sized generously so Push never has to wait on a slow
// worker during bursty hand-off.
const workQueueCapacity = 16

type workItem struct {
	block []int32
	done  *atomic.Bool
}

// Coordinator owns the second core's worker goroutine and the ring buffer
// used to hand it work. The zero value is ready to use; the worker starts
// lazily on the first call to Sort.
//
// Sort is not reentrant: a Coordinator serializes concurrent callers behind
// mu rather than leaving simultaneous invocations as undefined behavior, so
// a second caller blocks until the first's parallel sort (and its merge
// cascade) has completed.
type Coordinator struct {
	mu    sync.Mutex
	once  sync.Once
	queue *ring.Buffer[workItem]
}

func (c *Coordinator) ensureWorker() {
	c.once.Do(func() {
		c.queue = ring.New[workItem](workQueueCapacity)
		go c.worker(c.queue)
	})
}

func (c *Coordinator) worker(q *ring.Buffer[workItem]) {
	for {
		item, ok := q.Pop()
		if !ok {
			return
		}
		introsort.Sort(item.block)
		item.done.Store(true)
	}
}

// Close tears down the worker goroutine and resets the coordinator so a
// later call to Sort starts a fresh one. The queue parameter passed to the
// now-exiting worker is captured locally at worker startup rather than read
// from c.queue on every iteration, so resetting c.queue here cannot race
// with the old worker's final Pop.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.queue != nil {
		c.queue.Close()
		c.queue = nil
	}
	c.once = sync.Once{}
}

// Sort partitions arr into blocks of blockSize, sorts alternate blocks on
// the worker goroutine while the caller sorts the rest inline, then merges
// the sorted runs back into arr. aux must be at least len(arr) and is used
// purely as merge scratch; its contents on return are unspecified.
func (c *Coordinator) Sort(arr, aux []int32, blockSize int) {
	if blockSize <= 0 {
		panic("parallel: blockSize must be positive")
	}
	n := len(arr)
	if len(aux) < n {
		panic("parallel: aux shorter than arr")
	}
	if n == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureWorker()

	numBlocks := (n + blockSize - 1) / blockSize

	blockBounds := func(b int) (lo, hi int) {
		lo = b * blockSize
		hi = lo + blockSize
		if hi > n {
			hi = n
		}
		return
	}

	var done atomic.Bool
	for b := 0; b < numBlocks; b += 2 {
		lo0, hi0 := blockBounds(b)
		dispatched := b+1 < numBlocks
		if dispatched {
			lo1, hi1 := blockBounds(b + 1)
			done.Store(false)
			c.queue.Push(workItem{block: arr[lo1:hi1], done: &done})
		}

		introsort.Sort(arr[lo0:hi0])

		if dispatched {
			for !done.Load() {
				runtime.Gosched()
			}
		}
	}

	cascade(arr, aux, n, blockSize)
}

// cascade repeatedly merges adjacent sorted runs until the whole array is
// one run. Each round merges every full group of four runs with a four-way
// merge and handles a trailing partial group with two-way merges or a
// straight copy; runLen then doubles, so the number of rounds is the same
// as for pairwise merging alone.
//
// Every merge here uses the bounds-checked TwoBounded/FourBounded variants,
// not the sentinel-tailed Two/Four: adjacent runs in the same backing array
// share a boundary element (a run's one-past-the-end slot IS the next
// run's first element), so writing a sentinel there would destroy data the
// merge still needs to read.
func cascade(arr, aux []int32, n, runLen int) {
	src, dst := arr, aux

	for runLen < n {
		i := 0
		for i < n {
			groupEnd := i + 4*runLen
			if groupEnd <= n {
				a := src[i : i+runLen]
				b := src[i+runLen : i+2*runLen]
				cc := src[i+2*runLen : i+3*runLen]
				d := src[i+3*runLen : i+4*runLen]
				merge.FourBounded(a, b, cc, d, dst[i:groupEnd])
				i = groupEnd
				continue
			}

			loA, hiA := i, min(i+runLen, n)
			loB, hiB := hiA, min(i+2*runLen, n)
			if loB >= n {
				copy(dst[loA:hiA], src[loA:hiA])
				i = hiA
				continue
			}
			merge.TwoBounded(src[loA:hiA], src[loB:hiB], dst[loA:hiB])
			i = hiB
		}

		src, dst = dst, src
		runLen *= 2
	}

	if &src[0] != &arr[0] {
		copy(arr, src[:n])
	}
}
