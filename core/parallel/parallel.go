// Package parallel fans row-wise work out across CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultThreshold is the row count at or below which ParallelizeWithThreshold
// runs sequentially. Goroutine fan-out does not pay off for small matrices.
const DefaultThreshold = 1000

// Parallelize splits [0, items) into contiguous chunks, one per CPU core, and
// calls fn on each chunk concurrently. fn must only write to rows in its chunk.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold parallelizes only when items exceeds threshold,
// otherwise fn(0, items) runs on the calling goroutine.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}

// Rows is ParallelizeWithThreshold with DefaultThreshold, calling fn once per row.
func Rows(n int, fn func(i int)) {
	ParallelizeWithThreshold(n, DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
