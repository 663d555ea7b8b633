// SPDX-License-Identifier: MIT

// Package matrix - data-parallel per-cell maps.
//
// Each worker owns a contiguous band of rows, so writes never overlap and no
// lock is taken. Below parallelMinCells the work runs on the caller goroutine.

package matrix

import (
	"fmt"
	"sync"
)

// ParallelApply replaces every element of m with f(i,j,v) using up to
// workers goroutines. f must be safe for concurrent use on distinct cells.
// The first NaN/Inf produced (under the numeric policy) is returned; other
// bands still complete.
//
// Complexity:
//   - Time O(r*c / workers), Space O(workers).
func ParallelApply(m *Dense, workers int, f func(i, j int, v float64) float64) error {
	if m == nil {
		return fmt.Errorf("ParallelApply: %w", ErrNilMatrix)
	}
	if workers < 1 {
		workers = DefaultWorkers
	}

	var (
		mu       sync.Mutex
		firstErr error
	)
	forRowBands(m.r, m.r*m.c, workers, func(from, to int) {
		if err := m.applyRows(from, to, f); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})

	return firstErr
}

// forRowBands splits [0, rows) into at most workers contiguous bands and runs
// fn on each. Sequential when workers == 1 or cells < parallelMinCells.
func forRowBands(rows, cells, workers int, fn func(from, to int)) {
	if workers <= 1 || cells < parallelMinCells || rows < 2 {
		fn(0, rows)
		return
	}
	if workers > rows {
		workers = rows
	}

	var wg sync.WaitGroup
	band := (rows + workers - 1) / workers
	var from, to int
	for from = 0; from < rows; from += band {
		to = from + band
		if to > rows {
			to = rows
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(from, to)
	}
	wg.Wait()
}
