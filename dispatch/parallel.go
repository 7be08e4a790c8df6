// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dispatch

import (
	"runtime"
	"sync"
)

// minGrainSize is the smallest chunk worth handing to its own goroutine;
// below this, ParallelFor just runs serially to avoid goroutine overhead
// swamping a handful of elements.
const minGrainSize = 256

// ParallelFor launches body(i) for every i in [0,n), chunked across
// GOMAXPROCS workers the way a kernel launch spreads an element-count
// grid across threads. All operations inside body must use the
// dispatch atomic helpers when writing to shared accumulators, since
// goroutines run concurrently and reduction order is unspecified.
func ParallelFor(n int, body func(i int)) {
	if n <= 0 {
		return
	}
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > n {
		numWorkers = n
	}
	if numWorkers <= 1 || n < minGrainSize {
		for i := 0; i < n; i++ {
			body(i)
		}
		return
	}

	chunkSize := (n + numWorkers - 1) / numWorkers
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			wg.Done()
			continue
		}
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				body(i)
			}
		}(start, end)
	}
	wg.Wait()
}
