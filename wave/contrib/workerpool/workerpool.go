// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package workerpool runs slice kernels across a fixed set of goroutines.
//
// Chunks handed to workers can be aligned to a vector lane count, so a
// parallel kernel splits its input at the same boundaries the sequential
// kernel processes full vectors and produces identical results:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.ParallelForAligned(len(data), wave.LaneCount[wave.W256, float32](),
//	    func(start, end int) {
//	        kernel(data[start:end], out[start:end])
//	    })
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-wave/wave"
)

// Pool is a persistent worker pool. Workers are spawned once by New and
// reused by every Parallel* call until Close.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New creates a pool of numWorkers goroutines. If numWorkers <= 0 it
// uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	wave.Logger().Debug("wave/workerpool: started", "workers", numWorkers)
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work completes. It is safe to
// call more than once; a closed pool runs work on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous ranges and
// calls fn(start, end) for each. It blocks until every call returns.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	p.ParallelForAligned(n, 1, fn)
}

// ParallelForAligned is ParallelFor with every range boundary except n
// itself rounded to a multiple of align. Only the last range can hold a
// partial vector.
func (p *Pool) ParallelForAligned(n, align int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if align <= 0 {
		align = 1
	}

	blocks := (n + align - 1) / align
	workers := min(p.numWorkers, blocks)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (blocks + workers - 1) / workers * align

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{fn: func() { fn(start, end) }, done: &wg}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), handing out indices
// through an atomic counter so uneven work balances across workers.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
