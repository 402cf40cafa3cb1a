// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAligned(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	for _, n := range []int{1, 7, 8, 9, 63, 64, 65, 1000} {
		var mu sync.Mutex
		var covered int
		var bad [][2]int
		pool.ParallelForAligned(n, 8, func(start, end int) {
			mu.Lock()
			defer mu.Unlock()
			covered += end - start
			if start%8 != 0 || (end != n && end%8 != 0) {
				bad = append(bad, [2]int{start, end})
			}
		})
		if covered != n {
			t.Errorf("n=%d: covered %d indices", n, covered)
		}
		if len(bad) > 0 {
			t.Errorf("n=%d: unaligned ranges %v", n, bad)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAtomic(n, func(i int) {
		results[i] = i * 2
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32
	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	pool.ParallelForAtomic(0, func(int) {
		called = true
	})

	if called {
		t.Error("n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelForAligned(n, 4, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomic(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	for b.Loop() {
		pool.ParallelForAtomic(1000, func(i int) {
			_ = i * i
		})
	}
}
