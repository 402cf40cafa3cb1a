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

package algo

import (
	"github.com/ajroetker/go-wave/wave"
	"github.com/ajroetker/go-wave/wave/contrib/workerpool"
)

// sumBlock is the number of elements each ParallelSum task reduces.
const sumBlock = 4096

// Sum returns the sum of data. Integer sums wrap.
//
// Lane i of the accumulator collects elements i, i+N, i+2N, ... and the
// lanes are folded in ascending order, so float results depend only on
// data and T.
func Sum[T wave.Lanes](data []T) T {
	acc := wave.Zero[wave.W256, T]()
	wave.ProcessWithTail[wave.W256, T](len(data),
		func(offset int) {
			acc = wave.Add(acc, wave.Load[wave.W256](data[offset:]))
		},
		func(offset, count int) {
			acc = wave.Add(acc, wave.LoadPartial[wave.W256](data[offset:offset+count]))
		},
	)
	return wave.Sum(acc)
}

// Dot returns the dot product of a and b over the shorter of the two.
func Dot[T wave.Lanes](a, b []T) T {
	n := min(len(a), len(b))
	acc := wave.Zero[wave.W256, T]()
	wave.ProcessWithTail[wave.W256, T](n,
		func(offset int) {
			x := wave.Load[wave.W256](a[offset:])
			y := wave.Load[wave.W256](b[offset:])
			acc = wave.Add(acc, wave.Multiply(x, y))
		},
		func(offset, count int) {
			x := wave.LoadPartial[wave.W256](a[offset : offset+count])
			y := wave.LoadPartial[wave.W256](b[offset : offset+count])
			acc = wave.Add(acc, wave.Multiply(x, y))
		},
	)
	return wave.Sum(acc)
}

// MinMax returns the smallest and largest element of data. It returns
// ok == false for an empty slice. Float data must not contain NaN.
func MinMax[T wave.Lanes](data []T) (lo, hi T, ok bool) {
	if len(data) == 0 {
		return lo, hi, false
	}
	// Seed with the first element so partial vectors can be padded with it.
	lo, hi = data[0], data[0]
	vlo := wave.Broadcast[wave.W256](lo)
	vhi := vlo
	pad := make([]T, wave.LaneCount[wave.W256, T]())
	wave.ProcessWithTail[wave.W256, T](len(data),
		func(offset int) {
			v := wave.Load[wave.W256](data[offset:])
			vlo, vhi = wave.Min(vlo, v), wave.Max(vhi, v)
		},
		func(offset, count int) {
			for i := range pad {
				pad[i] = data[0]
			}
			copy(pad, data[offset:offset+count])
			v := wave.Load[wave.W256](pad)
			vlo, vhi = wave.Min(vlo, v), wave.Max(vhi, v)
		},
	)
	for _, x := range vlo.Lanes() {
		lo = min(lo, x)
	}
	for _, x := range vhi.Lanes() {
		hi = max(hi, x)
	}
	return lo, hi, true
}

// ParallelSum is Sum with fixed-size blocks reduced on pool. The block
// sums are combined in block order, so the result does not depend on the
// number of workers.
func ParallelSum[T wave.Lanes](pool *workerpool.Pool, data []T) T {
	blocks := (len(data) + sumBlock - 1) / sumBlock
	partial := make([]T, blocks)
	pool.ParallelForAtomic(blocks, func(i int) {
		start := i * sumBlock
		partial[i] = Sum(data[start:min(start+sumBlock, len(data))])
	})
	var total T
	for _, s := range partial {
		total += s
	}
	return total
}
