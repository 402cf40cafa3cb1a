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

// VecFunc is an element-wise operation on one vector.
type VecFunc[T wave.Lanes] func(wave.Vec256[T]) wave.Vec256[T]

// VecFunc2 is an element-wise operation on two vectors.
type VecFunc2[T wave.Lanes] func(a, b wave.Vec256[T]) wave.Vec256[T]

// Transform applies fn to input and writes the result to output. Only
// min(len(input), len(output)) elements are processed. Lanes past the end
// of a partial last vector are zero when fn sees them and are discarded.
//
// Example usage:
//
//	Transform(input, output, func(x wave.Vec256[float32]) wave.Vec256[float32] {
//	    return wave.Add(wave.Multiply(x, x), x)
//	})
func Transform[T wave.Lanes](input, output []T, fn VecFunc[T]) {
	n := min(len(input), len(output))
	input, output = input[:n], output[:n]
	wave.ProcessWithTail[wave.W256, T](n,
		func(offset int) {
			wave.Store(fn(wave.Load[wave.W256](input[offset:])), output[offset:])
		},
		func(offset, count int) {
			v := wave.LoadPartial[wave.W256](input[offset : offset+count])
			wave.StorePartial(fn(v), output[offset:offset+count])
		},
	)
}

// Transform2 applies fn to matching vectors of a and b and writes the
// result to output. Only the shortest length is processed.
func Transform2[T wave.Lanes](a, b, output []T, fn VecFunc2[T]) {
	n := min(len(a), len(b), len(output))
	wave.ProcessWithTail[wave.W256, T](n,
		func(offset int) {
			x := wave.Load[wave.W256](a[offset:])
			y := wave.Load[wave.W256](b[offset:])
			wave.Store(fn(x, y), output[offset:])
		},
		func(offset, count int) {
			x := wave.LoadPartial[wave.W256](a[offset : offset+count])
			y := wave.LoadPartial[wave.W256](b[offset : offset+count])
			wave.StorePartial(fn(x, y), output[offset:offset+count])
		},
	)
}

// ParallelTransform is Transform with the work split across pool. Chunk
// boundaries fall on vector boundaries, so the result is identical to
// Transform's.
func ParallelTransform[T wave.Lanes](pool *workerpool.Pool, input, output []T, fn VecFunc[T]) {
	n := min(len(input), len(output))
	pool.ParallelForAligned(n, wave.LaneCount[wave.W256, T](), func(start, end int) {
		Transform(input[start:end], output[start:end], fn)
	})
}
