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

// Package algo provides slice algorithms built on 256-bit vectors.
//
// Every function walks its input in Vec256 steps and finishes a partial
// last vector with LoadPartial/StorePartial, so any length is accepted.
// Reductions accumulate lane-wise and fold the lanes in ascending order at
// the end; for a given input and lane type the result is the same on
// every machine.
//
// # Transform API
//
//   - Transform(input, output, fn): output = fn(input), one vector at a time
//   - Transform2(a, b, output, fn): output = fn(a, b)
//   - ParallelTransform(pool, input, output, fn): Transform split across a
//     worker pool at lane-aligned boundaries
//
// # Reductions
//
//   - Sum(data), Dot(a, b), MinMax(data)
//   - ParallelSum(pool, data): per-block sums combined in block order
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-wave/wave"
//	    "github.com/ajroetker/go-wave/wave/contrib/algo"
//	)
//
//	func SquarePlusX(input []float32) []float32 {
//	    output := make([]float32, len(input))
//	    algo.Transform(input, output, func(x wave.Vec256[float32]) wave.Vec256[float32] {
//	        return wave.Add(wave.Multiply(x, x), x)
//	    })
//	    return output
//	}
package algo
