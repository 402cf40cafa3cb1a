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

package wave

// ProcessWithTail is a helper for walking a slice of size elements in
// vectors of S. It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of
//     the lane count
//
// Example:
//
//	wave.ProcessWithTail[wave.W256, float32](len(data),
//	    func(offset int) {
//	        v := wave.Load[wave.W256](data[offset:])
//	        wave.Store(wave.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail[S Storage, T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	n := LaneCount[S, T]()

	fullVectors := size / n
	for i := range fullVectors {
		fullFn(i * n)
	}

	remaining := size % n
	if remaining > 0 {
		tailFn(fullVectors*n, remaining)
	}
}

// LoadPartial loads the first len(src) lanes from src, which may be
// shorter than the lane count. The remaining lanes are zero.
func LoadPartial[S Storage, T Lanes](src []T) Vec[T, S] {
	var r Vec[T, S]
	copy(r.lanes(), src)
	return r
}

// StorePartial writes the first len(dst) lanes of v, which may be fewer
// than the lane count.
func StorePartial[T Lanes, S Storage](v Vec[T, S], dst []T) {
	copy(dst, v.lanes())
}

// AlignedSize rounds size up to the next multiple of the lane count.
// This is useful for allocating buffers that will be processed in vectors.
func AlignedSize[S Storage, T Lanes](size int) int {
	n := LaneCount[S, T]()
	return ((size + n - 1) / n) * n
}

// IsAligned returns true if size is a multiple of the lane count.
func IsAligned[S Storage, T Lanes](size int) bool {
	return size%LaneCount[S, T]() == 0
}
