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

// This file provides lane access, permutation and sub-vector operations.

// Shuffle returns a vector whose lane i is v[indices[i] & (LaneCount-1)].
// Index bits above the lane count are dropped rather than range-checked,
// so an index equal to LaneCount selects lane 0.
func Shuffle[T Lanes, S Storage](v, indices Vec[T, S]) Vec[T, S] {
	var ops ScalarOps[T]
	var r Vec[T, S]
	in, idx, out := v.lanes(), indices.lanes(), r.lanes()
	m := int32(len(in) - 1)
	for i := range out {
		out[i] = in[ops.ToInt32(idx[i])&m]
	}
	return r
}

// ShuffleNative is Shuffle.
func ShuffleNative[T Lanes, S Storage](v, indices Vec[T, S]) Vec[T, S] {
	return Shuffle(v, indices)
}

// GetElement returns lane index of v.
// It panics with a *LaneIndexError if index is not in [0, LaneCount).
func GetElement[T Lanes, S Storage](v Vec[T, S], index int) T {
	in := v.lanes()
	checkLane(index, len(in))
	return in[index]
}

// WithElement returns a copy of v with lane index replaced by value.
// It panics with a *LaneIndexError if index is not in [0, LaneCount).
func WithElement[T Lanes, S Storage](v Vec[T, S], index int, value T) Vec[T, S] {
	out := v.lanes()
	checkLane(index, len(out))
	out[index] = value
	return v
}

// ToScalar returns lane 0 of v.
func ToScalar[T Lanes, S Storage](v Vec[T, S]) T {
	return v.lanes()[0]
}

// ExtractMostSignificantBits packs the top bit of every lane into an
// integer: bit i of the result is the MSB of lane i.
func ExtractMostSignificantBits[T Lanes, S Storage](v Vec[T, S]) uint32 {
	var ops ScalarOps[T]
	var bits uint32
	for i, x := range v.lanes() {
		if ops.ExtractMostSignificantBit(x) {
			bits |= 1 << i
		}
	}
	return bits
}

// GetLower returns the low 128 bits of v.
func GetLower[T Lanes](v Vec256[T]) Vec128[T] {
	return Vec128[T]{raw: W128{v.raw[0], v.raw[1]}}
}

// GetUpper returns the high 128 bits of v.
func GetUpper[T Lanes](v Vec256[T]) Vec128[T] {
	return Vec128[T]{raw: W128{v.raw[2], v.raw[3]}}
}

// WithLower returns v with its low 128 bits replaced by lower.
func WithLower[T Lanes](v Vec256[T], lower Vec128[T]) Vec256[T] {
	v.raw[0], v.raw[1] = lower.raw[0], lower.raw[1]
	return v
}

// WithUpper returns v with its high 128 bits replaced by upper.
func WithUpper[T Lanes](v Vec256[T], upper Vec128[T]) Vec256[T] {
	v.raw[2], v.raw[3] = upper.raw[0], upper.raw[1]
	return v
}

// Combine joins two 128-bit vectors into one 256-bit vector, lower first.
func Combine[T Lanes](lower, upper Vec128[T]) Vec256[T] {
	return Vec256[T]{raw: W256{lower.raw[0], lower.raw[1], upper.raw[0], upper.raw[1]}}
}
