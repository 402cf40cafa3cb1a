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

// Package wave provides fixed-width 128-bit and 256-bit SIMD vectors
// emulated in portable Go.
//
// A vector is an opaque block of exactly 16 or 32 bytes interpreted as
// N lanes of a scalar type T. Every operation behaves the way the matching
// hardware instruction does (mask vectors from comparisons, wrapping
// integer arithmetic, IEEE-754 floats, masked shuffle indices) but is
// evaluated lane by lane, so code written against this package produces
// identical results on every platform.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-wave/wave"
//
//	a := wave.Load[wave.W256](data1) // 8 float32 lanes
//	b := wave.Load[wave.W256](data2)
//	sum := wave.Add(a, b)
//	wave.Store(sum, output)
//
// Vectors are values: operations never mutate their inputs and two
// vectors never share storage.
package wave

//go:generate go run ../cmd/wavegen -output create_gen.go

import (
	"strconv"
	"strings"
	"unsafe"
)

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// W128 is the storage of a 128-bit vector.
type W128 = [2]uint64

// W256 is the storage of a 256-bit vector.
type W256 = [4]uint64

// Storage selects the width of a vector. The backing words keep every
// lane type naturally aligned.
type Storage interface {
	W128 | W256
}

// Vec is a fixed-width vector of LaneCount lanes of type T held in the
// storage S. The zero value is the all-zero vector.
//
// Lane 0 occupies the lowest-addressed bytes; lane index grows with address.
type Vec[T Lanes, S Storage] struct {
	raw S
}

// Vec128 is a 128-bit vector of T.
type Vec128[T Lanes] = Vec[T, W128]

// Vec256 is a 256-bit vector of T.
type Vec256[T Lanes] = Vec[T, W256]

// LaneCount returns the number of T lanes that fit in the storage S.
//
// For example:
//   - Vec128[int8]: 16 lanes
//   - Vec256[int32]: 8 lanes
//   - Vec256[float64]: 4 lanes
func LaneCount[S Storage, T Lanes]() int {
	var s S
	var t T
	return int(unsafe.Sizeof(s) / unsafe.Sizeof(t))
}

// Width returns the vector width in bytes (16 or 32).
func Width[S Storage]() int {
	var s S
	return int(unsafe.Sizeof(s))
}

// LaneCount returns the number of lanes in v.
func (v Vec[T, S]) LaneCount() int {
	return LaneCount[S, T]()
}

// Lanes returns a copy of the lane values in lane order.
func (v Vec[T, S]) Lanes() []T {
	out := make([]T, v.LaneCount())
	copy(out, v.lanes())
	return out
}

// Equal reports whether every lane of v equals the matching lane of w.
// Unlike the Equals mask operation, NaN lanes compare equal to NaN lanes.
func (v Vec[T, S]) Equal(w Vec[T, S]) bool {
	var ops ScalarOps[T]
	x, y := v.lanes(), w.lanes()
	for i := range x {
		if !ops.ObjectEquals(x[i], y[i]) {
			return false
		}
	}
	return true
}

// String formats the vector as <l0, l1, ...>.
func (v Vec[T, S]) String() string {
	var ops ScalarOps[T]
	var sb strings.Builder
	sb.WriteByte('<')
	for i, x := range v.lanes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch {
		case ops.IsFloat():
			sb.WriteString(strconv.FormatFloat(float64(x), 'g', -1, ops.BitSize()))
		case ops.IsUnsigned():
			sb.WriteString(strconv.FormatUint(uint64(x), 10))
		default:
			sb.WriteString(strconv.FormatInt(int64(x), 10))
		}
	}
	sb.WriteByte('>')
	return sb.String()
}

// lanes views the storage as a []T. The slice aliases v.
func (v *Vec[T, S]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw)), LaneCount[S, T]())
}

// words views the storage as 64-bit words, ignoring T.
func (v *Vec[T, S]) words() []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(&v.raw)), Width[S]()/8)
}

// bytes views the storage as raw bytes in memory order.
func (v *Vec[T, S]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v.raw)), Width[S]())
}

// Zero returns the vector with every bit cleared.
func Zero[S Storage, T Lanes]() Vec[T, S] {
	return Vec[T, S]{}
}

// AllBitsSet returns the vector with every bit set. Each lane holds
// ScalarOps[T].AllBitsSet(), the "true" value of a mask vector.
func AllBitsSet[S Storage, T Lanes]() Vec[T, S] {
	var r Vec[T, S]
	w := r.words()
	for i := range w {
		w[i] = ^uint64(0)
	}
	return r
}

// Indices returns a vector whose lanes are 0, 1, 2, ... N-1.
func Indices[S Storage, T Lanes]() Vec[T, S] {
	var r Vec[T, S]
	out := r.lanes()
	for i := range out {
		out[i] = T(i)
	}
	return r
}
