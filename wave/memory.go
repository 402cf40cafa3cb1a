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

import "unsafe"

// This file provides vector construction and the load/store family.
// Loads and stores always move exactly Width bytes; a source or
// destination that is too short panics with the Go bounds error.
//
// The width is the first type parameter so the lane type can be inferred:
//
//	v := wave.Load[wave.W256](data) // data is []float32 -> Vec256[float32]

// Broadcast returns a vector with every lane set to value.
func Broadcast[S Storage, T Lanes](value T) Vec[T, S] {
	var r Vec[T, S]
	out := r.lanes()
	for i := range out {
		out[i] = value
	}
	return r
}

// CreateScalar returns a vector with lane 0 set to value and every other
// lane zero.
func CreateScalar[S Storage, T Lanes](value T) Vec[T, S] {
	var r Vec[T, S]
	r.lanes()[0] = value
	return r
}

// CreateScalarUnsafe is CreateScalar. The upper lanes are zeroed even
// though callers must not depend on them.
func CreateScalarUnsafe[S Storage, T Lanes](value T) Vec[T, S] {
	return CreateScalar[S](value)
}

// Load reads LaneCount values from the start of src.
func Load[S Storage, T Lanes](src []T) Vec[T, S] {
	var r Vec[T, S]
	out := r.lanes()
	_ = src[len(out)-1]
	copy(out, src)
	return r
}

// LoadAligned is Load. Go slices are always aligned for their element type.
func LoadAligned[S Storage, T Lanes](src []T) Vec[T, S] {
	return Load[S](src)
}

// LoadAlignedNonTemporal is Load; the cache hint has no effect.
func LoadAlignedNonTemporal[S Storage, T Lanes](src []T) Vec[T, S] {
	return Load[S](src)
}

// LoadUnsafe reads LaneCount values starting elementOffset elements past
// src. The caller guarantees the memory is valid.
func LoadUnsafe[S Storage, T Lanes](src *T, elementOffset uintptr) Vec[T, S] {
	var r Vec[T, S]
	out := r.lanes()
	p := (*T)(unsafe.Add(unsafe.Pointer(src), elementOffset*unsafe.Sizeof(*src)))
	copy(out, unsafe.Slice(p, len(out)))
	return r
}

// LoadBytes reads Width bytes from src, which may have any alignment, and
// interprets them in host byte order.
func LoadBytes[S Storage, T Lanes](src []byte) Vec[T, S] {
	var r Vec[T, S]
	out := r.bytes()
	_ = src[len(out)-1]
	copy(out, src)
	return r
}

// Store writes the lanes of v to the start of dst.
func Store[T Lanes, S Storage](v Vec[T, S], dst []T) {
	in := v.lanes()
	_ = dst[len(in)-1]
	copy(dst, in)
}

// StoreAligned is Store.
func StoreAligned[T Lanes, S Storage](v Vec[T, S], dst []T) {
	Store(v, dst)
}

// StoreAlignedNonTemporal is Store; the cache hint has no effect.
func StoreAlignedNonTemporal[T Lanes, S Storage](v Vec[T, S], dst []T) {
	Store(v, dst)
}

// StoreUnsafe writes the lanes of v starting elementOffset elements past
// dst. The caller guarantees the memory is valid.
func StoreUnsafe[T Lanes, S Storage](v Vec[T, S], dst *T, elementOffset uintptr) {
	in := v.lanes()
	p := (*T)(unsafe.Add(unsafe.Pointer(dst), elementOffset*unsafe.Sizeof(*dst)))
	copy(unsafe.Slice(p, len(in)), in)
}

// StoreBytes writes the Width bytes of v to dst in host byte order.
func StoreBytes[T Lanes, S Storage](v Vec[T, S], dst []byte) {
	in := v.bytes()
	_ = dst[len(in)-1]
	copy(dst, in)
}
