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

// Native is a vector sized to the host's natural SIMD register: its lane
// count is NativeWidth() / sizeof(T), so it differs between machines.
// Use FromNative and ToNative to move between Native and the fixed-width
// Vec types; they fail instead of truncating or padding.
//
// Native instances should not be created directly; use LoadNative.
type Native[T Lanes] struct {
	data []T
}

// NativeLanes returns the lane count of Native[T] on this host.
func NativeLanes[T Lanes]() int {
	var ops ScalarOps[T]
	return NativeWidth() * 8 / ops.BitSize()
}

// LoadNative loads NativeLanes[T]() elements from src. Missing elements
// are zero.
func LoadNative[T Lanes](src []T) Native[T] {
	data := make([]T, NativeLanes[T]())
	copy(data, src)
	return Native[T]{data: data}
}

// NumLanes returns the number of lanes in this vector.
func (n Native[T]) NumLanes() int {
	return len(n.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing.
func (n Native[T]) Data() []T {
	return n.data
}

// Store writes the vector's data to a slice, stopping at len(dst).
func (n Native[T]) Store(dst []T) {
	copy(dst, n.data)
}

// FromNative reinterprets n as a fixed-width vector. It returns a
// *ConfigError if n does not have exactly LaneCount[S, T]() lanes.
func FromNative[S Storage, T Lanes](n Native[T]) (Vec[T, S], error) {
	var r Vec[T, S]
	out := r.lanes()
	if len(n.data) != len(out) {
		return r, &ConfigError{Expected: len(out), Actual: len(n.data)}
	}
	copy(out, n.data)
	return r, nil
}

// ToNative reinterprets v as a Native vector. It returns a *ConfigError
// if the host's native lane count differs from v's.
func ToNative[T Lanes, S Storage](v Vec[T, S]) (Native[T], error) {
	in := v.lanes()
	if nl := NativeLanes[T](); nl != len(in) {
		return Native[T]{}, &ConfigError{Expected: len(in), Actual: nl}
	}
	return Native[T]{data: v.Lanes()}, nil
}
