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

import "fmt"

// This file provides lane type conversions.
//
// Narrow* combine two vectors into one with lanes of half the width:
// lower fills the first half of the result, upper the second half. Integer
// narrowing truncates (wraps) and float64 rounds to float32.
//
// Widen* split one vector into two with lanes of double the width, sign-
// or zero-extending integers and widening floats exactly.
//
// Note: Go generics don't support type relationships like "U is twice
// as wide as T", so the exported functions name each pair explicitly.

func narrow[From, To Lanes, S Storage](lower, upper Vec[From, S]) Vec[To, S] {
	var r Vec[To, S]
	lo, hi, out := lower.lanes(), upper.lanes(), r.lanes()
	for i := range lo {
		out[i] = To(lo[i])
		out[len(lo)+i] = To(hi[i])
	}
	return r
}

func widenHalf[From, To Lanes, S Storage](v Vec[From, S], half int) Vec[To, S] {
	var r Vec[To, S]
	in, out := v.lanes(), r.lanes()
	base := half * len(out)
	for i := range out {
		out[i] = To(in[base+i])
	}
	return r
}

// WidenLower widens the first half of the lanes of v to the type To.
// To must be exactly twice as wide as From.
func WidenLower[To, From Lanes, S Storage](v Vec[From, S]) Vec[To, S] {
	mustDoubleWidth[From, To]()
	return widenHalf[From, To](v, 0)
}

// WidenUpper widens the second half of the lanes of v to the type To.
// To must be exactly twice as wide as From.
func WidenUpper[To, From Lanes, S Storage](v Vec[From, S]) Vec[To, S] {
	mustDoubleWidth[From, To]()
	return widenHalf[From, To](v, 1)
}

func mustDoubleWidth[From, To Lanes]() {
	var from ScalarOps[From]
	var to ScalarOps[To]
	if to.BitSize() != 2*from.BitSize() {
		panic(fmt.Errorf("%w: widening %d-bit lanes to %d-bit lanes",
			ErrUnsupportedConfiguration, from.BitSize(), to.BitSize()))
	}
}

// NarrowFloat64 rounds two float64 vectors into one float32 vector.
func NarrowFloat64[S Storage](lower, upper Vec[float64, S]) Vec[float32, S] {
	return narrow[float64, float32](lower, upper)
}

// NarrowInt64 truncates two int64 vectors into one int32 vector.
func NarrowInt64[S Storage](lower, upper Vec[int64, S]) Vec[int32, S] {
	return narrow[int64, int32](lower, upper)
}

// NarrowUint64 truncates two uint64 vectors into one uint32 vector.
func NarrowUint64[S Storage](lower, upper Vec[uint64, S]) Vec[uint32, S] {
	return narrow[uint64, uint32](lower, upper)
}

// NarrowInt32 truncates two int32 vectors into one int16 vector.
func NarrowInt32[S Storage](lower, upper Vec[int32, S]) Vec[int16, S] {
	return narrow[int32, int16](lower, upper)
}

// NarrowUint32 truncates two uint32 vectors into one uint16 vector.
func NarrowUint32[S Storage](lower, upper Vec[uint32, S]) Vec[uint16, S] {
	return narrow[uint32, uint16](lower, upper)
}

// NarrowInt16 truncates two int16 vectors into one int8 vector.
func NarrowInt16[S Storage](lower, upper Vec[int16, S]) Vec[int8, S] {
	return narrow[int16, int8](lower, upper)
}

// NarrowUint16 truncates two uint16 vectors into one uint8 vector.
func NarrowUint16[S Storage](lower, upper Vec[uint16, S]) Vec[uint8, S] {
	return narrow[uint16, uint8](lower, upper)
}

// WidenFloat32 widens a float32 vector into two float64 vectors.
func WidenFloat32[S Storage](v Vec[float32, S]) (lower, upper Vec[float64, S]) {
	return widenHalf[float32, float64](v, 0), widenHalf[float32, float64](v, 1)
}

// WidenInt32 sign-extends an int32 vector into two int64 vectors.
func WidenInt32[S Storage](v Vec[int32, S]) (lower, upper Vec[int64, S]) {
	return widenHalf[int32, int64](v, 0), widenHalf[int32, int64](v, 1)
}

// WidenUint32 zero-extends a uint32 vector into two uint64 vectors.
func WidenUint32[S Storage](v Vec[uint32, S]) (lower, upper Vec[uint64, S]) {
	return widenHalf[uint32, uint64](v, 0), widenHalf[uint32, uint64](v, 1)
}

// WidenInt16 sign-extends an int16 vector into two int32 vectors.
func WidenInt16[S Storage](v Vec[int16, S]) (lower, upper Vec[int32, S]) {
	return widenHalf[int16, int32](v, 0), widenHalf[int16, int32](v, 1)
}

// WidenUint16 zero-extends a uint16 vector into two uint32 vectors.
func WidenUint16[S Storage](v Vec[uint16, S]) (lower, upper Vec[uint32, S]) {
	return widenHalf[uint16, uint32](v, 0), widenHalf[uint16, uint32](v, 1)
}

// WidenInt8 sign-extends an int8 vector into two int16 vectors.
func WidenInt8[S Storage](v Vec[int8, S]) (lower, upper Vec[int16, S]) {
	return widenHalf[int8, int16](v, 0), widenHalf[int8, int16](v, 1)
}

// WidenUint8 zero-extends a uint8 vector into two uint16 vectors.
func WidenUint8[S Storage](v Vec[uint8, S]) (lower, upper Vec[uint16, S]) {
	return widenHalf[uint8, uint16](v, 0), widenHalf[uint8, uint16](v, 1)
}

func floatsToInts[F Floats, I Integers, S Storage](v Vec[F, S]) Vec[I, S] {
	var r Vec[I, S]
	in, out := v.lanes(), r.lanes()
	for i := range out {
		out[i] = floatToInt[I](float64(in[i]))
	}
	return r
}

func convertLanes[From, To Lanes, S Storage](v Vec[From, S]) Vec[To, S] {
	var r Vec[To, S]
	in, out := v.lanes(), r.lanes()
	for i := range out {
		out[i] = To(in[i])
	}
	return r
}

// ConvertToInt32 converts float32 lanes to int32, truncating toward zero.
// Out-of-range lanes saturate and NaN becomes 0.
func ConvertToInt32[S Storage](v Vec[float32, S]) Vec[int32, S] {
	return floatsToInts[float32, int32](v)
}

// ConvertToUInt32 converts float32 lanes to uint32, truncating toward zero.
// Out-of-range lanes saturate and NaN becomes 0.
func ConvertToUInt32[S Storage](v Vec[float32, S]) Vec[uint32, S] {
	return floatsToInts[float32, uint32](v)
}

// ConvertToInt64 converts float64 lanes to int64, truncating toward zero.
// Out-of-range lanes saturate and NaN becomes 0.
func ConvertToInt64[S Storage](v Vec[float64, S]) Vec[int64, S] {
	return floatsToInts[float64, int64](v)
}

// ConvertToUInt64 converts float64 lanes to uint64, truncating toward zero.
// Out-of-range lanes saturate and NaN becomes 0.
func ConvertToUInt64[S Storage](v Vec[float64, S]) Vec[uint64, S] {
	return floatsToInts[float64, uint64](v)
}

// ConvertToSingle converts 32-bit integer lanes to float32, rounding to
// nearest.
func ConvertToSingle[T ~int32 | ~uint32, S Storage](v Vec[T, S]) Vec[float32, S] {
	return convertLanes[T, float32](v)
}

// ConvertToDouble converts 64-bit integer lanes to float64, rounding to
// nearest.
func ConvertToDouble[T ~int64 | ~uint64, S Storage](v Vec[T, S]) Vec[float64, S] {
	return convertLanes[T, float64](v)
}

// As reinterprets the bits of v as lanes of type To. No value conversion
// takes place:
//
//	bits := wave.As[uint32](wave.Broadcast[wave.W128](float32(1))) // 0x3f800000 lanes
func As[To, From Lanes, S Storage](v Vec[From, S]) Vec[To, S] {
	return Vec[To, S]{raw: v.raw}
}
