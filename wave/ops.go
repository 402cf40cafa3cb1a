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

// This file provides the element-wise arithmetic, bitwise and comparison
// operations. Each one applies the matching ScalarOps primitive to every
// lane independently, except the bitwise family which works on the raw
// 64-bit words regardless of T.

func unary[T Lanes, S Storage](v Vec[T, S], fn func(T) T) Vec[T, S] {
	var r Vec[T, S]
	in, out := v.lanes(), r.lanes()
	for i := range out {
		out[i] = fn(in[i])
	}
	return r
}

func binaryOp[T Lanes, S Storage](a, b Vec[T, S], fn func(T, T) T) Vec[T, S] {
	var r Vec[T, S]
	x, y, out := a.lanes(), b.lanes(), r.lanes()
	for i := range out {
		out[i] = fn(x[i], y[i])
	}
	return r
}

func bitwise[T Lanes, S Storage](a, b Vec[T, S], fn func(x, y uint64) uint64) Vec[T, S] {
	var r Vec[T, S]
	x, y, out := a.words(), b.words(), r.words()
	for i := range out {
		out[i] = fn(x[i], y[i])
	}
	return r
}

// mask builds a mask vector: AllBitsSet where pred holds, zero elsewhere.
func mask[T Lanes, S Storage](a, b Vec[T, S], pred func(T, T) bool) Vec[T, S] {
	var ops ScalarOps[T]
	var r Vec[T, S]
	x, y, out := a.lanes(), b.lanes(), r.lanes()
	for i := range out {
		if pred(x[i], y[i]) {
			out[i] = ops.AllBitsSet()
		}
	}
	return r
}

func allLanes[T Lanes, S Storage](a, b Vec[T, S], pred func(T, T) bool) bool {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		if !pred(x[i], y[i]) {
			return false
		}
	}
	return true
}

func anyLane[T Lanes, S Storage](a, b Vec[T, S], pred func(T, T) bool) bool {
	x, y := a.lanes(), b.lanes()
	for i := range x {
		if pred(x[i], y[i]) {
			return true
		}
	}
	return false
}

// Add performs element-wise addition.
func Add[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return binaryOp(a, b, ScalarOps[T]{}.Add)
}

// Subtract performs element-wise subtraction.
func Subtract[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return binaryOp(a, b, ScalarOps[T]{}.Subtract)
}

// Multiply performs element-wise multiplication.
func Multiply[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return binaryOp(a, b, ScalarOps[T]{}.Multiply)
}

// MultiplyScalar multiplies every lane of v by s.
func MultiplyScalar[T Lanes, S Storage](v Vec[T, S], s T) Vec[T, S] {
	return Multiply(v, Broadcast[S](s))
}

// Divide performs element-wise division.
// Integer lanes divided by zero panic with the runtime divide error.
func Divide[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return binaryOp(a, b, ScalarOps[T]{}.Divide)
}

// DivideScalar divides every lane of v by s.
func DivideScalar[T Lanes, S Storage](v Vec[T, S], s T) Vec[T, S] {
	return Divide(v, Broadcast[S](s))
}

// Min returns the element-wise minimum.
func Min[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return binaryOp(a, b, ScalarOps[T]{}.Min)
}

// Max returns the element-wise maximum.
func Max[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return binaryOp(a, b, ScalarOps[T]{}.Max)
}

// Negate negates all lanes.
func Negate[T Lanes, S Storage](v Vec[T, S]) Vec[T, S] {
	return unary(v, ScalarOps[T]{}.Negate)
}

// Abs computes the absolute value of all lanes.
// Unsigned vectors are returned unchanged.
func Abs[T Lanes, S Storage](v Vec[T, S]) Vec[T, S] {
	var ops ScalarOps[T]
	if ops.IsUnsigned() {
		return v
	}
	return unary(v, ops.Abs)
}

// Sqrt computes the square root of all lanes.
func Sqrt[T Lanes, S Storage](v Vec[T, S]) Vec[T, S] {
	return unary(v, ScalarOps[T]{}.Sqrt)
}

// Floor rounds all lanes toward negative infinity.
func Floor[T Lanes, S Storage](v Vec[T, S]) Vec[T, S] {
	return unary(v, ScalarOps[T]{}.Floor)
}

// Ceiling rounds all lanes toward positive infinity.
func Ceiling[T Lanes, S Storage](v Vec[T, S]) Vec[T, S] {
	return unary(v, ScalarOps[T]{}.Ceiling)
}

// BitwiseAnd computes a & b.
func BitwiseAnd[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x & y })
}

// BitwiseOr computes a | b.
func BitwiseOr[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x | y })
}

// Xor computes a ^ b.
func Xor[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x ^ y })
}

// AndNot computes a & ^b.
func AndNot[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return bitwise(a, b, func(x, y uint64) uint64 { return x &^ y })
}

// OnesComplement flips every bit of v.
func OnesComplement[T Lanes, S Storage](v Vec[T, S]) Vec[T, S] {
	return bitwise(v, v, func(x, _ uint64) uint64 { return ^x })
}

// ConditionalSelect picks each bit from left where the matching bit of
// condition is set and from right elsewhere. With a mask vector as the
// condition this selects whole lanes.
func ConditionalSelect[T Lanes, S Storage](condition, left, right Vec[T, S]) Vec[T, S] {
	var r Vec[T, S]
	c, x, y, out := condition.words(), left.words(), right.words(), r.words()
	for i := range out {
		out[i] = (x[i] & c[i]) | (y[i] &^ c[i])
	}
	return r
}

// Equals returns a mask vector of a == b.
func Equals[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return mask(a, b, ScalarOps[T]{}.Equals)
}

// GreaterThan returns a mask vector of a > b.
func GreaterThan[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return mask(a, b, ScalarOps[T]{}.GreaterThan)
}

// GreaterThanOrEqual returns a mask vector of a >= b.
func GreaterThanOrEqual[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return mask(a, b, ScalarOps[T]{}.GreaterThanOrEqual)
}

// LessThan returns a mask vector of a < b.
func LessThan[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return mask(a, b, ScalarOps[T]{}.LessThan)
}

// LessThanOrEqual returns a mask vector of a <= b.
func LessThanOrEqual[T Lanes, S Storage](a, b Vec[T, S]) Vec[T, S] {
	return mask(a, b, ScalarOps[T]{}.LessThanOrEqual)
}

// EqualsAll reports whether a[i] == b[i] for every lane i.
func EqualsAll[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return allLanes(a, b, ScalarOps[T]{}.Equals)
}

// EqualsAny reports whether a[i] == b[i] for some lane i.
func EqualsAny[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return anyLane(a, b, ScalarOps[T]{}.Equals)
}

// GreaterThanAll reports whether a[i] > b[i] for every lane i.
func GreaterThanAll[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return allLanes(a, b, ScalarOps[T]{}.GreaterThan)
}

// GreaterThanAny reports whether a[i] > b[i] for some lane i.
func GreaterThanAny[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return anyLane(a, b, ScalarOps[T]{}.GreaterThan)
}

// GreaterThanOrEqualAll reports whether a[i] >= b[i] for every lane i.
func GreaterThanOrEqualAll[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return allLanes(a, b, ScalarOps[T]{}.GreaterThanOrEqual)
}

// GreaterThanOrEqualAny reports whether a[i] >= b[i] for some lane i.
func GreaterThanOrEqualAny[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return anyLane(a, b, ScalarOps[T]{}.GreaterThanOrEqual)
}

// LessThanAll reports whether a[i] < b[i] for every lane i.
func LessThanAll[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return allLanes(a, b, ScalarOps[T]{}.LessThan)
}

// LessThanAny reports whether a[i] < b[i] for some lane i.
func LessThanAny[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return anyLane(a, b, ScalarOps[T]{}.LessThan)
}

// LessThanOrEqualAll reports whether a[i] <= b[i] for every lane i.
func LessThanOrEqualAll[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return allLanes(a, b, ScalarOps[T]{}.LessThanOrEqual)
}

// LessThanOrEqualAny reports whether a[i] <= b[i] for some lane i.
func LessThanOrEqualAny[T Lanes, S Storage](a, b Vec[T, S]) bool {
	return anyLane(a, b, ScalarOps[T]{}.LessThanOrEqual)
}

// ShiftLeft shifts every lane left by count. The count is taken modulo
// the lane width, as the hardware instructions do.
func ShiftLeft[T Integers, S Storage](v Vec[T, S], count uint) Vec[T, S] {
	var ops ScalarOps[T]
	return unary(v, func(x T) T { return ops.ShiftLeft(x, count) })
}

// ShiftRightArithmetic shifts every lane right by count, replicating the
// sign bit. Unsigned lanes are shifted logically.
func ShiftRightArithmetic[T Integers, S Storage](v Vec[T, S], count uint) Vec[T, S] {
	var ops ScalarOps[T]
	return unary(v, func(x T) T { return ops.ShiftRightArithmetic(x, count) })
}

// ShiftRightLogical shifts every lane right by count, filling with zeros.
func ShiftRightLogical[T Integers, S Storage](v Vec[T, S], count uint) Vec[T, S] {
	var ops ScalarOps[T]
	return unary(v, func(x T) T { return ops.ShiftRightLogical(x, count) })
}

// Sum adds all lanes in ascending lane order, starting from zero. The
// order is fixed so float results are reproducible.
func Sum[T Lanes, S Storage](v Vec[T, S]) T {
	var ops ScalarOps[T]
	sum := ops.Zero()
	for _, x := range v.lanes() {
		sum = ops.Add(sum, x)
	}
	return sum
}

// Dot returns the sum of the lane-wise products of a and b, accumulated
// in ascending lane order.
func Dot[T Lanes, S Storage](a, b Vec[T, S]) T {
	var ops ScalarOps[T]
	sum := ops.Zero()
	x, y := a.lanes(), b.lanes()
	for i := range x {
		sum = ops.Add(sum, ops.Multiply(x[i], y[i]))
	}
	return sum
}
