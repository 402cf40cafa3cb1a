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

import (
	"math"
	"unsafe"
)

// ScalarOps provides the per-lane primitives that every vector operation
// is composed from. It is stateless; the zero value is ready to use.
//
//	var ops wave.ScalarOps[int16]
//	ops.ShiftLeft(1, 17) // == 2, the count is taken modulo 16
//
// Integer arithmetic wraps. Integer division by zero panics with the Go
// runtime error. Float arithmetic follows IEEE-754.
type ScalarOps[T Lanes] struct{}

// Add returns a + b.
func (ScalarOps[T]) Add(a, b T) T { return a + b }

// Subtract returns a - b.
func (ScalarOps[T]) Subtract(a, b T) T { return a - b }

// Multiply returns a * b.
func (ScalarOps[T]) Multiply(a, b T) T { return a * b }

// Divide returns a / b.
func (ScalarOps[T]) Divide(a, b T) T { return a / b }

// Negate returns -a. The minimum signed value wraps to itself and
// unsigned values wrap modulo 2^BitSize.
func (ScalarOps[T]) Negate(a T) T { return -a }

// Abs returns |a|. Unsigned values are returned unchanged and float values
// have their sign bit cleared, so Abs(-0.0) is +0.0.
func (o ScalarOps[T]) Abs(a T) T {
	switch {
	case o.IsUnsigned():
		return a
	case o.IsFloat():
		return fromBits[T](toBits(a) &^ o.signMask())
	case a < 0:
		return -a
	default:
		return a
	}
}

// Sqrt returns the square root of a. Integer lanes get the exact floor of
// the root; negative integers yield 0.
func (o ScalarOps[T]) Sqrt(a T) T {
	if o.IsFloat() {
		return T(math.Sqrt(float64(a)))
	}
	if a < 0 {
		return 0
	}
	return T(isqrt(uint64(a)))
}

// isqrt returns floor(sqrt(u)). The float64 estimate can be off by one
// near the top of the uint64 range, so it is corrected in integers.
func isqrt(u uint64) uint64 {
	r := min(uint64(math.Sqrt(float64(u))), math.MaxUint32)
	for r*r > u {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= u {
		r++
	}
	return r
}

// Min returns a if a < b, otherwise b. For floats the NaN result depends
// on operand order, as with x86 MINPS: Min(NaN, 1) is 1, Min(1, NaN) is NaN.
func (ScalarOps[T]) Min(a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns a if a > b, otherwise b. Like Min, a NaN in either operand
// yields b: Max(NaN, 1) is 1, Max(1, NaN) is NaN.
func (ScalarOps[T]) Max(a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Floor rounds toward negative infinity. It is the identity on integers.
func (o ScalarOps[T]) Floor(a T) T {
	if !o.IsFloat() {
		return a
	}
	return T(math.Floor(float64(a)))
}

// Ceiling rounds toward positive infinity. It is the identity on integers.
func (o ScalarOps[T]) Ceiling(a T) T {
	if !o.IsFloat() {
		return a
	}
	return T(math.Ceil(float64(a)))
}

// ShiftLeft shifts the bit pattern of a left by count modulo BitSize.
func (o ScalarOps[T]) ShiftLeft(a T, count uint) T {
	return fromBits[T](toBits(a) << o.shiftCount(count))
}

// ShiftRightLogical shifts the bit pattern of a right by count modulo
// BitSize, filling with zeros.
func (o ScalarOps[T]) ShiftRightLogical(a T, count uint) T {
	return fromBits[T](toBits(a) >> o.shiftCount(count))
}

// ShiftRightArithmetic shifts the bit pattern of a right by count modulo
// BitSize, replicating the top bit. For unsigned T it is ShiftRightLogical.
func (o ScalarOps[T]) ShiftRightArithmetic(a T, count uint) T {
	if o.IsUnsigned() {
		return o.ShiftRightLogical(a, count)
	}
	// Sign-extend to 64 bits, shift, and let fromBits truncate.
	ext := 64 - uint(o.BitSize())
	s := int64(toBits(a)<<ext) >> ext
	return fromBits[T](uint64(s >> o.shiftCount(count)))
}

// Equals reports a == b. NaN is not equal to itself.
func (ScalarOps[T]) Equals(a, b T) bool { return a == b }

// GreaterThan reports a > b.
func (ScalarOps[T]) GreaterThan(a, b T) bool { return a > b }

// GreaterThanOrEqual reports a >= b.
func (ScalarOps[T]) GreaterThanOrEqual(a, b T) bool { return a >= b }

// LessThan reports a < b.
func (ScalarOps[T]) LessThan(a, b T) bool { return a < b }

// LessThanOrEqual reports a <= b.
func (ScalarOps[T]) LessThanOrEqual(a, b T) bool { return a <= b }

// ObjectEquals reports value equality: like Equals, except that NaN
// equals NaN.
func (ScalarOps[T]) ObjectEquals(a, b T) bool {
	return a == b || (a != a && b != b)
}

// Zero returns the all-zero bit pattern of T.
func (ScalarOps[T]) Zero() T {
	var zero T
	return zero
}

// AllBitsSet returns T with every bit set: -1 for signed integers, the
// maximum for unsigned integers and a NaN for floats.
func (ScalarOps[T]) AllBitsSet() T {
	return fromBits[T](^uint64(0))
}

// IsUnsigned reports whether T is an unsigned integer type.
func (ScalarOps[T]) IsUnsigned() bool {
	var zero T
	// Only unsigned types wrap below zero.
	return zero-1 > zero
}

// IsFloat reports whether T is a floating-point type.
func (ScalarOps[T]) IsFloat() bool {
	one := T(1)
	return one/2 != 0
}

// BitSize returns the width of T in bits.
func (ScalarOps[T]) BitSize() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// ToInt32 converts a to int32. Integers are truncated to their low 32 bits;
// floats truncate toward zero and saturate, with NaN mapping to 0.
func (o ScalarOps[T]) ToInt32(a T) int32 {
	if o.IsFloat() {
		return floatToInt[int32](float64(a))
	}
	return int32(a)
}

// ExtractMostSignificantBit reports whether the top bit of a's bit pattern
// is set. That is the sign bit for signed integers and floats.
func (o ScalarOps[T]) ExtractMostSignificantBit(a T) bool {
	return toBits(a)&o.signMask() != 0
}

func (o ScalarOps[T]) signMask() uint64 {
	return 1 << (o.BitSize() - 1)
}

func (o ScalarOps[T]) shiftCount(count uint) uint {
	return count & uint(o.BitSize()-1)
}

// toBits returns the bit pattern of x zero-extended to 64 bits.
func toBits[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

// fromBits reinterprets the low bits of u as a T.
func fromBits[T Lanes](u uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return x
}

// floatToInt truncates f toward zero into the integer type I, saturating
// at I's bounds. NaN maps to 0.
func floatToInt[I Lanes](f float64) I {
	var ops ScalarOps[I]
	if f != f {
		return 0
	}
	bits := ops.BitSize()
	var lo, hi float64
	if ops.IsUnsigned() {
		lo, hi = 0, math.Ldexp(1, bits)
	} else {
		lo, hi = -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
	switch {
	case f <= lo:
		if ops.IsUnsigned() {
			return 0
		}
		return fromBits[I](ops.signMask())
	case f >= hi:
		if ops.IsUnsigned() {
			return ops.AllBitsSet()
		}
		return fromBits[I](ops.signMask() - 1)
	}
	return I(f)
}
