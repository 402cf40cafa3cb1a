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

import "math"

func classify[T Floats, S Storage](v Vec[T, S], pred func(float64) bool) Vec[T, S] {
	var ops ScalarOps[T]
	var r Vec[T, S]
	in, out := v.lanes(), r.lanes()
	for i := range out {
		if pred(float64(in[i])) {
			out[i] = ops.AllBitsSet()
		}
	}
	return r
}

// IsNaN returns a mask of the NaN lanes.
func IsNaN[T Floats, S Storage](v Vec[T, S]) Vec[T, S] {
	return classify(v, math.IsNaN)
}

// IsNegative returns a mask of the lanes below zero, including -0.0.
func IsNegative[T Floats, S Storage](v Vec[T, S]) Vec[T, S] {
	return classify(v, func(x float64) bool {
		return x < 0 || (x == 0 && math.IsInf(1/x, -1))
	})
}

// IsPositive returns a mask of the lanes above zero, including +0.0.
func IsPositive[T Floats, S Storage](v Vec[T, S]) Vec[T, S] {
	return classify(v, func(x float64) bool {
		return x > 0 || (x == 0 && math.IsInf(1/x, 1))
	})
}

// IsZero returns a mask of the lanes equal to either signed zero.
func IsZero[T Floats, S Storage](v Vec[T, S]) Vec[T, S] {
	return classify(v, func(x float64) bool { return x == 0 })
}

// CopySign returns |value| with the sign taken from sign: lanes whose sign
// lane is below zero become -|value|.
func CopySign[T Floats, S Storage](value, sign Vec[T, S]) Vec[T, S] {
	var ops ScalarOps[T]
	return binaryOp(value, sign, func(x, s T) T {
		if s < 0 {
			return -ops.Abs(x)
		}
		return ops.Abs(x)
	})
}
