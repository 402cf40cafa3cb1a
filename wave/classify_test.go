package wave

import (
	"math"
	"testing"
)

func maskBits[T Floats, S Storage](v Vec[T, S]) []bool {
	var ops ScalarOps[T]
	out := make([]bool, v.LaneCount())
	for i, x := range v.Lanes() {
		out[i] = toBits(x) == toBits(ops.AllBitsSet())
	}
	return out
}

func TestClassify(t *testing.T) {
	negZero := math.Copysign(0, -1)
	v := Create256Float64(math.NaN(), negZero, 0, -3)

	tests := []struct {
		name string
		mask Vec256[float64]
		want []bool
	}{
		{"IsNaN", IsNaN(v), []bool{true, false, false, false}},
		{"IsNegative", IsNegative(v), []bool{false, true, false, true}},
		{"IsPositive", IsPositive(v), []bool{false, false, true, false}},
		{"IsZero", IsZero(v), []bool{false, true, true, false}},
	}
	for _, tt := range tests {
		got := maskBits(tt.mask)
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: lane %d: got %v, want %v", tt.name, i, got[i], tt.want[i])
			}
		}
	}
}

func TestClassifyFloat32(t *testing.T) {
	v := Create128Float32(float32(math.Inf(-1)), float32(math.Inf(1)), float32(math.Copysign(0, -1)), 1)
	if got := ExtractMostSignificantBits(IsNegative(v)); got != 0b0101 {
		t.Errorf("IsNegative: got %#b, want 0b0101", got)
	}
	if got := ExtractMostSignificantBits(IsPositive(v)); got != 0b1010 {
		t.Errorf("IsPositive: got %#b, want 0b1010", got)
	}
}

func TestCopySign(t *testing.T) {
	value := Create128Float32(1, -2, 3, -4)
	sign := Create128Float32(-1, -1, 1, 1)
	checkLanes(t, "CopySign", CopySign(value, sign), []float32{-1, -2, 3, 4})

	// A -0.0 sign is not below zero.
	got := CopySign(Create128Float64(-5, 5), Create128Float64(math.Copysign(0, -1), math.Inf(-1)))
	checkLanes(t, "zero sign", got, []float64{5, -5})
}
