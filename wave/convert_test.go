package wave

import (
	"errors"
	"math"
	"testing"
)

func TestNarrowWidenRoundTrip(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		v := Create256Int32(1, -2, math.MaxInt32, math.MinInt32, 0, 5, -6, 7)
		lo, hi := WidenInt32(v)
		checkLanes(t, "lower", lo, []int64{1, -2, math.MaxInt32, math.MinInt32})
		checkLanes(t, "upper", hi, []int64{0, 5, -6, 7})
		if got := NarrowInt64(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowInt64(WidenInt32(v)) = %v, want %v", got, v)
		}
	})
	t.Run("uint8", func(t *testing.T) {
		v := Create128Uint8(0, 1, 2, 127, 128, 200, 255, 7, 8, 9, 10, 11, 12, 13, 14, 15)
		lo, hi := WidenUint8(v)
		if got := GetElement(lo, 6); got != 255 {
			t.Errorf("zero extension: got %v, want 255", got)
		}
		if got := NarrowUint16(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowUint16(WidenUint8(v)) = %v, want %v", got, v)
		}
	})
	t.Run("int8", func(t *testing.T) {
		v := Create128Int8(-128, -1, 0, 1, 127, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, -12)
		lo, hi := WidenInt8(v)
		if got := GetElement(lo, 1); got != -1 {
			t.Errorf("sign extension: got %v, want -1", got)
		}
		if got := NarrowInt16(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowInt16(WidenInt8(v)) = %v, want %v", got, v)
		}
	})
	t.Run("int16", func(t *testing.T) {
		v := Create128Int16(-32768, -1, 0, 1, 32767, 2, 3, -4)
		lo, hi := WidenInt16(v)
		if got := NarrowInt32(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowInt32(WidenInt16(v)) = %v, want %v", got, v)
		}
	})
	t.Run("uint16", func(t *testing.T) {
		v := Create128Uint16(0, 1, 65535, 3, 4, 5, 6, 7)
		lo, hi := WidenUint16(v)
		if got := GetElement(lo, 2); got != 65535 {
			t.Errorf("zero extension: got %v, want 65535", got)
		}
		if got := NarrowUint32(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowUint32(WidenUint16(v)) = %v, want %v", got, v)
		}
	})
	t.Run("uint32", func(t *testing.T) {
		v := Create128Uint32(0, 1, math.MaxUint32, 3)
		lo, hi := WidenUint32(v)
		if got := NarrowUint64(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowUint64(WidenUint32(v)) = %v, want %v", got, v)
		}
	})
	t.Run("float32", func(t *testing.T) {
		v := Create256Float32(0.1, -2.5, float32(math.Inf(1)), float32(math.NaN()), 1e-30, 3, 4, -0)
		lo, hi := WidenFloat32(v)
		if got := GetElement(lo, 0); got != float64(float32(0.1)) {
			t.Errorf("exact widening: got %v, want %v", got, float64(float32(0.1)))
		}
		if got := NarrowFloat64(lo, hi); !got.Equal(v) {
			t.Errorf("NarrowFloat64(WidenFloat32(v)) = %v, want %v", got, v)
		}
	})
}

func TestNarrowTruncates(t *testing.T) {
	lo := Create128Int32(0x12345, -1, 65535, 32768)
	hi := Create128Int32(0, 1, 2, 3)
	checkLanes(t, "NarrowInt32", NarrowInt32(lo, hi), []int16{0x2345, -1, -1, -32768, 0, 1, 2, 3})
}

func TestWidenGeneric(t *testing.T) {
	v := Create128Int16(-1, 2, -3, 4, -5, 6, -7, 8)
	checkLanes(t, "WidenLower", WidenLower[int32](v), []int32{-1, 2, -3, 4})
	checkLanes(t, "WidenUpper", WidenUpper[int32](v), []int32{-5, 6, -7, 8})

	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrUnsupportedConfiguration) {
			t.Errorf("widening int16 to int64: got panic %v, want ErrUnsupportedConfiguration", err)
		}
	}()
	WidenLower[int64](v)
}

func TestConvertFloatToInt(t *testing.T) {
	f32 := Create128Float32(1.9, -1.9, 3e9, float32(math.NaN()))
	checkLanes(t, "ConvertToInt32", ConvertToInt32(f32), []int32{1, -1, math.MaxInt32, 0})
	checkLanes(t, "ConvertToUInt32", ConvertToUInt32(f32), []uint32{1, 0, 3e9, 0})

	f64 := Create128Float64(-1e30, 1e30)
	checkLanes(t, "ConvertToInt64", ConvertToInt64(f64), []int64{math.MinInt64, math.MaxInt64})
	checkLanes(t, "ConvertToUInt64", ConvertToUInt64(f64), []uint64{0, math.MaxUint64})
}

func TestConvertIntToFloat(t *testing.T) {
	checkLanes(t, "ConvertToSingle int32", ConvertToSingle(Create128Int32(-1, 0, 1, 16777217)), []float32{-1, 0, 1, 16777216})
	checkLanes(t, "ConvertToSingle uint32", ConvertToSingle(Create128Uint32(math.MaxUint32, 0, 1, 2)), []float32{4294967296, 0, 1, 2})
	checkLanes(t, "ConvertToDouble int64", ConvertToDouble(Create128Int64(-3, 1<<53+1)), []float64{-3, 1 << 53})
	checkLanes(t, "ConvertToDouble uint64", ConvertToDouble(Create128Uint64(7, 0)), []float64{7, 0})
}

func TestAs(t *testing.T) {
	bits := As[uint32](Broadcast[W128](float32(1)))
	for i, x := range bits.Lanes() {
		if x != 0x3f800000 {
			t.Errorf("lane %d: got %#x, want 0x3f800000", i, x)
		}
	}
	if got := As[int64](As[uint8](Create128Int64(-5, 6))); !got.Equal(Create128Int64(-5, 6)) {
		t.Errorf("As round trip: got %v", got)
	}
	if n := As[uint8](Zero[W256, float64]()).LaneCount(); n != 32 {
		t.Errorf("As lane count: got %d, want 32", n)
	}
}
