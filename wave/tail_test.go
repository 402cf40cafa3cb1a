package wave

import "testing"

func TestProcessWithTail(t *testing.T) {
	tests := []struct {
		size      int
		wantFull  []int
		wantTail  [2]int
		wantCalls bool
	}{
		{0, nil, [2]int{}, false},
		{3, nil, [2]int{0, 3}, true},
		{8, []int{0, 4}, [2]int{}, false},
		{11, []int{0, 4}, [2]int{8, 3}, true},
	}
	for _, tt := range tests {
		var full []int
		var tail [2]int
		tailCalled := false
		ProcessWithTail[W128, float32](tt.size,
			func(offset int) { full = append(full, offset) },
			func(offset, count int) {
				tail = [2]int{offset, count}
				tailCalled = true
			},
		)
		if len(full) != len(tt.wantFull) {
			t.Errorf("size %d: full offsets %v, want %v", tt.size, full, tt.wantFull)
			continue
		}
		for i := range full {
			if full[i] != tt.wantFull[i] {
				t.Errorf("size %d: full offsets %v, want %v", tt.size, full, tt.wantFull)
			}
		}
		if tailCalled != tt.wantCalls || tail != tt.wantTail {
			t.Errorf("size %d: tail (%v, %v), want (%v, %v)", tt.size, tailCalled, tail, tt.wantCalls, tt.wantTail)
		}
	}
}

func TestProcessWithTailSum(t *testing.T) {
	data := make([]int32, 21)
	for i := range data {
		data[i] = int32(i + 1)
	}
	out := make([]int32, len(data))
	ProcessWithTail[W256, int32](len(data),
		func(offset int) {
			v := Load[W256](data[offset:])
			Store(Add(v, v), out[offset:])
		},
		func(offset, count int) {
			v := LoadPartial[W256](data[offset : offset+count])
			StorePartial(Add(v, v), out[offset:offset+count])
		},
	)
	for i := range out {
		if out[i] != 2*data[i] {
			t.Errorf("index %d: got %v, want %v", i, out[i], 2*data[i])
		}
	}
}

func TestAlignedSize(t *testing.T) {
	if got := AlignedSize[W256, float32](13); got != 16 {
		t.Errorf("AlignedSize(13): got %d, want 16", got)
	}
	if got := AlignedSize[W128, int8](16); got != 16 {
		t.Errorf("AlignedSize(16): got %d, want 16", got)
	}
	if !IsAligned[W128, float64](4) || IsAligned[W128, float64](5) {
		t.Error("IsAligned misreports multiples of 2")
	}
}

func TestLoadPartial(t *testing.T) {
	v := LoadPartial[W128]([]uint16{1, 2, 3})
	checkLanes(t, "LoadPartial", v, []uint16{1, 2, 3, 0, 0, 0, 0, 0})
	dst := make([]uint16, 2)
	StorePartial(v, dst)
	if dst[0] != 1 || dst[1] != 2 {
		t.Errorf("StorePartial: got %v", dst)
	}
}
