package wave

import (
	"os"
	"testing"
)

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		name  string
		width int
	}{
		{DispatchScalar, "scalar", 16},
		{DispatchSSE2, "sse2", 16},
		{DispatchAVX2, "avx2", 32},
		{DispatchAVX512, "avx512", 64},
		{DispatchNEON, "neon", 16},
		{DispatchLevel(99), "unknown", 16},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.name)
		}
		if got := tt.level.Width(); got != tt.width {
			t.Errorf("%s.Width() = %d, want %d", tt.name, got, tt.width)
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, CurrentLevel() = %v", CurrentName(), CurrentLevel())
	}
	if NativeWidth() != CurrentLevel().Width() {
		t.Errorf("NativeWidth() = %d, want %d", NativeWidth(), CurrentLevel().Width())
	}
	if NoSimdEnv() && CurrentLevel() != DispatchScalar {
		t.Errorf("WAVE_NO_SIMD set but level is %v", CurrentLevel())
	}
	t.Logf("detected level %s, native width %d", CurrentName(), NativeWidth())
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		if tt.value == "" {
			// t.Setenv cannot unset; restore the variable by hand.
			old, ok := os.LookupEnv("WAVE_NO_SIMD")
			os.Unsetenv("WAVE_NO_SIMD")
			got := NoSimdEnv()
			if ok {
				os.Setenv("WAVE_NO_SIMD", old)
			}
			if got != tt.want {
				t.Errorf("unset: NoSimdEnv() = %v, want %v", got, tt.want)
			}
			continue
		}
		t.Setenv("WAVE_NO_SIMD", tt.value)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("WAVE_NO_SIMD=%q: NoSimdEnv() = %v, want %v", tt.value, got, tt.want)
		}
	}
}
