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
	"os"
	"strconv"
)

// DispatchLevel names the SIMD instruction set the host provides. It
// decides the width of Native vectors only; Vec operations behave the
// same at every level.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD unit (or WAVE_NO_SIMD).
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes of the level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// currentLevel is the detected level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// CurrentLevel returns the detected host SIMD level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns the name of the detected level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// NativeWidth returns the width in bytes of Native vectors: 16 for
// SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512.
func NativeWidth() int {
	return currentLevel.Width()
}

// NoSimdEnv checks if the WAVE_NO_SIMD environment variable is set.
// When set, the host is reported as scalar with 16-byte Native vectors,
// which makes Native interop reproducible across machines.
func NoSimdEnv() bool {
	val := os.Getenv("WAVE_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// setLevel records the detected level.
func setLevel(level DispatchLevel) {
	currentLevel = level
}

// logLevel reports the detected level on the current logger.
func logLevel() {
	Logger().Debug("wave: host SIMD level",
		"simd_level", currentLevel.String(),
		"native_width", currentLevel.Width(),
		"no_simd_env", NoSimdEnv())
}
