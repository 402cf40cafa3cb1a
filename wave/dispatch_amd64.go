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

//go:build amd64

package wave

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
		setLevel(DispatchAVX512)
	case cpu.X86.HasAVX2:
		setLevel(DispatchAVX2)
	default:
		// SSE2 is baseline for amd64
		setLevel(DispatchSSE2)
	}
}
