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
	"errors"
	"fmt"
)

var (
	// ErrLaneIndexOutOfRange is wrapped by the LaneIndexError that
	// GetElement and WithElement panic with.
	ErrLaneIndexOutOfRange = errors.New("wave: lane index out of range")

	// ErrUnsupportedConfiguration is wrapped by ConfigError when two vector
	// types cannot be reinterpreted as each other.
	ErrUnsupportedConfiguration = errors.New("wave: unsupported vector configuration")
)

// LaneIndexError reports an access to a lane outside [0, Lanes).
type LaneIndexError struct {
	Index int
	Lanes int
}

func (e *LaneIndexError) Error() string {
	return fmt.Sprintf("wave: lane index %d out of range [0, %d)", e.Index, e.Lanes)
}

func (e *LaneIndexError) Unwrap() error { return ErrLaneIndexOutOfRange }

// ConfigError reports a lane count mismatch between a fixed vector and a
// Native vector.
type ConfigError struct {
	Expected int // lanes of the fixed vector
	Actual   int // lanes of the native vector
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("wave: expected %d lanes, native vector has %d", e.Expected, e.Actual)
}

func (e *ConfigError) Unwrap() error { return ErrUnsupportedConfiguration }

func checkLane(index, lanes int) {
	if index < 0 || index >= lanes {
		panic(&LaneIndexError{Index: index, Lanes: lanes})
	}
}
