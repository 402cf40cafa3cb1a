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

// Command wavegen generates the fixed-arity vector constructors of package wave.
//
// Usage:
//
//	wavegen -output create_gen.go
//	wavegen -output create_gen.go -widths 256 -pkg wave
//
// Or via go:generate (see wave/types.go):
//
//	//go:generate go run ../cmd/wavegen -output create_gen.go
//
// For every supported vector width and lane type it emits one function
// taking exactly LaneCount scalars, e.g.
//
//	func Create256Int32(e0, e1, e2, e3, e4, e5, e6, e7 int32) Vec256[int32]
//
// so that passing the wrong number of lanes is a compile error.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputFile = flag.String("output", "create_gen.go", "Output file path")
	packageOut = flag.String("pkg", "wave", "Output package name")
	widthsFlag = flag.String("widths", "all", "Comma-separated vector widths in bits ("+strings.Join(AvailableWidths(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	widths, err := parseWidths(*widthsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		PackageOut: *packageOut,
		Widths:     widths,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d constructors in %s\n", gen.Count(), *outputFile)
}

func parseWidths(s string) ([]Width, error) {
	if strings.TrimSpace(s) == "all" {
		return SupportedWidths(), nil
	}
	var result []Width
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := GetWidth(p)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no valid widths specified")
	}
	return result, nil
}
