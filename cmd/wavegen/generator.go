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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

// Width describes one vector width the generator emits constructors for.
type Width struct {
	Bits    int    // 128, 256
	Bytes   int    // 16, 32
	Storage string // "W128", "W256"
	Alias   string // "Vec128", "Vec256"
}

// LaneType describes one lane type.
type LaneType struct {
	Name   string // "int32"
	Suffix string // "Int32"
	Size   int    // bytes
}

// LanesFor returns the lane count of lt in w.
func (w Width) LanesFor(lt LaneType) int {
	return w.Bytes / lt.Size
}

// FuncName returns the constructor name, e.g. "Create256Int32".
func (w Width) FuncName(lt LaneType) string {
	return fmt.Sprintf("Create%d%s", w.Bits, lt.Suffix)
}

// SupportedWidths returns the widths package wave implements.
func SupportedWidths() []Width {
	return []Width{
		{Bits: 128, Bytes: 16, Storage: "W128", Alias: "Vec128"},
		{Bits: 256, Bytes: 32, Storage: "W256", Alias: "Vec256"},
	}
}

// AvailableWidths returns the -widths flag values.
func AvailableWidths() []string {
	var names []string
	for _, w := range SupportedWidths() {
		names = append(names, fmt.Sprint(w.Bits))
	}
	return names
}

// GetWidth looks a width up by its bit count.
func GetWidth(name string) (Width, error) {
	for _, w := range SupportedWidths() {
		if fmt.Sprint(w.Bits) == name {
			return w, nil
		}
	}
	return Width{}, fmt.Errorf("unknown width %q (available: %s)", name, strings.Join(AvailableWidths(), ","))
}

// LaneTypes is the closed set of lane types, in emission order.
var LaneTypes = []LaneType{
	{Name: "int8", Suffix: "Int8", Size: 1},
	{Name: "uint8", Suffix: "Uint8", Size: 1},
	{Name: "int16", Suffix: "Int16", Size: 2},
	{Name: "uint16", Suffix: "Uint16", Size: 2},
	{Name: "int32", Suffix: "Int32", Size: 4},
	{Name: "uint32", Suffix: "Uint32", Size: 4},
	{Name: "int64", Suffix: "Int64", Size: 8},
	{Name: "uint64", Suffix: "Uint64", Size: 8},
	{Name: "float32", Suffix: "Float32", Size: 4},
	{Name: "float64", Suffix: "Float64", Size: 8},
}

// Generator writes the constructor file.
type Generator struct {
	OutputFile string
	PackageOut string
	Widths     []Width
}

// Count returns the number of constructors Run emits.
func (g *Generator) Count() int {
	return len(g.Widths) * len(LaneTypes)
}

// Run renders and writes the output file.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(g.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(g.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("write constructors: %w", err)
	}
	return nil
}

// Render returns the formatted Go source.
func (g *Generator) Render() ([]byte, error) {
	pkg := g.PackageOut
	if pkg == "" {
		pkg = "wave"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by wavegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for _, w := range g.Widths {
		for _, lt := range LaneTypes {
			emitCreate(&buf, w, lt)
		}
	}

	formatted, err := imports.Process(filepath.Base(g.OutputFile), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format constructors: %w", err)
	}
	return formatted, nil
}

func emitCreate(buf *bytes.Buffer, w Width, lt LaneType) {
	n := w.LanesFor(lt)
	params := make([]string, n)
	for i := range params {
		params[i] = fmt.Sprintf("e%d", i)
	}
	list := strings.Join(params, ", ")
	vecType := fmt.Sprintf("%s[%s]", w.Alias, lt.Name)

	fmt.Fprintf(buf, "\n// %s returns a %s with lane i set to ei.\n", w.FuncName(lt), vecType)
	fmt.Fprintf(buf, "func %s(%s %s) %s {\n", w.FuncName(lt), list, lt.Name, vecType)
	fmt.Fprintf(buf, "\treturn Load[%s]([]%s{%s})\n", w.Storage, lt.Name, list)
	fmt.Fprintf(buf, "}\n")
}
