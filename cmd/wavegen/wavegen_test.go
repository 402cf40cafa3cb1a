package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetWidth(t *testing.T) {
	tests := []struct {
		name    string
		width   string
		wantErr bool
	}{
		{"128", "128", false},
		{"256", "256", false},
		{"512", "512", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetWidth(tt.width)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetWidth(%q) error = %v, wantErr %v", tt.width, err, tt.wantErr)
			}
		})
	}
}

func TestWidthLanesFor(t *testing.T) {
	w256, err := GetWidth("256")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		elemType string
		want     int
	}{
		{"int8", 32},
		{"int16", 16},
		{"float32", 8},
		{"float64", 4},
	}

	for _, tt := range tests {
		t.Run(tt.elemType, func(t *testing.T) {
			for _, lt := range LaneTypes {
				if lt.Name != tt.elemType {
					continue
				}
				if got := w256.LanesFor(lt); got != tt.want {
					t.Errorf("LanesFor(%q) = %d, want %d", tt.elemType, got, tt.want)
				}
				return
			}
			t.Fatalf("lane type %q not found", tt.elemType)
		})
	}
}

func TestParseWidths(t *testing.T) {
	all, err := parseWidths("all")
	if err != nil || len(all) != 2 {
		t.Fatalf("parseWidths(all) = %v, %v", all, err)
	}
	one, err := parseWidths(" 256 ,")
	if err != nil || len(one) != 1 || one[0].Bits != 256 {
		t.Fatalf("parseWidths(256) = %v, %v", one, err)
	}
	if _, err := parseWidths(","); err == nil {
		t.Error("parseWidths(,) should fail")
	}
}

func TestGeneratorEndToEnd(t *testing.T) {
	tmpDir := t.TempDir()
	out := filepath.Join(tmpDir, "gen", "create_gen.go")

	gen := &Generator{
		OutputFile: out,
		PackageOut: "wave",
		Widths:     SupportedWidths(),
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Generator.Run() failed: %v", err)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(src), "// Code generated by wavegen. DO NOT EDIT.") {
		t.Error("missing generated-code header")
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, out, src, 0)
	if err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
	if file.Name.Name != "wave" {
		t.Errorf("package = %q, want wave", file.Name.Name)
	}

	arity := map[string]int{}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		n := 0
		for _, field := range fn.Type.Params.List {
			n += len(field.Names)
		}
		arity[fn.Name.Name] = n
	}

	if len(arity) != gen.Count() {
		t.Errorf("generated %d functions, want %d", len(arity), gen.Count())
	}

	want := map[string]int{
		"Create128Int8":    16,
		"Create128Float64": 2,
		"Create256Uint8":   32,
		"Create256Int32":   8,
		"Create256Float64": 4,
	}
	for name, n := range want {
		if got, ok := arity[name]; !ok {
			t.Errorf("%s not generated", name)
		} else if got != n {
			t.Errorf("%s has %d params, want %d", name, got, n)
		}
	}
}

func TestGeneratorMatchesCheckedIn(t *testing.T) {
	checkedIn, err := os.ReadFile(filepath.Join("..", "..", "wave", "create_gen.go"))
	if err != nil {
		t.Skipf("checked-in file not found: %v", err)
	}

	gen := &Generator{OutputFile: "create_gen.go", PackageOut: "wave", Widths: SupportedWidths()}
	got, err := gen.Render()
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if string(got) != string(checkedIn) {
		t.Error("wave/create_gen.go is stale; run go generate ./wave")
	}
}
