package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputFileName(t *testing.T) {
	type tc struct {
		input    string
		expected string
	}

	tests := map[string]tc{
		"simple": {input: "props.toml", expected: "props_gen.go"},
		"hyphen": {input: "extra-props.toml", expected: "extra_props_gen.go"},
		"in dir": {input: filepath.Join("a", "b.toml"), expected: filepath.Join("a", "b_gen.go")},
		"no ext": {input: "props", expected: "props_gen.go"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := outputFileName(tt.input); got != tt.expected {
				t.Errorf("outputFileName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCheckModule(t *testing.T) {
	type tc struct {
		module  string
		wantErr string
	}

	tests := map[string]tc{
		"this module":  {module: modulePath},
		"sub module":   {module: modulePath + "/x"},
		"other module": {module: "example.com/other", wantErr: "only builds inside"},
		"no go.mod":    {wantErr: "no go.mod"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			if tt.module != "" {
				data := []byte("module " + tt.module + "\n\ngo 1.25.1\n")
				if err := os.WriteFile(filepath.Join(root, "go.mod"), data, 0644); err != nil {
					t.Fatal(err)
				}
			}
			dir := filepath.Join(root, "nested")
			if err := os.Mkdir(dir, 0755); err != nil {
				t.Fatal(err)
			}

			err := checkModule(dir)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("checkModule() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("checkModule() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
