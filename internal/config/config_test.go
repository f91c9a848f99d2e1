package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestParse(t *testing.T) {
	type tc struct {
		input   string
		check   func(t *testing.T, c Config)
		wantErr bool
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			input: "",
			check: func(t *testing.T, c Config) {
				if c != Default() {
					t.Errorf("Parse(\"\") = %+v, want defaults", c)
				}
			},
		},
		"overrides merge": {
			input: "[text]\nmeasurer = \"gofont\"\nfont_size = 14.0\n[scroll]\nbar_thickness = 12.0\n",
			check: func(t *testing.T, c Config) {
				if c.Text.Measurer != MeasurerGoFont {
					t.Errorf("Text.Measurer = %q, want %q", c.Text.Measurer, MeasurerGoFont)
				}
				if c.Text.FontSize != 14 {
					t.Errorf("Text.FontSize = %v, want 14", c.Text.FontSize)
				}
				if c.Text.DPI != 72 {
					t.Errorf("Text.DPI = %v, want default 72", c.Text.DPI)
				}
				if c.Scroll.BarThickness != 12 {
					t.Errorf("Scroll.BarThickness = %v, want 12", c.Scroll.BarThickness)
				}
				if c.Scroll.MinThumbLength != 1 {
					t.Errorf("Scroll.MinThumbLength = %v, want default 1", c.Scroll.MinThumbLength)
				}
			},
		},
		"unknown measurer": {
			input:   "[text]\nmeasurer = \"braille\"\n",
			wantErr: true,
		},
		"negative bar": {
			input:   "[scroll]\nbar_thickness = -1.0\n",
			wantErr: true,
		},
		"zero line spacing": {
			input:   "[text]\nline_spacing = 0.0\n",
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("Parse() error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse([]byte("[text\nmeasurer = "))
	if err == nil {
		t.Fatal("Parse() of broken TOML returned nil error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse() syntax error wrapped ErrInvalidConfig: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("Load(missing) error = %v", err)
	}
	if c != Default() {
		t.Errorf("Load(missing) = %+v, want defaults", c)
	}

	path := filepath.Join(dir, DefaultFile)
	want := Default()
	want.Text.Measurer = MeasurerBasic
	want.Debug.Log = "trace.log"
	if err := want.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	if err := os.WriteFile(path, []byte("[scroll]\nmin_thumb_length = -2.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load(invalid) error = %v, want ErrInvalidConfig", err)
	}
}
