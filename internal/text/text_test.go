package text

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestCells_Width(t *testing.T) {
	type tc struct {
		in       string
		expected float64
	}

	tests := map[string]tc{
		"ascii":     {in: "hello", expected: 5},
		"empty":     {in: "", expected: 0},
		"wide":      {in: "日本", expected: 4},
		"combining": {in: "é", expected: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Cells{}.Width(tt.in)
			if err != nil {
				t.Fatalf("Width(%q) error = %v", tt.in, err)
			}
			if got != tt.expected {
				t.Errorf("Width(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

func TestCells_MalformedText(t *testing.T) {
	_, err := Cells{}.Width("bad\xff")
	if !errors.Is(err, ErrMalformedText) {
		t.Errorf("Width() error = %v, want ErrMalformedText", err)
	}
	_, _, err = Measure(Cells{}, "bad\xff", 10, Wrap)
	if !errors.Is(err, ErrMalformedText) {
		t.Errorf("Measure() error = %v, want ErrMalformedText", err)
	}
}

func TestWrapLines(t *testing.T) {
	type tc struct {
		in       string
		maxWidth float64
		mode     Wrapping
		expected []string
	}

	tests := map[string]tc{
		"no wrap keeps line": {
			in:       "the quick brown fox",
			maxWidth: 5,
			mode:     NoWrap,
			expected: []string{"the quick brown fox"},
		},
		"newlines always break": {
			in:       "a\nbb",
			maxWidth: 100,
			mode:     NoWrap,
			expected: []string{"a", "bb"},
		},
		"word wrap": {
			in:       "the quick brown fox",
			maxWidth: 10,
			mode:     Wrap,
			expected: []string{"the quick", "brown fox"},
		},
		"long word split": {
			in:       "abcdefgh ij",
			maxWidth: 3,
			mode:     Wrap,
			expected: []string{"abc", "def", "gh", "ij"},
		},
		"infinite width": {
			in:       "one two",
			maxWidth: math.Inf(1),
			mode:     Wrap,
			expected: []string{"one two"},
		},
		"zero width still progresses": {
			in:       "ab",
			maxWidth: 0,
			mode:     Wrap,
			expected: []string{"a", "b"},
		},
		"blank paragraph": {
			in:       "a\n\nb",
			maxWidth: 5,
			mode:     Wrap,
			expected: []string{"a", "", "b"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := WrapLines(Cells{}, tt.in, tt.maxWidth, tt.mode)
			if err != nil {
				t.Fatalf("WrapLines() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("WrapLines() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMeasure_Cells(t *testing.T) {
	lines, size, err := Measure(Cells{}, "the quick brown fox", 10, Wrap)
	if err != nil {
		t.Fatalf("Measure() error = %v", err)
	}
	if len(lines) != 2 {
		t.Errorf("len(lines) = %d, want 2", len(lines))
	}
	if size.Width != 9 || size.Height != 2 {
		t.Errorf("Measure() size = %+v, want {9 2}", size)
	}
}

func TestBasicFace(t *testing.T) {
	f := NewBasicFace(1)
	w, err := f.Width("abcd")
	if err != nil {
		t.Fatalf("Width() error = %v", err)
	}
	if w != 28 {
		t.Errorf("Width(abcd) = %v, want 28", w)
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %v, want > 0", f.LineHeight())
	}

	spaced := NewBasicFace(2)
	if spaced.LineHeight() != 2*f.LineHeight() {
		t.Errorf("LineHeight() with spacing 2 = %v, want %v", spaced.LineHeight(), 2*f.LineHeight())
	}
}

func TestGoFace(t *testing.T) {
	f, err := NewGoFace(12, 72, 1)
	if err != nil {
		t.Fatalf("NewGoFace() error = %v", err)
	}
	narrow, _ := f.Width("i")
	wide, _ := f.Width("iiii")
	if narrow <= 0 || wide <= narrow {
		t.Errorf("Width(i) = %v, Width(iiii) = %v, want 0 < narrow < wide", narrow, wide)
	}
	if f.LineHeight() <= 0 {
		t.Errorf("LineHeight() = %v, want > 0", f.LineHeight())
	}
}
