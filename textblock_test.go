package panels

import (
	"slices"
	"testing"
)

func TestTextBlock_Measure(t *testing.T) {
	type tc struct {
		text      string
		wrapping  TextWrapping
		padding   Thickness
		available Size
		expected  Size
		lines     []string
	}

	tests := map[string]tc{
		"single line": {
			text:      "hello world",
			available: Infinite(),
			expected:  NewSize(11, 1),
			lines:     []string{"hello world"},
		},
		"newlines always break": {
			text:      "ab\ncdef",
			available: Infinite(),
			expected:  NewSize(4, 2),
			lines:     []string{"ab", "cdef"},
		},
		"no wrap is clipped": {
			text:      "hello world",
			available: NewSize(5, 10),
			expected:  NewSize(5, 1),
			lines:     []string{"hello world"},
		},
		"wrap at available width": {
			text:      "hello world",
			wrapping:  Wrap,
			available: NewSize(5, 10),
			expected:  NewSize(5, 2),
			lines:     []string{"hello", "world"},
		},
		"wrap inside padding": {
			text:      "hello world",
			wrapping:  Wrap,
			padding:   Uniform(1),
			available: NewSize(7, 10),
			expected:  NewSize(7, 4),
			lines:     []string{"hello", "world"},
		},
		"wide runes": {
			text:      "日本",
			available: Infinite(),
			expected:  NewSize(4, 1),
			lines:     []string{"日本"},
		},
		"empty": {
			available: Infinite(),
			expected:  NewSize(0, 0),
		},
		"invalid utf-8": {
			text:      "ok\xff",
			available: Infinite(),
			expected:  NewSize(0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tb := NewTextBlock(tt.text)
			tb.SetTextWrapping(tt.wrapping)
			tb.SetPadding(tt.padding)

			if got := tb.Measure(tt.available); got != tt.expected {
				t.Errorf("Measure(%v) = %v, want %v", tt.available, got, tt.expected)
			}
			if got := tb.Lines(); !slices.Equal(got, tt.lines) {
				t.Errorf("Lines() = %q, want %q", got, tt.lines)
			}
		})
	}
}

func TestTextBlock_SetTextRemeasures(t *testing.T) {
	tb := NewTextBlock("ab")
	root := NewStackPanel(tb)
	h := mustHost(t, root)
	h.Layout(NewSize(20, 5))

	tb.SetText("abcd")
	if root.LayoutState() != MeasureDirty {
		t.Errorf("root.LayoutState() = %v, want MeasureDirty", root.LayoutState())
	}
	h.Layout(NewSize(20, 5))
	if got := tb.DesiredSize(); got != NewSize(4, 1) {
		t.Errorf("DesiredSize() = %v, want (4,1)", got)
	}

	tb.SetForeground("blue")
	if h.NeedsLayout() {
		t.Error("NeedsLayout() after Foreground = true, want false")
	}
}

type panickyMeasurer struct{}

func (panickyMeasurer) Width(string) (float64, error) { panic("no font loaded") }
func (panickyMeasurer) LineHeight() float64           { return 1 }

func TestTextBlock_PanickingMeasurer(t *testing.T) {
	tb := NewTextBlock("hello")
	sibling := newFixed(6, 3)
	root := NewStackPanel(tb, sibling)
	h := mustHost(t, root, WithEnv(&Env{Measurer: panickyMeasurer{}, ScrollBarThickness: 1}))
	h.Layout(NewSize(20, 10))

	if got := tb.DesiredSize(); got != (Size{}) {
		t.Errorf("DesiredSize() = %v, want (0,0)", got)
	}
	if got := tb.Lines(); got != nil {
		t.Errorf("Lines() = %q, want nil", got)
	}
	if got := sibling.LayoutSlot(); !rectNear(got, NewRect(0, 0, 20, 3)) {
		t.Errorf("sibling.LayoutSlot() = %v, want (0,0,20,3)", got)
	}
	if h.NeedsLayout() {
		t.Error("NeedsLayout() = true, want false")
	}
}
