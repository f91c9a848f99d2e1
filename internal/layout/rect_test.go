package layout

import (
	"math"
	"testing"
)

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.X != 5 {
		t.Errorf("NewRect().X = %v, want 5", r.X)
	}
	if r.Y != 10 {
		t.Errorf("NewRect().Y = %v, want 10", r.Y)
	}
	if r.Width != 20 {
		t.Errorf("NewRect().Width = %v, want 20", r.Width)
	}
	if r.Height != 15 {
		t.Errorf("NewRect().Height = %v, want 15", r.Height)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  float64
		bottom float64
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"fractional": {
			rect:   NewRect(0.5, 0.25, 1.5, 1.25),
			right:  2,
			bottom: 1.5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	type tc struct {
		x, y     float64
		expected bool
	}

	r := NewRect(10, 10, 20, 20)
	tests := map[string]tc{
		"inside":             {x: 15, y: 15, expected: true},
		"top-left corner":    {x: 10, y: 10, expected: true},
		"right edge outside": {x: 30, y: 15, expected: false},
		"bottom edge":        {x: 15, y: 30, expected: false},
		"left of rect":       {x: 9.5, y: 15, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.expected)
			}
			if got := (Point{X: tt.x, Y: tt.y}).In(r); got != tt.expected {
				t.Errorf("Point.In = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect      Rect
		thickness Thickness
		expected  Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:      NewRect(0, 0, 100, 50),
			thickness: Uniform(5),
			expected:  NewRect(5, 5, 90, 40),
		},
		"asymmetric": {
			rect:      NewRect(10, 10, 100, 50),
			thickness: Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4},
			expected:  NewRect(11, 12, 96, 44),
		},
		"never negative": {
			rect:      NewRect(0, 0, 4, 4),
			thickness: Uniform(3),
			expected:  NewRect(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.thickness); got != tt.expected {
				t.Errorf("Inset(%+v) = %+v, want %+v", tt.thickness, got, tt.expected)
			}
		})
	}
}

func TestRect_Outset(t *testing.T) {
	got := NewRect(5, 5, 90, 40).Outset(Uniform(5))
	if want := NewRect(0, 0, 100, 50); got != want {
		t.Errorf("Outset() = %+v, want %+v", got, want)
	}
}

func TestRect_Translate(t *testing.T) {
	got := NewRect(10, 20, 30, 40).Translate(-5, 15)
	if want := NewRect(5, 35, 30, 40); got != want {
		t.Errorf("Translate() = %+v, want %+v", got, want)
	}
}

func TestRect_Intersect(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"overlap": {
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(10, 10, 20, 20),
			expected: NewRect(10, 10, 10, 10),
		},
		"contained": {
			a:        NewRect(0, 0, 100, 100),
			b:        NewRect(10, 10, 5, 5),
			expected: NewRect(10, 10, 5, 5),
		},
		"touching edges": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: Rect{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.expected {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.expected)
			}
			if got := tt.a.Intersects(tt.b); got != !tt.expected.IsEmpty() {
				t.Errorf("Intersects() = %v, want %v", got, !tt.expected.IsEmpty())
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b     Rect
		expected Rect
	}

	tests := map[string]tc{
		"disjoint": {
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(20, 20, 10, 10),
			expected: NewRect(0, 0, 30, 30),
		},
		"empty left": {
			a:        Rect{},
			b:        NewRect(5, 5, 10, 10),
			expected: NewRect(5, 5, 10, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.expected {
				t.Errorf("Union() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)
	if !outer.ContainsRect(NewRect(10, 10, 50, 50)) {
		t.Error("ContainsRect(inner) = false, want true")
	}
	if outer.ContainsRect(NewRect(90, 90, 20, 20)) {
		t.Error("ContainsRect(overhanging) = true, want false")
	}
	if !outer.ContainsRect(Rect{}) {
		t.Error("ContainsRect(empty) = false, want true")
	}
}

func TestRect_Sanitize(t *testing.T) {
	got := Rect{X: math.NaN(), Y: 3, Width: -4, Height: math.NaN()}.Sanitize()
	if want := NewRect(0, 3, 0, 0); got != want {
		t.Errorf("Sanitize() = %+v, want %+v", got, want)
	}
}

func TestPoint(t *testing.T) {
	p := Point{X: 3, Y: 4}
	if got := p.Add(Point{X: 1, Y: 1}); got != (Point{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v, want {4 5}", got)
	}
	if got := p.Sub(Point{X: 1, Y: 1}); got != (Point{X: 2, Y: 3}) {
		t.Errorf("Sub() = %+v, want {2 3}", got)
	}
}
