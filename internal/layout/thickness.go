package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidThickness is returned when a Thickness component is negative,
// NaN or infinite.
var ErrInvalidThickness = errors.New("invalid thickness")

// Thickness represents spacing on four sides of a box (margin, padding,
// border width). Components are non-negative.
type Thickness struct {
	Left, Top, Right, Bottom float64
}

// NewThickness creates a Thickness following the left, top, right, bottom
// order. It fails when any component is negative, NaN or infinite.
func NewThickness(left, top, right, bottom float64) (Thickness, error) {
	for _, v := range [...]float64{left, top, right, bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return Thickness{}, fmt.Errorf("%w: %v", ErrInvalidThickness, v)
		}
	}
	return Thickness{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(v float64) Thickness {
	return Thickness{Left: v, Top: v, Right: v, Bottom: v}
}

// Symmetric creates a Thickness with horizontal (left/right) and vertical
// (top/bottom) values.
func Symmetric(h, v float64) Thickness {
	return Thickness{Left: h, Top: v, Right: h, Bottom: v}
}

// Horizontal returns the sum of Left and Right.
func (t Thickness) Horizontal() float64 {
	return t.Left + t.Right
}

// Vertical returns the sum of Top and Bottom.
func (t Thickness) Vertical() float64 {
	return t.Top + t.Bottom
}

// Size returns (Horizontal, Vertical).
func (t Thickness) Size() Size {
	return Size{Width: t.Horizontal(), Height: t.Vertical()}
}

// IsZero returns true if all components are zero.
func (t Thickness) IsZero() bool {
	return t.Left == 0 && t.Top == 0 && t.Right == 0 && t.Bottom == 0
}

// Add returns the component-wise sum.
func (t Thickness) Add(other Thickness) Thickness {
	return Thickness{
		Left:   t.Left + other.Left,
		Top:    t.Top + other.Top,
		Right:  t.Right + other.Right,
		Bottom: t.Bottom + other.Bottom,
	}
}

// Clamp returns t with NaN, negative and infinite components replaced by zero.
func (t Thickness) Clamp() Thickness {
	fix := func(v float64) float64 {
		if math.IsInf(v, 0) {
			return 0
		}
		return NonNegative(v)
	}
	return Thickness{Left: fix(t.Left), Top: fix(t.Top), Right: fix(t.Right), Bottom: fix(t.Bottom)}
}
