package layout

import "math"

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Inf returns the unconstrained size used when a child may take as much room
// as it wants on both axes.
func Inf() Size {
	return Size{Width: math.Inf(1), Height: math.Inf(1)}
}

// IsInfinite reports whether either dimension is unbounded.
func (s Size) IsInfinite() bool {
	return math.IsInf(s.Width, 1) || math.IsInf(s.Height, 1)
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Add returns the component-wise sum.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference, floored at zero.
func (s Size) Sub(other Size) Size {
	return Size{
		Width:  math.Max(0, s.Width-other.Width),
		Height: math.Max(0, s.Height-other.Height),
	}
}

// Max returns the component-wise maximum.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// Min returns the component-wise minimum.
func (s Size) Min(other Size) Size {
	return Size{Width: math.Min(s.Width, other.Width), Height: math.Min(s.Height, other.Height)}
}

// Sanitize maps NaN and negative dimensions to zero. Positive infinity is
// kept because it is the legal "unconstrained" extent.
func (s Size) Sanitize() Size {
	return Size{Width: NonNegative(s.Width), Height: NonNegative(s.Height)}
}

// Finite maps infinite dimensions to zero on top of Sanitize. Desired and
// render sizes are always finite.
func (s Size) Finite() Size {
	s = s.Sanitize()
	if math.IsInf(s.Width, 0) {
		s.Width = 0
	}
	if math.IsInf(s.Height, 0) {
		s.Height = 0
	}
	return s
}

// NonNegative returns v, or zero when v is NaN or negative.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func Clamp(v, minVal, maxVal float64) float64 {
	if v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}
