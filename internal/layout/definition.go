package layout

import "math"

// Definition describes one Grid track (a row or a column).
//
// Build definitions with NewDefinition, which leaves the track unclamped.
type Definition struct {
	Length GridLength
	// MinSize is the smallest the track may be. Negative or NaN reads as 0.
	MinSize float64
	// MaxSize is the largest the track may be; 0 pins the track shut.
	// NaN, negative and +Inf mean unbounded.
	MaxSize float64

	// ActualSize is overwritten by every Grid layout pass.
	ActualSize float64
}

// RowDefinition and ColumnDefinition are the same record; the names document
// which axis a collection belongs to.
type (
	RowDefinition    = Definition
	ColumnDefinition = Definition
)

// NewDefinition returns a track of the given length with no clamps.
func NewDefinition(length GridLength) Definition {
	return Definition{Length: length, MaxSize: math.Inf(1)}
}

// WithMin returns a copy with MinSize set.
func (d Definition) WithMin(v float64) Definition {
	d.MinSize = NonNegative(v)
	return d
}

// WithMax returns a copy with MaxSize set.
func (d Definition) WithMax(v float64) Definition {
	if math.IsNaN(v) || v < 0 {
		v = math.Inf(1)
	}
	d.MaxSize = v
	return d
}

// Max returns the effective upper clamp.
func (d Definition) Max() float64 {
	if d.MaxSize < 0 || math.IsNaN(d.MaxSize) {
		return math.Inf(1)
	}
	return d.MaxSize
}

// Clamp restricts v to the definition's [MinSize, MaxSize] range.
func (d Definition) Clamp(v float64) float64 {
	return Clamp(v, NonNegative(d.MinSize), d.Max())
}
