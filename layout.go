// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package panels

import "github.com/grindlemire/go-panels/internal/layout"

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Rect represents a rectangle in absolute layout coordinates.
type Rect = layout.Rect

// Thickness represents spacing on four sides (left, top, right, bottom).
type Thickness = layout.Thickness

// Alignment positions an element inside its layout slot along one axis.
type Alignment = layout.Alignment

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignCenter  = layout.AlignCenter
	AlignEnd     = layout.AlignEnd
)

// GridLength is the size of a Grid track.
type GridLength = layout.GridLength

// GridUnit specifies how a GridLength is interpreted.
type GridUnit = layout.GridUnit

const (
	UnitAuto  = layout.UnitAuto
	UnitPixel = layout.UnitPixel
	UnitStar  = layout.UnitStar
)

// RowDefinition describes one Grid row.
type RowDefinition = layout.RowDefinition

// ColumnDefinition describes one Grid column.
type ColumnDefinition = layout.ColumnDefinition

var (
	// ErrInvalidGridLength is returned for NaN, negative or infinite track lengths.
	ErrInvalidGridLength = layout.ErrInvalidGridLength

	// ErrInvalidThickness is returned for NaN, negative or infinite thickness components.
	ErrInvalidThickness = layout.ErrInvalidThickness
)

// NewSize creates a Size.
func NewSize(width, height float64) Size {
	return layout.NewSize(width, height)
}

// Infinite returns the unconstrained size (+Inf, +Inf).
func Infinite() Size {
	return layout.Inf()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// NewThickness creates a Thickness following the left, top, right, bottom order.
func NewThickness(left, top, right, bottom float64) (Thickness, error) {
	return layout.NewThickness(left, top, right, bottom)
}

// Uniform creates a Thickness with the same value on all sides.
func Uniform(v float64) Thickness {
	return layout.Uniform(v)
}

// Symmetric creates a Thickness with horizontal (left/right) and vertical (top/bottom) values.
func Symmetric(h, v float64) Thickness {
	return layout.Symmetric(h, v)
}

// Auto returns a GridLength sized to the content of its track.
func Auto() GridLength {
	return layout.AutoLength()
}

// Pixel returns a fixed-size GridLength.
func Pixel(v float64) (GridLength, error) {
	return layout.Pixel(v)
}

// Star returns a proportional GridLength with the given weight.
func Star(weight float64) (GridLength, error) {
	return layout.Star(weight)
}

// MustPixel is like Pixel but panics on an invalid value.
func MustPixel(v float64) GridLength {
	return layout.MustPixel(v)
}

// MustStar is like Star but panics on an invalid weight.
func MustStar(weight float64) GridLength {
	return layout.MustStar(weight)
}

// ParseGridLength parses "auto", "*", "<weight>*" or "<pixels>".
func ParseGridLength(s string) (GridLength, error) {
	return layout.ParseGridLength(s)
}

// NewRowDefinition returns a row of the given length with no clamps.
func NewRowDefinition(length GridLength) RowDefinition {
	return layout.NewDefinition(length)
}

// NewColumnDefinition returns a column of the given length with no clamps.
func NewColumnDefinition(length GridLength) ColumnDefinition {
	return layout.NewDefinition(length)
}
