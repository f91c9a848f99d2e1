package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidGridLength is returned when a GridLength would carry a NaN,
// negative or infinite value.
var ErrInvalidGridLength = errors.New("invalid grid length")

// GridUnit specifies how a GridLength is interpreted.
type GridUnit uint8

const (
	UnitAuto  GridUnit = iota // Sized to content
	UnitPixel                 // Absolute layout units
	UnitStar                  // Weighted share of the remaining space
)

func (u GridUnit) String() string {
	switch u {
	case UnitPixel:
		return "Pixel"
	case UnitStar:
		return "Star"
	default:
		return "Auto"
	}
}

// GridLength is the size of a Grid track: Auto, Pixel(value) or Star(weight).
// The zero value is Auto.
type GridLength struct {
	Value float64
	Unit  GridUnit
}

// AutoLength returns a GridLength sized to the content of its track.
func AutoLength() GridLength {
	return GridLength{Unit: UnitAuto}
}

// Pixel returns a fixed-size GridLength.
func Pixel(v float64) (GridLength, error) {
	if err := checkLength(v); err != nil {
		return GridLength{}, err
	}
	return GridLength{Value: v, Unit: UnitPixel}, nil
}

// Star returns a proportional GridLength with the given weight.
func Star(weight float64) (GridLength, error) {
	if err := checkLength(weight); err != nil {
		return GridLength{}, err
	}
	return GridLength{Value: weight, Unit: UnitStar}, nil
}

// MustPixel is like Pixel but panics on an invalid value.
func MustPixel(v float64) GridLength {
	l, err := Pixel(v)
	if err != nil {
		panic(err)
	}
	return l
}

// MustStar is like Star but panics on an invalid weight.
func MustStar(weight float64) GridLength {
	l, err := Star(weight)
	if err != nil {
		panic(err)
	}
	return l
}

func checkLength(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidGridLength, v)
	}
	return nil
}

// IsAuto returns true for content-sized tracks.
func (l GridLength) IsAuto() bool { return l.Unit == UnitAuto }

// IsPixel returns true for fixed-size tracks.
func (l GridLength) IsPixel() bool { return l.Unit == UnitPixel }

// IsStar returns true for proportional tracks.
func (l GridLength) IsStar() bool { return l.Unit == UnitStar }

// String formats the length the way ParseGridLength reads it.
func (l GridLength) String() string {
	switch l.Unit {
	case UnitPixel:
		return strconv.FormatFloat(l.Value, 'g', -1, 64)
	case UnitStar:
		if l.Value == 1 {
			return "*"
		}
		return strconv.FormatFloat(l.Value, 'g', -1, 64) + "*"
	default:
		return "auto"
	}
}

// ParseGridLength parses "auto", "*", "<weight>*" or "<pixels>".
func ParseGridLength(s string) (GridLength, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "auto"):
		return AutoLength(), nil
	case s == "*":
		return Star(1)
	case strings.HasSuffix(s, "*"):
		w, err := strconv.ParseFloat(strings.TrimSuffix(s, "*"), 64)
		if err != nil {
			return GridLength{}, fmt.Errorf("%w: %q", ErrInvalidGridLength, s)
		}
		return Star(w)
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return GridLength{}, fmt.Errorf("%w: %q", ErrInvalidGridLength, s)
		}
		return Pixel(v)
	}
}
