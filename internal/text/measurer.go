package text

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ErrMalformedText is returned when text is not valid UTF-8.
var ErrMalformedText = errors.New("malformed text")

// Measurer sizes single lines of text.
type Measurer interface {
	// Width returns the advance width of s, which contains no newlines.
	Width(s string) (float64, error)

	// LineHeight returns the height of one line.
	LineHeight() float64
}

func validate(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8 in %q", ErrMalformedText, s)
	}
	return nil
}

// Cells measures text in terminal cells: one cell per narrow rune, two per
// wide rune, zero for combining marks. Lines are one cell tall.
type Cells struct {
	// EastAsianAmbiguousWide counts ambiguous-width runes as two cells.
	EastAsianAmbiguousWide bool
}

// Width implements Measurer.
func (c Cells) Width(s string) (float64, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = c.EastAsianAmbiguousWide
	return float64(cond.StringWidth(s)), nil
}

// LineHeight implements Measurer.
func (c Cells) LineHeight() float64 {
	return 1
}
