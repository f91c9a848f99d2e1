package text

import (
	"math"
	"strings"

	"github.com/grindlemire/go-panels/internal/layout"
)

// Wrapping selects how text that is wider than its box is laid out.
type Wrapping uint8

const (
	NoWrap Wrapping = iota // Lines only break at newlines
	Wrap                   // Lines also break between words, or inside over-long words
)

func (w Wrapping) String() string {
	if w == Wrap {
		return "Wrap"
	}
	return "NoWrap"
}

// WrapLines splits s into display lines. Newlines always break. With Wrap and a
// finite maxWidth, words move to the next line when they would overflow, and a
// word wider than maxWidth is split between runes.
func WrapLines(m Measurer, s string, maxWidth float64, mode Wrapping) ([]string, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	paragraphs := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if mode == NoWrap || math.IsInf(maxWidth, 1) {
		return paragraphs, nil
	}
	maxWidth = layout.NonNegative(maxWidth)

	var lines []string
	for _, p := range paragraphs {
		wrapped, err := wrapParagraph(m, p, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, wrapped...)
	}
	return lines, nil
}

func wrapParagraph(m Measurer, p string, maxWidth float64) ([]string, error) {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}, nil
	}

	var lines []string
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		w, err := m.Width(candidate)
		if err != nil {
			return nil, err
		}
		if w <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		// The word alone may still overflow.
		pieces, err := breakWord(m, word, maxWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	return append(lines, current), nil
}

// breakWord splits word into pieces no wider than maxWidth. Every piece holds
// at least one rune so progress is guaranteed.
func breakWord(m Measurer, word string, maxWidth float64) ([]string, error) {
	var pieces []string
	var b strings.Builder
	for _, r := range word {
		next := b.String() + string(r)
		w, err := m.Width(next)
		if err != nil {
			return nil, err
		}
		if w > maxWidth && b.Len() > 0 {
			pieces = append(pieces, b.String())
			b.Reset()
		}
		b.WriteRune(r)
	}
	return append(pieces, b.String()), nil
}

// Measure wraps s and returns the resulting lines and the size of the block
// they occupy: the widest line by the number of lines times the line height.
func Measure(m Measurer, s string, maxWidth float64, mode Wrapping) ([]string, layout.Size, error) {
	lines, err := WrapLines(m, s, maxWidth, mode)
	if err != nil {
		return nil, layout.Size{}, err
	}
	width := 0.0
	for _, line := range lines {
		w, err := m.Width(line)
		if err != nil {
			return nil, layout.Size{}, err
		}
		width = math.Max(width, w)
	}
	return lines, layout.NewSize(width, float64(len(lines))*m.LineHeight()), nil
}
