package panels

import (
	"fmt"

	"github.com/grindlemire/go-panels/internal/debug"
	"github.com/grindlemire/go-panels/internal/text"
)

// TextBlock is a leaf that displays text measured by the environment's
// text measurer.
type TextBlock struct {
	Node

	lines []string
}

// NewTextBlock creates a TextBlock showing s.
func NewTextBlock(s string) *TextBlock {
	t := &TextBlock{}
	t.Init(t)
	t.SetText(s)
	return t
}

// Lines returns the display lines computed by the last measure.
func (t *TextBlock) Lines() []string {
	return t.lines
}

// MeasureOverride implements Layouter. With Wrap the text breaks at the
// available width minus padding. Text the measurer rejects, or a measurer that
// panics, measures as zero.
func (t *TextBlock) MeasureOverride(available Size) Size {
	pad := t.Padding().Size()
	if t.Text() == "" {
		t.lines = nil
		return pad
	}

	inner := available.Sub(pad)
	lines, size, err := measureText(t.Env().Measurer, t.Text(), inner.Width, t.TextWrapping())
	if err != nil {
		debug.Log("textblock: %v", err)
		t.lines = nil
		return Size{}
	}
	t.lines = lines
	return size.Add(pad)
}

// ArrangeOverride implements Layouter.
func (t *TextBlock) ArrangeOverride(finalRect Rect) Size {
	return finalRect.Size()
}

// measureText runs a pluggable measurer, turning a panic into an error so one
// bad measurer cannot abort the rest of the pass.
func measureText(m text.Measurer, s string, width float64, mode TextWrapping) (lines []string, size Size, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines, size, err = nil, Size{}, fmt.Errorf("measurer panicked: %v", r)
		}
	}()
	return text.Measure(m, s, width, mode)
}
