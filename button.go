package panels

import "github.com/grindlemire/go-panels/internal/property"

// Button is a padded, optionally bordered single-child element. Its content
// is either an arbitrary element or, when Text is set, an internal TextBlock.
type Button struct {
	Node

	content Element
	label   *TextBlock
}

// NewButton creates a Button labelled with text.
func NewButton(text string) *Button {
	b := &Button{}
	b.Init(b)
	b.SetText(text)
	return b
}

// Content returns the element shown inside the button.
func (b *Button) Content() Element {
	return b.content
}

// SetContent shows e instead of the text label.
func (b *Button) SetContent(e Element) {
	b.replaceChild(b.content, e)
	b.content = e
	b.label = nil
}

// Label returns the internal TextBlock, or nil when the button shows an
// element set with SetContent.
func (b *Button) Label() *TextBlock {
	return b.label
}

func buttonTextChanged(o property.Owner, _, text string) {
	b, ok := o.(*Button)
	if !ok {
		return
	}
	if b.label == nil {
		label := NewTextBlock(text)
		b.SetContent(label)
		b.label = label
		return
	}
	b.label.SetText(text)
}

func (b *Button) inset() Thickness {
	return b.BorderThickness().Add(b.Padding())
}

// MeasureOverride implements Layouter.
func (b *Button) MeasureOverride(available Size) Size {
	return measureInset(b.content, available, b.inset())
}

// ArrangeOverride implements Layouter.
func (b *Button) ArrangeOverride(finalRect Rect) Size {
	arrangeInset(b.content, finalRect, b.inset())
	return finalRect.Size()
}
