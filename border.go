package panels

// Border surrounds a single child with a border and padding. The border's
// brush and corner radius are for the renderer only.
type Border struct {
	Node

	child Element
}

// NewBorder creates a Border around child (which may be nil).
func NewBorder(child Element) *Border {
	b := &Border{}
	b.Init(b)
	b.SetChild(child)
	return b
}

// Child returns the decorated element.
func (b *Border) Child() Element {
	return b.child
}

// SetChild replaces the decorated element.
func (b *Border) SetChild(child Element) {
	b.replaceChild(b.child, child)
	b.child = child
}

func (b *Border) inset() Thickness {
	return b.BorderThickness().Add(b.Padding())
}

// MeasureOverride implements Layouter.
func (b *Border) MeasureOverride(available Size) Size {
	return measureInset(b.child, available, b.inset())
}

// ArrangeOverride implements Layouter.
func (b *Border) ArrangeOverride(finalRect Rect) Size {
	arrangeInset(b.child, finalRect, b.inset())
	return finalRect.Size()
}
