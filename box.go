package panels

// Box is a content-less leaf sized only by its Width, Height and min/max
// properties. It is useful as a spacer or as a placeholder for content
// drawn by the renderer.
type Box struct {
	Node
}

// NewBox creates an empty Box.
func NewBox() *Box {
	b := &Box{}
	b.Init(b)
	return b
}

// MeasureOverride implements Layouter. A Box has no content.
func (b *Box) MeasureOverride(available Size) Size {
	return Size{}
}

// ArrangeOverride implements Layouter.
func (b *Box) ArrangeOverride(finalRect Rect) Size {
	return finalRect.Size()
}
