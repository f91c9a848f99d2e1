package panels

import "math"

// WrapPanel flows children along its Orientation and starts a new line when
// the next child would overflow. ItemWidth and ItemHeight, when set, replace
// every child's measured size.
type WrapPanel struct {
	Panel

	lines []int
}

// NewWrapPanel creates a horizontal WrapPanel holding children.
func NewWrapPanel(children ...Element) *WrapPanel {
	w := &WrapPanel{}
	w.initPanel(w)
	w.Add(children...)
	return w
}

// Lines returns the number of children on each line from the last arrange.
func (w *WrapPanel) Lines() []int {
	out := make([]int, len(w.lines))
	copy(out, w.lines)
	return out
}

// itemSize returns the size a child occupies in the flow.
func (w *WrapPanel) itemSize(child Element) Size {
	size := child.DesiredSize()
	if iw := w.ItemWidth(); !math.IsNaN(iw) {
		size.Width = iw
	}
	if ih := w.ItemHeight(); !math.IsNaN(ih) {
		size.Height = ih
	}
	return size
}

// split divides a size into its flow-axis and line-axis extents.
func (w *WrapPanel) split(s Size) (along, across float64) {
	if w.Orientation() == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func (w *WrapPanel) join(along, across float64) Size {
	if w.Orientation() == Horizontal {
		return NewSize(along, across)
	}
	return NewSize(across, along)
}

// wrapLine is one line of the flow: the children it holds and its thickness.
type wrapLine struct {
	children []Element
	along    float64
	across   float64
}

// flow breaks the visible children into lines no longer than limit. A line
// holding no child yet never breaks.
func (w *WrapPanel) flow(limit float64) []wrapLine {
	var lines []wrapLine
	var cur wrapLine
	for _, child := range w.children {
		if isCollapsed(child) {
			continue
		}
		along, across := w.split(w.itemSize(child))
		if len(cur.children) > 0 && cur.along+along > limit {
			lines = append(lines, cur)
			cur = wrapLine{}
		}
		cur.children = append(cur.children, child)
		cur.along += along
		cur.across = math.Max(cur.across, across)
	}
	if len(cur.children) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// MeasureOverride measures children against the item size (or the available
// size) and returns the extent of the greedy line packing.
func (w *WrapPanel) MeasureOverride(available Size) Size {
	constraint := available
	if iw := w.ItemWidth(); !math.IsNaN(iw) {
		constraint.Width = iw
	}
	if ih := w.ItemHeight(); !math.IsNaN(ih) {
		constraint.Height = ih
	}
	for _, child := range w.children {
		child.Measure(constraint)
	}

	limit, _ := w.split(available)
	var along, across float64
	for _, line := range w.flow(limit) {
		along = math.Max(along, line.along)
		across += line.across
	}
	return w.join(along, across)
}

// ArrangeOverride places each line at the running cross offset; children sit
// side by side along the line, each as thick as the line.
func (w *WrapPanel) ArrangeOverride(finalRect Rect) Size {
	limit, _ := w.split(finalRect.Size())
	lines := w.flow(limit)

	w.lines = w.lines[:0]
	crossOffset := 0.0
	for _, line := range lines {
		w.lines = append(w.lines, len(line.children))
		offset := 0.0
		for _, child := range line.children {
			along, _ := w.split(w.itemSize(child))
			var slot Rect
			if w.Orientation() == Horizontal {
				slot = NewRect(finalRect.X+offset, finalRect.Y+crossOffset, along, line.across)
			} else {
				slot = NewRect(finalRect.X+crossOffset, finalRect.Y+offset, line.across, along)
			}
			child.Arrange(slot)
			offset += along
		}
		crossOffset += line.across
	}
	return finalRect.Size()
}
