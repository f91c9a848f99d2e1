package panels

import "math"

// StackPanel lines its children up along one axis.
type StackPanel struct {
	Panel
}

// NewStackPanel creates a vertical StackPanel holding children.
func NewStackPanel(children ...Element) *StackPanel {
	s := &StackPanel{}
	s.initPanel(s)
	s.Add(children...)
	return s
}

// MeasureOverride gives every child unlimited room along the stack axis and
// the available cross extent. The result is the sum along the stack axis and
// the largest child across it.
func (s *StackPanel) MeasureOverride(available Size) Size {
	horizontal := s.Orientation() == Horizontal
	constraint := available
	if horizontal {
		constraint.Width = math.Inf(1)
	} else {
		constraint.Height = math.Inf(1)
	}

	var along, across float64
	visible := 0
	for _, child := range s.children {
		d := child.Measure(constraint)
		if isCollapsed(child) {
			continue
		}
		visible++
		if horizontal {
			along += d.Width
			across = math.Max(across, d.Height)
		} else {
			along += d.Height
			across = math.Max(across, d.Width)
		}
	}
	if visible > 1 {
		along += s.Spacing() * float64(visible-1)
	}

	if horizontal {
		return NewSize(along, across)
	}
	return NewSize(across, along)
}

// ArrangeOverride places children at a running offset, each with the panel's
// full cross extent and its own desired stack-axis size.
func (s *StackPanel) ArrangeOverride(finalRect Rect) Size {
	horizontal := s.Orientation() == Horizontal
	offset := 0.0
	first := true
	for _, child := range s.children {
		if isCollapsed(child) {
			continue
		}
		if !first {
			offset += s.Spacing()
		}
		first = false

		d := child.DesiredSize()
		if horizontal {
			child.Arrange(NewRect(finalRect.X+offset, finalRect.Y, d.Width, finalRect.Height))
			offset += d.Width
		} else {
			child.Arrange(NewRect(finalRect.X, finalRect.Y+offset, finalRect.Width, d.Height))
			offset += d.Height
		}
	}
	return finalRect.Size()
}
