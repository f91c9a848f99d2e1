package panels

import "math"

// ScrollBar is the leaf a ScrollViewer shows for one axis. The thumb geometry
// is derived from Maximum (the scrolled extent), ViewportSize and Value on
// every arrange.
type ScrollBar struct {
	Node

	active bool
	thumb  Rect
}

// NewScrollBar creates a ScrollBar for the given axis.
func NewScrollBar(orientation Orientation) *ScrollBar {
	s := &ScrollBar{active: true}
	s.Init(s)
	s.SetOrientation(orientation)
	return s
}

// Active reports whether the owning ScrollViewer shows the bar.
func (s *ScrollBar) Active() bool {
	return s.active
}

// ThumbRect returns the absolute thumb rect from the last arrange.
func (s *ScrollBar) ThumbRect() Rect {
	return s.thumb
}

// update copies the owner's scroll state. The owner arranges the bar right
// after, which clears the arrange invalidation these writes cause.
func (s *ScrollBar) update(active bool, maximum, viewport, value float64) {
	s.active = active
	if s.Maximum() != maximum || s.ViewportSize() != viewport || s.Value() != value {
		scrollBarMaximumProperty.Set(s, maximum)
		scrollBarViewportSizeProperty.Set(s, viewport)
		scrollBarValueProperty.Set(s, value)
	}
}

// MeasureOverride implements Layouter. A bar wants its configured thickness
// across and nothing along its axis.
func (s *ScrollBar) MeasureOverride(available Size) Size {
	thickness := s.Env().ScrollBarThickness
	if s.Orientation() == Horizontal {
		return NewSize(0, thickness)
	}
	return NewSize(thickness, 0)
}

// ArrangeOverride computes the thumb: its length is proportional to the
// visible share of the extent, never below the minimum thumb length, and its
// offset maps Value onto the free track.
func (s *ScrollBar) ArrangeOverride(finalRect Rect) Size {
	track := finalRect.Height
	if s.Orientation() == Horizontal {
		track = finalRect.Width
	}
	length, offset := ThumbGeometry(track, s.Maximum(), s.ViewportSize(), s.Value(), s.Env().MinThumbLength)

	if s.Orientation() == Horizontal {
		s.thumb = NewRect(finalRect.X+offset, finalRect.Y, length, finalRect.Height)
	} else {
		s.thumb = NewRect(finalRect.X, finalRect.Y+offset, finalRect.Width, length)
	}
	return finalRect.Size()
}

// ThumbGeometry returns the thumb length and offset along a track of the
// given length for a scrolled extent, a viewport and a scroll value.
func ThumbGeometry(track, extent, viewport, value, minThumb float64) (length, offset float64) {
	if track <= 0 {
		return 0, 0
	}
	if extent <= viewport || extent <= 0 {
		return track, 0
	}
	length = math.Min(track, math.Max(minThumb, track*viewport/extent))
	maxScroll := extent - viewport
	value = math.Max(0, math.Min(value, maxScroll))
	offset = value * (track - length) / maxScroll
	return length, offset
}
