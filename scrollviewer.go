package panels

import (
	"math"

	"github.com/grindlemire/go-panels/internal/debug"
)

// ScrollViewer shows a window onto content that may be larger than itself.
// The content is measured with unlimited room on every scrollable axis; the
// viewport is what remains of the ScrollViewer after visible scroll bars.
type ScrollViewer struct {
	Node

	content Element
	hBar    *ScrollBar
	vBar    *ScrollBar

	offsetX, offsetY      float64
	scrollToBottomPending bool

	extent   Size
	viewport Size
	showH    bool
	showV    bool
}

// NewScrollViewer creates a ScrollViewer around content (which may be nil).
func NewScrollViewer(content Element) *ScrollViewer {
	s := &ScrollViewer{
		hBar: NewScrollBar(Horizontal),
		vBar: NewScrollBar(Vertical),
	}
	s.Init(s)
	s.SetContent(content)
	s.attach(-1, s.hBar)
	s.attach(-1, s.vBar)
	return s
}

// Content returns the scrolled element.
func (s *ScrollViewer) Content() Element {
	return s.content
}

// SetContent replaces the scrolled element and resets the offsets.
func (s *ScrollViewer) SetContent(content Element) {
	if s.content != nil {
		s.detach(s.content)
	}
	s.content = content
	s.offsetX, s.offsetY = 0, 0
	if content != nil {
		s.attach(0, content)
	}
}

// HorizontalBar returns the horizontal scroll bar.
func (s *ScrollViewer) HorizontalBar() *ScrollBar { return s.hBar }

// VerticalBar returns the vertical scroll bar.
func (s *ScrollViewer) VerticalBar() *ScrollBar { return s.vBar }

// --- Scroll Query Methods ---

// Offset returns the current scroll position.
func (s *ScrollViewer) Offset() Point {
	return Point{X: s.offsetX, Y: s.offsetY}
}

// ExtentSize returns the content size from the last layout pass.
func (s *ScrollViewer) ExtentSize() Size {
	return s.extent
}

// ViewportSize returns the visible area from the last layout pass.
func (s *ScrollViewer) ViewportSize() Size {
	return s.viewport
}

// ScrollableSize returns the maximum scroll offset in each direction.
func (s *ScrollViewer) ScrollableSize() Size {
	return s.extent.Sub(s.viewport)
}

// --- Scroll Control Methods ---

// ScrollTo sets the scroll offset, clamped to the scrollable range known
// from the last pass. Offsets are clamped again on every arrange.
func (s *ScrollViewer) ScrollTo(x, y float64) {
	maxScroll := s.ScrollableSize()
	x = clampOffset(x, maxScroll.Width)
	y = clampOffset(y, maxScroll.Height)
	s.scrollToBottomPending = false
	if x != s.offsetX || y != s.offsetY {
		s.offsetX, s.offsetY = x, y
		s.InvalidateArrange()
	}
}

// ScrollBy adjusts the scroll offset by a delta.
func (s *ScrollViewer) ScrollBy(dx, dy float64) {
	s.ScrollTo(s.offsetX+dx, s.offsetY+dy)
}

// ScrollToTop scrolls to the top of the content.
func (s *ScrollViewer) ScrollToTop() {
	s.ScrollTo(s.offsetX, 0)
}

// ScrollToBottom scrolls to the bottom of the content. The position is
// resolved again after the next arrange, so content that grows before then
// is still followed.
func (s *ScrollViewer) ScrollToBottom() {
	s.ScrollTo(s.offsetX, s.ScrollableSize().Height)
	s.scrollToBottomPending = true
	s.InvalidateArrange()
}

// ScrollIntoView scrolls minimally to make a descendant fully visible, using
// the bounds from the last arrange. Does nothing if e is not inside the
// scrolled content.
func (s *ScrollViewer) ScrollIntoView(e Element) {
	if s.content == nil || !isDescendant(s.content, e) {
		return
	}

	target := e.Bounds()
	origin := s.content.Bounds()
	relX := target.X - origin.X
	relY := target.Y - origin.Y

	x, y := s.offsetX, s.offsetY
	if s.HorizontalScrollBarVisibility() != ScrollBarDisabled {
		if relX < x {
			x = relX
		} else if relX+target.Width > x+s.viewport.Width {
			x = relX + target.Width - s.viewport.Width
		}
	}
	if s.VerticalScrollBarVisibility() != ScrollBarDisabled {
		if relY < y {
			y = relY
		} else if relY+target.Height > y+s.viewport.Height {
			y = relY + target.Height - s.viewport.Height
		}
	}
	s.ScrollTo(x, y)
}

func isDescendant(root, e Element) bool {
	for p := e; p != nil; p = p.Parent() {
		if p == root {
			return true
		}
	}
	return false
}

func clampOffset(v, maxScroll float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return math.Min(v, math.Max(0, maxScroll))
}

// --- Layout ---

// barVisible reports whether an axis shows its bar for a given overflow.
func barVisible(v ScrollBarVisibility, overflows bool) bool {
	switch v {
	case ScrollBarVisible:
		return true
	case ScrollBarAuto:
		return overflows
	default:
		return false
	}
}

// resolveBars decides bar visibility for a content extent inside size.
// Visibility is first computed as if no bar were present; a bar that turns
// out to be needed shrinks the other axis, which is then checked once more.
func (s *ScrollViewer) resolveBars(extent, size Size) (showH, showV bool) {
	thickness := s.Env().ScrollBarThickness
	hv, vv := s.HorizontalScrollBarVisibility(), s.VerticalScrollBarVisibility()

	showH = barVisible(hv, extent.Width > size.Width)
	showV = barVisible(vv, extent.Height > size.Height)
	if showV && !showH {
		showH = barVisible(hv, extent.Width > size.Width-thickness)
	}
	if showH && !showV {
		showV = barVisible(vv, extent.Height > size.Height-thickness)
	}
	return showH, showV
}

func (s *ScrollViewer) viewportFor(size Size, showH, showV bool) Size {
	thickness := s.Env().ScrollBarThickness
	vp := size
	if showV {
		vp.Width -= thickness
	}
	if showH {
		vp.Height -= thickness
	}
	return vp.Sanitize()
}

// contentConstraint is unlimited on scrolling axes and the viewport on
// disabled ones.
func (s *ScrollViewer) contentConstraint(viewport Size) Size {
	c := Infinite()
	if s.HorizontalScrollBarVisibility() == ScrollBarDisabled {
		c.Width = viewport.Width
	}
	if s.VerticalScrollBarVisibility() == ScrollBarDisabled {
		c.Height = viewport.Height
	}
	return c
}

// MeasureOverride measures the content, resolves which bars are needed and
// asks for the content size plus the bars, bounded by the available size.
func (s *ScrollViewer) MeasureOverride(available Size) Size {
	var extent Size
	if s.content != nil {
		extent = s.content.Measure(s.contentConstraint(available))
	}
	showH, showV := s.resolveBars(extent, available)
	viewport := s.viewportFor(available, showH, showV)

	// A disabled axis is constrained to the viewport, which a bar may have
	// just narrowed.
	if s.content != nil && (showH || showV) {
		extent = s.content.Measure(s.contentConstraint(viewport))
	}

	s.hBar.Measure(available)
	s.vBar.Measure(available)

	thickness := s.Env().ScrollBarThickness
	desired := extent
	if showV {
		desired.Width += thickness
	}
	if showH {
		desired.Height += thickness
	}
	return desired.Min(available)
}

// ArrangeOverride resolves the bars against the final size, clamps the
// offsets and shifts the content by them.
func (s *ScrollViewer) ArrangeOverride(finalRect Rect) Size {
	var extent Size
	if s.content != nil {
		extent = s.content.DesiredSize()
	}
	size := finalRect.Size()
	s.showH, s.showV = s.resolveBars(extent, size)
	s.viewport = s.viewportFor(size, s.showH, s.showV)
	if s.HorizontalScrollBarVisibility() == ScrollBarDisabled {
		extent.Width = math.Min(extent.Width, s.viewport.Width)
	}
	if s.VerticalScrollBarVisibility() == ScrollBarDisabled {
		extent.Height = math.Min(extent.Height, s.viewport.Height)
	}
	s.extent = extent

	maxScroll := s.ScrollableSize()
	if s.scrollToBottomPending {
		s.offsetY = maxScroll.Height
		s.scrollToBottomPending = false
	}
	s.offsetX = clampOffset(s.offsetX, maxScroll.Width)
	s.offsetY = clampOffset(s.offsetY, maxScroll.Height)

	if s.content != nil {
		s.content.Arrange(NewRect(
			finalRect.X-s.offsetX,
			finalRect.Y-s.offsetY,
			math.Max(extent.Width, s.viewport.Width),
			math.Max(extent.Height, s.viewport.Height),
		))
	}

	thickness := s.Env().ScrollBarThickness
	s.hBar.update(s.showH, extent.Width, s.viewport.Width, s.offsetX)
	s.vBar.update(s.showV, extent.Height, s.viewport.Height, s.offsetY)
	if s.showH {
		s.hBar.Arrange(NewRect(finalRect.X, finalRect.Bottom()-thickness, s.viewport.Width, thickness))
	} else {
		s.hBar.Arrange(Rect{X: finalRect.X, Y: finalRect.Bottom()})
	}
	if s.showV {
		s.vBar.Arrange(NewRect(finalRect.Right()-thickness, finalRect.Y, thickness, s.viewport.Height))
	} else {
		s.vBar.Arrange(Rect{X: finalRect.Right(), Y: finalRect.Y})
	}

	debug.Log("scroll: extent=%v viewport=%v offset=(%v,%v) bars=(%v,%v)",
		s.extent, s.viewport, s.offsetX, s.offsetY, s.showH, s.showV)
	return size
}
