package panels

import "math"

// Canvas positions children at explicit offsets from its edges using the
// attached Left, Top, Right and Bottom values. Children always get their
// desired size; ZIndex only changes paint order.
type Canvas struct {
	Panel
}

// NewCanvas creates a Canvas holding children.
func NewCanvas(children ...Element) *Canvas {
	c := &Canvas{}
	c.initPanel(c)
	c.Add(children...)
	return c
}

// MeasureOverride measures children with unlimited room. The desired size is
// the bounding extent of the children anchored by Left and Top.
func (c *Canvas) MeasureOverride(available Size) Size {
	var extent Size
	for _, child := range c.children {
		d := child.Measure(Infinite())
		if isCollapsed(child) {
			continue
		}
		x, y := GetLeft(child), GetTop(child)
		if math.IsNaN(x) {
			x = 0
		}
		if math.IsNaN(y) {
			y = 0
		}
		extent = extent.Max(NewSize(x+d.Width, y+d.Height))
	}
	return extent.Sanitize()
}

// ArrangeOverride places each child at Left (or width-Right-desired) and Top
// (or height-Bottom-desired), falling back to the origin.
func (c *Canvas) ArrangeOverride(finalRect Rect) Size {
	for _, child := range c.children {
		if isCollapsed(child) {
			continue
		}
		d := child.DesiredSize()
		x, y := 0.0, 0.0
		if left := GetLeft(child); !math.IsNaN(left) {
			x = left
		} else if right := GetRight(child); !math.IsNaN(right) {
			x = finalRect.Width - right - d.Width
		}
		if top := GetTop(child); !math.IsNaN(top) {
			y = top
		} else if bottom := GetBottom(child); !math.IsNaN(bottom) {
			y = finalRect.Height - bottom - d.Height
		}
		child.Arrange(NewRect(finalRect.X+x, finalRect.Y+y, d.Width, d.Height))
	}
	return finalRect.Size()
}
