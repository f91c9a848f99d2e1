package panels

import "math"

// DockPanel attaches children to its edges in order. Each child consumes a
// strip of the remaining rectangle from the edge named by its attached Dock
// value; with LastChildFill the last visible child takes what is left.
type DockPanel struct {
	Panel
}

// NewDockPanel creates a DockPanel with LastChildFill enabled.
func NewDockPanel(children ...Element) *DockPanel {
	d := &DockPanel{}
	d.initPanel(d)
	d.Add(children...)
	return d
}

// lastFill returns the child that fills the remainder, or nil.
func (d *DockPanel) lastFill() Element {
	if !d.LastChildFill() {
		return nil
	}
	for i := len(d.children) - 1; i >= 0; i-- {
		if !isCollapsed(d.children[i]) {
			return d.children[i]
		}
	}
	return nil
}

// MeasureOverride replays the sequential edge consumption. Each child is
// measured against the space left by the children before it; the desired
// size is the largest extent any prefix of the sequence needs.
func (d *DockPanel) MeasureOverride(available Size) Size {
	var used, need Size
	for _, child := range d.children {
		remaining := available.Sub(used)
		cd := child.Measure(remaining)
		if isCollapsed(child) {
			continue
		}
		switch GetDock(child) {
		case DockLeft, DockRight:
			need.Height = math.Max(need.Height, used.Height+cd.Height)
			used.Width += cd.Width
		default:
			need.Width = math.Max(need.Width, used.Width+cd.Width)
			used.Height += cd.Height
		}
	}
	return need.Max(used)
}

// ArrangeOverride shrinks the remaining rect edge by edge in child order.
func (d *DockPanel) ArrangeOverride(finalRect Rect) Size {
	fill := d.lastFill()
	rest := finalRect
	for _, child := range d.children {
		if isCollapsed(child) {
			continue
		}
		if child == fill {
			child.Arrange(rest)
			break
		}
		cd := child.DesiredSize()
		var slot Rect
		switch GetDock(child) {
		case DockTop:
			h := math.Min(cd.Height, rest.Height)
			slot = NewRect(rest.X, rest.Y, rest.Width, h)
			rest.Y += h
			rest.Height -= h
		case DockBottom:
			h := math.Min(cd.Height, rest.Height)
			slot = NewRect(rest.X, rest.Bottom()-h, rest.Width, h)
			rest.Height -= h
		case DockRight:
			w := math.Min(cd.Width, rest.Width)
			slot = NewRect(rest.Right()-w, rest.Y, w, rest.Height)
			rest.Width -= w
		default:
			w := math.Min(cd.Width, rest.Width)
			slot = NewRect(rest.X, rest.Y, w, rest.Height)
			rest.X += w
			rest.Width -= w
		}
		child.Arrange(slot)
	}
	return finalRect.Size()
}
