package panels

import (
	"math"

	"github.com/grindlemire/go-panels/internal/debug"
	"github.com/grindlemire/go-panels/internal/layout"
	"github.com/grindlemire/go-panels/internal/property"
)

// --- Invalidation ---

// InvalidateMeasure marks the node and its ancestors measure-dirty. The walk
// stops at the first node that is already dirty.
func (n *Node) InvalidateMeasure() {
	for x := n; x != nil && x.measureClean; x = x.parent {
		x.measureClean = false
		x.arrangeClean = false
	}
}

// InvalidateArrange marks the node arrange-dirty, along with its parent when
// the parent is a panel. Other ancestors only record that a descendant needs
// arranging, so the next pass from the root reaches it without redoing their
// own arrangement.
func (n *Node) InvalidateArrange() {
	n.arrangeClean = false
	p := n.parent
	if p != nil && p.panel {
		p.arrangeClean = false
		p = p.parent
	}
	for ; p != nil; p = p.parent {
		p.subtreeArrangeDirty = true
	}
}

// PropertyChanged implements property.Owner by applying the descriptor's
// invalidation flags.
func (n *Node) PropertyChanged(d *property.Descriptor) {
	f := d.Flags
	if f.Has(property.AffectsMeasure) {
		n.InvalidateMeasure()
	}
	if f.Has(property.AffectsArrange) {
		n.InvalidateArrange()
	}
	if n.parent != nil {
		if f.Has(property.AffectsParentMeasure) {
			n.parent.InvalidateMeasure()
		}
		if f.Has(property.AffectsParentArrange) {
			n.parent.InvalidateArrange()
		}
	}
	if f.Has(property.AffectsRender) {
		n.visualDirty = true
	}
}

func (n *Node) needsArrange() bool {
	return !n.arrangeClean || n.subtreeArrangeDirty
}

// --- Measure ---

// Measure computes the desired size of the element, margin included, for the
// given available size. Collapsed elements measure as (0,0). When nothing was
// invalidated since the last call with the same available size, the cached
// result is returned without calling MeasureOverride.
func (n *Node) Measure(available Size) Size {
	available = available.Sanitize()

	if n.Visibility() == Collapsed {
		n.desired = Size{}
		n.unclipped = Size{}
		return n.desired
	}

	if n.measureClean && n.measured && available == n.lastAvailable {
		return n.desired
	}

	margin := n.Margin()
	minW, maxW := n.MinWidth(), n.MaxWidth()
	minH, maxH := n.MinHeight(), n.MaxHeight()
	width, height := n.Width(), n.Height()

	inner := available.Sub(margin.Size())
	if !math.IsNaN(width) {
		inner.Width = width
	}
	if !math.IsNaN(height) {
		inner.Height = height
	}
	inner.Width = layout.Clamp(inner.Width, minW, maxW)
	inner.Height = layout.Clamp(inner.Height, minH, maxH)

	content := n.layouter().MeasureOverride(inner).Finite()

	w, h := content.Width, content.Height
	if !math.IsNaN(width) {
		w = width
	}
	if !math.IsNaN(height) {
		h = height
	}
	w = layout.Clamp(w, minW, maxW)
	h = layout.Clamp(h, minH, maxH)
	n.unclipped = NewSize(w, h).Finite()

	desired := n.unclipped.Add(margin.Size())
	n.desired = desired.Min(available)

	n.lastAvailable = available
	n.measured = true
	n.measureClean = true
	n.arrangeClean = false

	debug.Log("measure %T: available=%v desired=%v", n.layouter(), available, n.desired)
	return n.desired
}

// MeasureOverride is the default content measurement: children are measured
// against the whole available size and the largest result is returned.
func (n *Node) MeasureOverride(available Size) Size {
	var size Size
	for _, child := range n.children {
		size = size.Max(child.Measure(available))
	}
	return size
}

// --- Arrange ---

// Arrange positions the element inside finalRect, an absolute rectangle that
// includes the margin. Alignment and explicit sizes decide the element's own
// bounds inside it. A clean element arranged into the same rect only revisits
// descendants that asked for it.
func (n *Node) Arrange(finalRect Rect) Size {
	finalRect = finalRect.Sanitize()

	if n.Visibility() == Collapsed {
		n.slot = finalRect
		n.renderSize = Size{}
		n.bounds = Rect{X: finalRect.X, Y: finalRect.Y}
		return n.renderSize
	}

	if !n.measureClean {
		// Arranging an unmeasured node is a host error; recover by measuring
		// against the last constraint, or the slot itself.
		avail := finalRect.Size()
		if n.measured {
			avail = n.lastAvailable
		}
		n.Measure(avail)
	}

	if n.arrangeClean && n.arranged && finalRect == n.slot {
		if n.subtreeArrangeDirty {
			for _, child := range n.children {
				cn := child.node()
				if cn.arranged && cn.needsArrange() {
					child.Arrange(cn.slot)
				}
			}
			n.subtreeArrangeDirty = false
		}
		return n.renderSize
	}

	n.slot = finalRect
	inner := finalRect.Inset(n.Margin())

	w := arrangeExtent(inner.Width, n.unclipped.Width, n.Width(), n.MinWidth(), n.MaxWidth(), n.HorizontalAlignment())
	h := arrangeExtent(inner.Height, n.unclipped.Height, n.Height(), n.MinHeight(), n.MaxHeight(), n.VerticalAlignment())
	x := inner.X + layout.AlignOffset(n.HorizontalAlignment(), inner.Width, w)
	y := inner.Y + layout.AlignOffset(n.VerticalAlignment(), inner.Height, h)

	used := n.layouter().ArrangeOverride(NewRect(x, y, w, h)).Finite()

	n.renderSize = used
	n.bounds = NewRect(x, y, used.Width, used.Height)
	n.arranged = true
	n.arrangeClean = true
	n.subtreeArrangeDirty = false

	debug.Log("arrange %T: slot=%v bounds=%v", n.layouter(), finalRect, n.bounds)
	return n.renderSize
}

// arrangeExtent resolves the element's size along one axis: the explicit
// size if set, the whole slot for Stretch, else the desired size. The
// [min, max] clamp is applied last.
func arrangeExtent(slot, desired, explicit, minV, maxV float64, a Alignment) float64 {
	var size float64
	switch {
	case !math.IsNaN(explicit):
		size = explicit
	case a == AlignStretch:
		size = slot
	default:
		size = desired
	}
	return layout.Clamp(size, minV, maxV)
}

// ArrangeOverride is the default arrangement: every child gets the whole rect.
func (n *Node) ArrangeOverride(finalRect Rect) Size {
	for _, child := range n.children {
		child.Arrange(finalRect)
	}
	return finalRect.Size()
}
