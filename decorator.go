package panels

// replaceChild swaps the element held in a single-child slot.
func (n *Node) replaceChild(old, child Element) {
	if old != nil {
		n.detach(old)
	}
	if child != nil {
		n.attach(-1, child)
	}
}

// measureInset measures child inside available less the inset and returns
// the child's desired size grown by the inset.
func measureInset(child Element, available Size, inset Thickness) Size {
	if child == nil {
		return inset.Size()
	}
	return child.Measure(available.Sub(inset.Size())).Add(inset.Size())
}

func arrangeInset(child Element, finalRect Rect, inset Thickness) {
	if child != nil {
		child.Arrange(finalRect.Inset(inset))
	}
}
