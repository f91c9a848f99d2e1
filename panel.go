package panels

// Panel is the base of the multi-child containers. Its children are arranged
// together, so an arrange-only change to one child re-arranges the panel.
type Panel struct {
	Node
}

func (p *Panel) initPanel(self Layouter) {
	p.Init(self)
	p.panel = true
}

// Add appends children in order. A child that already has a parent is
// detached from it first.
func (p *Panel) Add(children ...Element) {
	for _, child := range children {
		p.attach(-1, child)
	}
}

// Insert places child at index, shifting later children. An out-of-range
// index appends.
func (p *Panel) Insert(index int, child Element) {
	p.attach(index, child)
}

// Remove detaches child. Returns true if the child was found and removed.
func (p *Panel) Remove(child Element) bool {
	return p.detach(child)
}

// RemoveAll detaches every child.
func (p *Panel) RemoveAll() {
	p.detachAll()
}

// Children returns the children in layout order.
func (p *Panel) Children() []Element {
	return p.children
}

// visibleChildren returns the children that are not collapsed.
func (p *Panel) visibleChildren() []Element {
	out := make([]Element, 0, len(p.children))
	for _, child := range p.children {
		if !isCollapsed(child) {
			out = append(out, child)
		}
	}
	return out
}

func isCollapsed(e Element) bool {
	return e.node().Visibility() == Collapsed
}
