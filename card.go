package panels

import "math"

// Card is a bordered box with optional header and footer sections. The
// header and footer take their desired heights; the content gets the rest.
type Card struct {
	Node

	header  Element
	content Element
	footer  Element
}

// NewCard creates a Card with the given content (which may be nil).
func NewCard(content Element) *Card {
	c := &Card{}
	c.Init(c)
	c.SetContent(content)
	return c
}

func (c *Card) Header() Element  { return c.header }
func (c *Card) Content() Element { return c.content }
func (c *Card) Footer() Element  { return c.footer }

// SetHeader replaces the header section.
func (c *Card) SetHeader(e Element) {
	c.setSection(&c.header, e)
}

// SetContent replaces the content section.
func (c *Card) SetContent(e Element) {
	c.setSection(&c.content, e)
}

// SetFooter replaces the footer section.
func (c *Card) SetFooter(e Element) {
	c.setSection(&c.footer, e)
}

// setSection keeps the children in header, content, footer order.
func (c *Card) setSection(slot *Element, e Element) {
	if *slot != nil {
		c.detach(*slot)
	}
	*slot = e
	if e == nil {
		return
	}
	index := 0
	for _, s := range c.sections() {
		if s == e {
			break
		}
		index++
	}
	c.attach(index, e)
}

// sections returns the present sections in order.
func (c *Card) sections() []Element {
	var out []Element
	for _, s := range []Element{c.header, c.content, c.footer} {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

func (c *Card) inset() Thickness {
	return c.BorderThickness().Add(c.Padding())
}

// gaps returns the spacing between the visible sections.
func (c *Card) gaps() float64 {
	visible := 0
	for _, s := range c.sections() {
		if !isCollapsed(s) {
			visible++
		}
	}
	if visible < 2 {
		return 0
	}
	return c.Spacing() * float64(visible-1)
}

// MeasureOverride implements Layouter.
func (c *Card) MeasureOverride(available Size) Size {
	inset := c.inset().Size()
	inner := available.Sub(inset)
	remaining := NewSize(inner.Width, math.Max(0, inner.Height-c.gaps()))

	var width, height float64
	for _, s := range []Element{c.header, c.footer, c.content} {
		if s == nil {
			continue
		}
		d := s.Measure(remaining)
		width = math.Max(width, d.Width)
		height += d.Height
		remaining.Height = math.Max(0, remaining.Height-d.Height)
	}
	return NewSize(width, height+c.gaps()).Add(inset)
}

// ArrangeOverride implements Layouter.
func (c *Card) ArrangeOverride(finalRect Rect) Size {
	inner := finalRect.Inset(c.inset())
	spacing := c.Spacing()

	var headerH, footerH float64
	if c.header != nil {
		headerH = c.header.DesiredSize().Height
	}
	if c.footer != nil {
		footerH = c.footer.DesiredSize().Height
	}
	contentH := math.Max(0, inner.Height-headerH-footerH-c.gaps())

	y := inner.Y
	place := func(e Element, h float64) {
		if e == nil {
			return
		}
		e.Arrange(NewRect(inner.X, y, inner.Width, h))
		if !isCollapsed(e) {
			y += h + spacing
		}
	}
	place(c.header, headerH)
	place(c.content, contentH)
	place(c.footer, footerH)
	return finalRect.Size()
}
