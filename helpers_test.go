package panels

import "math"

// fixedElement is a leaf with a constant content size that counts how often
// its layout hooks run.
type fixedElement struct {
	Node

	size     Size
	measures int
	arranges int
}

func newFixed(width, height float64) *fixedElement {
	f := &fixedElement{size: NewSize(width, height)}
	f.Init(f)
	return f
}

func (f *fixedElement) MeasureOverride(available Size) Size {
	f.measures++
	return f.size
}

func (f *fixedElement) ArrangeOverride(finalRect Rect) Size {
	f.arranges++
	return finalRect.Size()
}

func mustHost(t interface {
	Helper()
	Fatalf(string, ...any)
}, root Element, opts ...HostOption) *Host {
	t.Helper()
	h, err := NewHost(root, opts...)
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}
	return h
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func rectNear(a, b Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Width, b.Width) && near(a.Height, b.Height)
}
