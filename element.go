package panels

import (
	"github.com/grindlemire/go-panels/internal/property"
)

// Element is any node of the layout tree. Implementations embed Node, which
// provides every method, and override MeasureOverride and ArrangeOverride.
type Element interface {
	property.Owner

	// Measure computes the element's desired size under the available size.
	Measure(available Size) Size
	// Arrange positions the element inside finalRect (absolute coordinates)
	// and returns its render size.
	Arrange(finalRect Rect) Size

	InvalidateMeasure()
	InvalidateArrange()

	// LayoutChildren returns the children in layout order.
	LayoutChildren() []Element
	// Parent returns the parent element, or nil for a root.
	Parent() Element

	DesiredSize() Size
	RenderSize() Size
	Bounds() Rect
	LayoutSlot() Rect
	LayoutState() LayoutState

	node() *Node
}

// Layouter is the pair of hooks an element type overrides to implement its
// own sizing policy. MeasureOverride receives the available size with margin
// and explicit size constraints already applied and returns the content size.
// ArrangeOverride receives the aligned absolute rect and returns the size
// actually used.
type Layouter interface {
	Element
	MeasureOverride(available Size) Size
	ArrangeOverride(finalRect Rect) Size
}

// LayoutState is the cached-result state of a node.
type LayoutState uint8

const (
	// Clean nodes return cached results.
	Clean LayoutState = iota
	// MeasureDirty nodes must be measured (and then arranged) again.
	MeasureDirty
	// ArrangeDirty nodes have a valid desired size but must be arranged again.
	ArrangeDirty
)

func (s LayoutState) String() string {
	switch s {
	case MeasureDirty:
		return "MeasureDirty"
	case ArrangeDirty:
		return "ArrangeDirty"
	default:
		return "Clean"
	}
}

// Node is the base of every element. It owns the children, stores property
// values and caches the results of the last measure and arrange.
//
// The zero value is a valid, measure-dirty leaf. Types that embed Node call
// Init with themselves so overridden hooks are reached through the interface.
type Node struct {
	// Tree structure
	self     Layouter
	parent   *Node
	children []Element
	env      *Env
	panel    bool // arranges its children together

	props property.Store

	// Cached layout
	measureClean        bool
	arrangeClean        bool
	subtreeArrangeDirty bool
	visualDirty         bool
	measured            bool
	arranged            bool
	lastAvailable       Size
	desired             Size
	unclipped           Size // desired size without margin, before clipping
	renderSize          Size
	bounds              Rect
	slot                Rect
}

var _ Layouter = (*Node)(nil)

// NewNode returns a content-less node, usable as a custom element base or as
// a spacer.
func NewNode() *Node {
	n := &Node{}
	n.Init(n)
	return n
}

// Init records the outermost element embedding n. It must be called once,
// before the element joins a tree.
func (n *Node) Init(self Layouter) {
	n.self = self
}

func (n *Node) node() *Node { return n }

// Properties implements property.Owner.
func (n *Node) Properties() *property.Store { return &n.props }

func (n *Node) layouter() Layouter {
	if n.self == nil {
		return n
	}
	return n.self
}

// Parent returns the parent element, or nil if this is the root.
func (n *Node) Parent() Element {
	if n.parent == nil {
		return nil
	}
	return n.parent.layouter()
}

// LayoutChildren returns the children in layout order.
func (n *Node) LayoutChildren() []Element {
	return n.children
}

// Env returns the environment the node was attached under.
func (n *Node) Env() *Env {
	if n.env == nil {
		return defaultEnv
	}
	return n.env
}

// DesiredSize returns the result of the last Measure, including margin.
func (n *Node) DesiredSize() Size { return n.desired }

// RenderSize returns the size used by the last Arrange.
func (n *Node) RenderSize() Size { return n.renderSize }

// Bounds returns the absolute rect the element occupies after alignment.
func (n *Node) Bounds() Rect { return n.bounds }

// LayoutSlot returns the rect passed to the last Arrange.
func (n *Node) LayoutSlot() Rect { return n.slot }

// LayoutState reports which cached results are stale.
func (n *Node) LayoutState() LayoutState {
	switch {
	case !n.measureClean:
		return MeasureDirty
	case !n.arrangeClean:
		return ArrangeDirty
	default:
		return Clean
	}
}

// VisualDirty reports whether a paint-only property changed since the host
// last walked this node.
func (n *Node) VisualDirty() bool { return n.visualDirty }

// --- Children ---

// attach makes child the last (or index-th) child of n.
func (n *Node) attach(index int, child Element) {
	if child == nil {
		return
	}
	cn := child.node()
	if cn.self == nil {
		if l, ok := child.(Layouter); ok {
			cn.self = l
		}
	}
	if cn.parent != nil {
		cn.parent.detach(child)
	}
	cn.parent = n
	cn.setEnvRecursive(n.env)
	if index < 0 || index >= len(n.children) {
		n.children = append(n.children, child)
	} else {
		n.children = append(n.children, nil)
		copy(n.children[index+1:], n.children[index:])
		n.children[index] = child
	}
	cn.reset()
	n.InvalidateMeasure()
}

// detach removes child, keeping the order of the remaining children.
func (n *Node) detach(child Element) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			cn := child.node()
			cn.parent = nil
			cn.setEnvRecursive(nil)
			cn.reset()
			n.InvalidateMeasure()
			return true
		}
	}
	return false
}

func (n *Node) detachAll() {
	if len(n.children) == 0 {
		return
	}
	for _, child := range n.children {
		cn := child.node()
		cn.parent = nil
		cn.setEnvRecursive(nil)
		cn.reset()
	}
	n.children = nil
	n.InvalidateMeasure()
}

// reset returns a node to the never-measured state.
func (n *Node) reset() {
	n.measureClean = false
	n.arrangeClean = false
	n.measured = false
	n.arranged = false
}

func (n *Node) setEnvRecursive(env *Env) {
	if n.env == env {
		return
	}
	n.env = env
	n.measureClean = false
	n.arrangeClean = false
	for _, child := range n.children {
		child.node().setEnvRecursive(env)
	}
}
