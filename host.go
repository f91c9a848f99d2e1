package panels

import (
	"fmt"
	"math"
	"slices"

	"github.com/grindlemire/go-panels/internal/config"
	"github.com/grindlemire/go-panels/internal/debug"
)

// Host owns the root of a tree and the Env it is laid out with. It is the
// entry point for a rendering consumer: call Layout with the viewport size,
// then Walk the tree in paint order.
type Host struct {
	root Element
	env  *Env

	lastAvailable Size
	laidOut       bool
}

// HostOption is a functional option for configuring a Host.
type HostOption func(*Host) error

// WithEnv lays the tree out with env instead of DefaultEnv.
func WithEnv(env *Env) HostOption {
	return func(h *Host) error {
		if env == nil {
			return fmt.Errorf("env must not be nil")
		}
		h.env = env
		return nil
	}
}

// WithConfig builds the Env from cfg and opens the debug log it names.
func WithConfig(cfg config.Config) HostOption {
	return func(h *Host) error {
		env, err := NewEnv(cfg)
		if err != nil {
			return err
		}
		if cfg.Debug.Log != "" {
			if err := debug.Init(cfg.Debug.Log); err != nil {
				return fmt.Errorf("failed to open debug log: %w", err)
			}
		}
		h.env = env
		return nil
	}
}

// NewHost creates a Host for root, which may be nil.
func NewHost(root Element, opts ...HostOption) (*Host, error) {
	h := &Host{env: DefaultEnv()}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	h.SetRoot(root)
	return h, nil
}

// Root returns the root element.
func (h *Host) Root() Element {
	return h.root
}

// Env returns the environment the tree is laid out with.
func (h *Host) Env() *Env {
	return h.env
}

// SetRoot replaces the root. A root that still has a parent is detached
// from it first.
func (h *Host) SetRoot(root Element) {
	if h.root != nil {
		h.root.node().setEnvRecursive(nil)
	}
	h.root = root
	h.laidOut = false
	if root == nil {
		return
	}
	rn := root.node()
	if rn.parent != nil {
		rn.parent.detach(root)
	}
	rn.setEnvRecursive(h.env)
	root.InvalidateMeasure()
}

// NeedsLayout reports whether the next Layout with the same size would do
// any work.
func (h *Host) NeedsLayout() bool {
	if h.root == nil {
		return false
	}
	rn := h.root.node()
	return !h.laidOut || !rn.measureClean || rn.needsArrange()
}

// Layout measures the root against available and arranges it at
// (0, 0, available). An infinite dimension is arranged at the root's desired
// size instead. Layout reports whether any measure or arrange work was done.
func (h *Host) Layout(available Size) bool {
	if h.root == nil {
		return false
	}
	available = available.Sanitize()
	if !h.NeedsLayout() && available == h.lastAvailable {
		return false
	}

	desired := h.root.Measure(available)
	size := available
	if math.IsInf(size.Width, 1) {
		size.Width = desired.Width
	}
	if math.IsInf(size.Height, 1) {
		size.Height = desired.Height
	}
	h.root.Arrange(NewRect(0, 0, size.Width, size.Height))

	h.lastAvailable = available
	h.laidOut = true
	debug.Log("host: layout available=%v desired=%v", available, desired)
	return true
}

// Walk visits the tree in paint order, depth first. Canvas children are
// visited by ascending ZIndex, ties keeping insertion order. Collapsed and
// Hidden subtrees and inactive scroll bars are skipped. Returning false from
// fn skips the element's children. Visiting an element clears its
// VisualDirty flag.
func (h *Host) Walk(fn func(e Element, depth int) bool) {
	if h.root == nil {
		return
	}
	walk(h.root, 0, fn)
}

func walk(e Element, depth int, fn func(Element, int) bool) {
	n := e.node()
	if n.Visibility() != Visible {
		return
	}
	if bar, ok := e.(*ScrollBar); ok && !bar.Active() {
		return
	}
	descend := fn(e, depth)
	n.visualDirty = false
	if !descend {
		return
	}
	for _, child := range paintOrder(e) {
		walk(child, depth+1, fn)
	}
}

func paintOrder(e Element) []Element {
	children := e.LayoutChildren()
	if _, ok := e.(*Canvas); !ok {
		return children
	}
	sorted := slices.Clone(children)
	slices.SortStableFunc(sorted, func(a, b Element) int {
		return GetZIndex(a) - GetZIndex(b)
	})
	return sorted
}
