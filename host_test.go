package panels

import (
	"errors"
	"slices"
	"testing"

	"github.com/grindlemire/go-panels/internal/config"
)

func TestNewHost_Options(t *testing.T) {
	type tc struct {
		opts      []HostOption
		wantErr   error
		thickness float64
	}

	wide := config.Default()
	wide.Scroll.BarThickness = 2

	bad := config.Default()
	bad.Text.Measurer = "bogus"

	tests := map[string]tc{
		"defaults": {
			thickness: 1,
		},
		"with env": {
			opts:      []HostOption{WithEnv(&Env{Measurer: DefaultEnv().Measurer, ScrollBarThickness: 3})},
			thickness: 3,
		},
		"with config": {
			opts:      []HostOption{WithConfig(wide)},
			thickness: 2,
		},
		"invalid config": {
			opts:    []HostOption{WithConfig(bad)},
			wantErr: config.ErrInvalidConfig,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, err := NewHost(NewStackPanel(), tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewHost() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHost() error = %v", err)
			}
			if got := h.Env().ScrollBarThickness; got != tt.thickness {
				t.Errorf("ScrollBarThickness = %v, want %v", got, tt.thickness)
			}
		})
	}
}

func TestNewHost_NilEnv(t *testing.T) {
	if _, err := NewHost(nil, WithEnv(nil)); err == nil {
		t.Error("NewHost(WithEnv(nil)) error = nil, want error")
	}
}

func TestHost_EnvReachesLateChildren(t *testing.T) {
	env := DefaultEnv()
	env.ScrollBarThickness = 2
	root := NewStackPanel()
	mustHost(t, root, WithEnv(env))

	child := newFixed(1, 1)
	root.Add(child)
	if child.Env() != env {
		t.Error("child.Env() is not the host's Env")
	}

	root.Remove(child)
	if child.Env() == env {
		t.Error("detached child kept the host's Env")
	}
}

func TestHost_Layout(t *testing.T) {
	root := newFixed(10, 5)
	root.SetHorizontalAlignment(AlignStart)
	h := mustHost(t, root)

	if !h.Layout(NewSize(40, 40)) {
		t.Error("first Layout() = false, want true")
	}
	if h.Layout(NewSize(40, 40)) {
		t.Error("unchanged Layout() = true, want false")
	}
	if !h.Layout(NewSize(30, 40)) {
		t.Error("resized Layout() = false, want true")
	}
	if got := root.LayoutSlot(); got != NewRect(0, 0, 30, 40) {
		t.Errorf("LayoutSlot() = %v, want (0,0,30,40)", got)
	}

	h.Layout(Infinite())
	if got := root.Bounds(); got != NewRect(0, 0, 10, 5) {
		t.Errorf("Bounds() with infinite size = %v, want (0,0,10,5)", got)
	}
}

func TestHost_NilRoot(t *testing.T) {
	h := mustHost(t, nil)
	if h.Layout(NewSize(10, 10)) {
		t.Error("Layout() without root = true, want false")
	}
	h.Walk(func(Element, int) bool {
		t.Error("Walk visited an element without a root")
		return true
	})
}

func TestHost_SetRootDetaches(t *testing.T) {
	child := newFixed(1, 1)
	parent := NewStackPanel(child)
	h := mustHost(t, parent)

	h.SetRoot(child)
	if len(parent.Children()) != 0 {
		t.Errorf("len(parent.Children()) = %d, want 0", len(parent.Children()))
	}
	if h.Root() != Element(child) {
		t.Error("Root() is not the new root")
	}
	if !h.NeedsLayout() {
		t.Error("NeedsLayout() after SetRoot = false, want true")
	}
}

func TestHost_WalkPaintOrder(t *testing.T) {
	top, bottom, middle, gone := newFixed(1, 1), newFixed(1, 1), newFixed(1, 1), newFixed(1, 1)
	SetZIndex(top, 2)
	SetZIndex(middle, 1)
	gone.SetVisibility(Collapsed)
	canvas := NewCanvas(top, bottom, middle, gone)
	label := NewTextBlock("x")
	root := NewStackPanel(canvas, label)
	h := mustHost(t, root)
	h.Layout(NewSize(10, 10))

	type visit struct {
		e     Element
		depth int
	}
	var got []visit
	h.Walk(func(e Element, depth int) bool {
		got = append(got, visit{e, depth})
		return true
	})

	want := []visit{
		{root, 0},
		{canvas, 1},
		{bottom, 2},
		{middle, 2},
		{top, 2},
		{label, 1},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Walk order = %v, want %v", got, want)
	}
	if got := canvas.Children(); got[0] != Element(top) {
		t.Error("Walk reordered the Canvas children")
	}
}

func TestHost_WalkSkips(t *testing.T) {
	content := newFixed(5, 5)
	viewer := NewScrollViewer(content)
	hidden := newFixed(1, 1)
	hidden.SetVisibility(Hidden)
	inner := newFixed(1, 1)
	pruned := NewBorder(inner)
	root := NewStackPanel(viewer, hidden, pruned)
	h := mustHost(t, root)
	h.Layout(NewSize(20, 20))

	var got []Element
	h.Walk(func(e Element, _ int) bool {
		got = append(got, e)
		return e != Element(pruned)
	})

	want := []Element{root, viewer, content, pruned}
	if !slices.Equal(got, want) {
		t.Errorf("Walk visited %v, want %v", got, want)
	}
}
