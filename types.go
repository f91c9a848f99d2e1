package panels

import "github.com/grindlemire/go-panels/internal/text"

// Orientation is the stacking or flow axis of a container.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Visibility controls whether an element takes part in layout and painting.
type Visibility uint8

const (
	// Visible elements are laid out and painted (default).
	Visible Visibility = iota
	// Hidden elements are laid out but not painted.
	Hidden
	// Collapsed elements take no space and are skipped by arrange.
	Collapsed
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "Hidden"
	case Collapsed:
		return "Collapsed"
	default:
		return "Visible"
	}
}

// Dock is the edge of a DockPanel a child attaches to.
type Dock uint8

const (
	DockLeft Dock = iota
	DockTop
	DockRight
	DockBottom
)

func (d Dock) String() string {
	switch d {
	case DockTop:
		return "Top"
	case DockRight:
		return "Right"
	case DockBottom:
		return "Bottom"
	default:
		return "Left"
	}
}

// ScrollBarVisibility controls one axis of a ScrollViewer.
type ScrollBarVisibility uint8

const (
	// ScrollBarAuto shows the bar only when the content overflows (default).
	ScrollBarAuto ScrollBarVisibility = iota
	// ScrollBarVisible always shows the bar.
	ScrollBarVisible
	// ScrollBarHidden scrolls without showing a bar.
	ScrollBarHidden
	// ScrollBarDisabled does not scroll; content is constrained to the viewport.
	ScrollBarDisabled
)

func (v ScrollBarVisibility) String() string {
	switch v {
	case ScrollBarVisible:
		return "Visible"
	case ScrollBarHidden:
		return "Hidden"
	case ScrollBarDisabled:
		return "Disabled"
	default:
		return "Auto"
	}
}

// TextWrapping selects how a TextBlock breaks lines.
type TextWrapping = text.Wrapping

const (
	NoWrap = text.NoWrap
	Wrap   = text.Wrap
)

// Color is an opaque paint value handed to the renderer, such as "#1e1e2e"
// or "blue". Layout never interprets it.
type Color string
