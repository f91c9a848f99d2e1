package panels

import (
	"fmt"

	"github.com/grindlemire/go-panels/internal/config"
	"github.com/grindlemire/go-panels/internal/text"
)

// Env carries the services and settings a tree is laid out with. A Host
// hands its Env to the root, and attaching an element to a parent propagates
// the parent's Env through the new subtree.
type Env struct {
	// Measurer sizes TextBlock content.
	Measurer text.Measurer
	// ScrollBarThickness is the space a visible scroll bar takes from the viewport.
	ScrollBarThickness float64
	// MinThumbLength is the shortest a scroll bar thumb may be.
	MinThumbLength float64
}

var defaultEnv = DefaultEnv()

// DefaultEnv returns terminal-cell text measurement with one-cell scroll bars.
func DefaultEnv() *Env {
	return &Env{
		Measurer:           text.Cells{},
		ScrollBarThickness: 1,
		MinThumbLength:     1,
	}
}

// NewEnv builds an Env from a validated configuration.
func NewEnv(cfg config.Config) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	env := &Env{
		ScrollBarThickness: cfg.Scroll.BarThickness,
		MinThumbLength:     cfg.Scroll.MinThumbLength,
	}
	switch cfg.Text.Measurer {
	case config.MeasurerBasic:
		env.Measurer = text.NewBasicFace(cfg.Text.LineSpacing)
	case config.MeasurerGoFont:
		face, err := text.NewGoFace(cfg.Text.FontSize, cfg.Text.DPI, cfg.Text.LineSpacing)
		if err != nil {
			return nil, fmt.Errorf("failed to create text measurer: %w", err)
		}
		env.Measurer = face
	default:
		env.Measurer = lineSpaced{Measurer: text.Cells{}, spacing: cfg.Text.LineSpacing}
	}
	return env, nil
}

// lineSpaced scales the line height of a measurer.
type lineSpaced struct {
	text.Measurer
	spacing float64
}

func (l lineSpaced) LineHeight() float64 {
	return l.Measurer.LineHeight() * l.spacing
}
