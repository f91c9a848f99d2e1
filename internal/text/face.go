package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Face measures text with a font face. Widths and heights are in pixels.
type Face struct {
	face        font.Face
	lineSpacing float64
}

// NewFace wraps an existing face. lineSpacing scales the face's line height;
// values <= 0 mean 1.
func NewFace(face font.Face, lineSpacing float64) *Face {
	if lineSpacing <= 0 {
		lineSpacing = 1
	}
	return &Face{face: face, lineSpacing: lineSpacing}
}

// NewBasicFace returns a measurer using the fixed 7x13 bitmap font.
func NewBasicFace(lineSpacing float64) *Face {
	return NewFace(basicfont.Face7x13, lineSpacing)
}

// NewGoFace returns a measurer using the bundled Go Regular font at the given
// point size and resolution.
func NewGoFace(size, dpi, lineSpacing float64) (*Face, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Go font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Go font face: %w", err)
	}
	return NewFace(face, lineSpacing), nil
}

// Width implements Measurer.
func (f *Face) Width(s string) (float64, error) {
	if err := validate(s); err != nil {
		return 0, err
	}
	return toFloat(font.MeasureString(f.face, s)), nil
}

// LineHeight implements Measurer.
func (f *Face) LineHeight() float64 {
	return toFloat(f.face.Metrics().Height) * f.lineSpacing
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
