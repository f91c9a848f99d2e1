package panels

import (
	"math"

	"github.com/grindlemire/go-panels/internal/layout"
)

// Grid arranges children in cells defined by row and column tracks. Each
// track is Auto (sized to content), Pixel (fixed) or Star (a weighted share
// of what remains). A Grid with no definitions on an axis has one implicit
// Star track there.
//
// Children choose their cell with the attached Row, Column, RowSpan and
// ColumnSpan values. Indices past the last track clamp to it and spans clamp
// to fit.
type Grid struct {
	Panel

	rows    []RowDefinition
	columns []ColumnDefinition
}

// NewGrid creates a Grid holding children.
func NewGrid(children ...Element) *Grid {
	g := &Grid{}
	g.initPanel(g)
	g.Add(children...)
	return g
}

// SetRowDefinitions replaces the row tracks.
func (g *Grid) SetRowDefinitions(defs ...RowDefinition) {
	g.rows = append([]RowDefinition(nil), defs...)
	g.InvalidateMeasure()
}

// AddRowDefinition appends a row track.
func (g *Grid) AddRowDefinition(def RowDefinition) {
	g.rows = append(g.rows, def)
	g.InvalidateMeasure()
}

// RowDefinitions returns a copy of the row tracks, including the ActualSize
// resolved by the last pass.
func (g *Grid) RowDefinitions() []RowDefinition {
	return append([]RowDefinition(nil), g.rows...)
}

// SetColumnDefinitions replaces the column tracks.
func (g *Grid) SetColumnDefinitions(defs ...ColumnDefinition) {
	g.columns = append([]ColumnDefinition(nil), defs...)
	g.InvalidateMeasure()
}

// AddColumnDefinition appends a column track.
func (g *Grid) AddColumnDefinition(def ColumnDefinition) {
	g.columns = append(g.columns, def)
	g.InvalidateMeasure()
}

// ColumnDefinitions returns a copy of the column tracks, including the
// ActualSize resolved by the last pass.
func (g *Grid) ColumnDefinitions() []ColumnDefinition {
	return append([]ColumnDefinition(nil), g.columns...)
}

// tracks returns the definitions to resolve on one axis. The returned slice
// aliases the Grid's own definitions so ActualSize lands there.
func tracks(defs []layout.Definition) []layout.Definition {
	if len(defs) == 0 {
		return []layout.Definition{layout.NewDefinition(layout.MustStar(1))}
	}
	return defs
}

// gridCell is a child's clamped placement.
type gridCell struct {
	child            Element
	row, column      int
	rowSpan, colSpan int
}

func (g *Grid) cells(nrows, ncols int) []gridCell {
	var cells []gridCell
	for _, child := range g.children {
		if isCollapsed(child) {
			continue
		}
		row := min(GetRow(child), nrows-1)
		col := min(GetColumn(child), ncols-1)
		cells = append(cells, gridCell{
			child:   child,
			row:     row,
			column:  col,
			rowSpan: min(GetRowSpan(child), nrows-row),
			colSpan: min(GetColumnSpan(child), ncols-col),
		})
	}
	return cells
}

// spanConstraint returns the fixed size of a span, or +Inf when any track in
// it is sized by content or by share.
func spanConstraint(defs []layout.Definition, start, span int) float64 {
	total := 0.0
	for i := start; i < start+span; i++ {
		if !defs[i].Length.IsPixel() {
			return math.Inf(1)
		}
		total += defs[i].Clamp(defs[i].Length.Value)
	}
	return total
}

// content collects, per track, the largest desired extent of the children
// that sit in that track alone.
func content(cells []gridCell, n int, horizontal bool) []float64 {
	out := make([]float64, n)
	for _, c := range cells {
		d := c.child.DesiredSize()
		if horizontal && c.colSpan == 1 {
			out[c.column] = math.Max(out[c.column], d.Width)
		}
		if !horizontal && c.rowSpan == 1 {
			out[c.row] = math.Max(out[c.row], d.Height)
		}
	}
	return out
}

// MeasureOverride resolves columns, then rows, then measures every child
// against the tracks it spans. Auto tracks take their size from children
// measured with unlimited room on that axis.
func (g *Grid) MeasureOverride(available Size) Size {
	rows, cols := tracks(g.rows), tracks(g.columns)
	cells := g.cells(len(rows), len(cols))

	for _, c := range cells {
		c.child.Measure(NewSize(
			spanConstraint(cols, c.column, c.colSpan),
			spanConstraint(rows, c.row, c.rowSpan),
		))
	}
	colSizes := layout.ResolveTracks(cols, available.Width, content(cells, len(cols), true))

	for _, c := range cells {
		c.child.Measure(NewSize(
			layout.SpanSize(colSizes, c.column, c.colSpan),
			spanConstraint(rows, c.row, c.rowSpan),
		))
	}
	rowSizes := layout.ResolveTracks(rows, available.Height, content(cells, len(rows), false))

	for _, c := range cells {
		c.child.Measure(NewSize(
			layout.SpanSize(colSizes, c.column, c.colSpan),
			layout.SpanSize(rowSizes, c.row, c.rowSpan),
		))
	}

	return NewSize(layout.Sum(colSizes), layout.Sum(rowSizes))
}

// ArrangeOverride re-resolves the tracks against the final size and places
// each child at the cumulative offset of its first track.
func (g *Grid) ArrangeOverride(finalRect Rect) Size {
	rows, cols := tracks(g.rows), tracks(g.columns)
	cells := g.cells(len(rows), len(cols))

	colSizes := layout.ResolveTracks(cols, finalRect.Width, content(cells, len(cols), true))
	rowSizes := layout.ResolveTracks(rows, finalRect.Height, content(cells, len(rows), false))
	colOffsets, rowOffsets := layout.Offsets(colSizes), layout.Offsets(rowSizes)

	for _, c := range cells {
		c.child.Arrange(NewRect(
			finalRect.X+colOffsets[c.column],
			finalRect.Y+rowOffsets[c.row],
			layout.SpanSize(colSizes, c.column, c.colSpan),
			layout.SpanSize(rowSizes, c.row, c.rowSpan),
		))
	}
	return finalRect.Size()
}
