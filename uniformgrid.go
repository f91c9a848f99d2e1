package panels

import "math"

// UniformGrid places children row-major into equally sized cells. Missing
// dimensions are derived from the number of visible children.
type UniformGrid struct {
	Panel
}

// NewUniformGrid creates a UniformGrid holding children.
func NewUniformGrid(children ...Element) *UniformGrid {
	u := &UniformGrid{}
	u.initPanel(u)
	u.Add(children...)
	return u
}

// Dimensions returns the effective (rows, columns) and the first column for
// the current children. Derived dimensions leave room for the FirstColumn
// leading cells; a FirstColumn outside the resulting columns is ignored.
func (u *UniformGrid) Dimensions() (rows, columns, firstColumn int) {
	n := len(u.visibleChildren())
	rows, columns, firstColumn = u.Rows(), u.Columns(), max(u.FirstColumn(), 0)
	if columns > 0 && firstColumn >= columns {
		firstColumn = 0
	}

	cells := n + firstColumn
	switch {
	case rows == 0 && columns == 0:
		side := int(math.Ceil(math.Sqrt(float64(cells))))
		rows, columns = side, side
	case rows == 0:
		rows = ceilDiv(cells, columns)
	case columns == 0:
		columns = ceilDiv(cells, rows)
	}
	if firstColumn >= columns {
		firstColumn = 0
	}
	return rows, columns, firstColumn
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func (u *UniformGrid) cellSize(s Size, rows, columns int) Size {
	if rows == 0 || columns == 0 {
		return Size{}
	}
	return NewSize(s.Width/float64(columns), s.Height/float64(rows))
}

// MeasureOverride measures every child against one cell and returns the
// largest child size times the grid dimensions.
func (u *UniformGrid) MeasureOverride(available Size) Size {
	rows, columns, _ := u.Dimensions()
	cell := u.cellSize(available, rows, columns)

	var largest Size
	for _, child := range u.children {
		largest = largest.Max(child.Measure(cell))
	}
	return NewSize(largest.Width*float64(columns), largest.Height*float64(rows))
}

// ArrangeOverride places visible children row-major starting at
// (0, FirstColumn). Children beyond the last row are not arranged.
func (u *UniformGrid) ArrangeOverride(finalRect Rect) Size {
	rows, columns, first := u.Dimensions()
	cell := u.cellSize(finalRect.Size(), rows, columns)

	index := first
	for _, child := range u.children {
		if isCollapsed(child) {
			continue
		}
		row, col := index/columns, index%columns
		if row >= rows {
			break
		}
		child.Arrange(NewRect(
			finalRect.X+float64(col)*cell.Width,
			finalRect.Y+float64(row)*cell.Height,
			cell.Width, cell.Height,
		))
		index++
	}
	return finalRect.Size()
}
