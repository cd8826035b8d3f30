// Package core provides fundamental types and utilities for the terminal
// platform: screen buffers, colors and geometry. It has no Bubble Tea
// dependency so drawing stays testable.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Grid lays out cols x rows cells of cellW characters each, starting at
// the top-left corner of Origin.
type Grid struct {
	Origin Rect
	CellW  int
	Cols   int
	Rows   int
}

// NewGrid returns a grid whose origin rect covers all its cells.
func NewGrid(x, y, cols, rows, cellW int) Grid {
	return Grid{
		Origin: NewRect(x, y, cols*cellW, rows),
		CellW:  cellW,
		Cols:   cols,
		Rows:   rows,
	}
}

// ScreenX returns the screen column of the first character of cell col.
func (g Grid) ScreenX(col int) int {
	return g.Origin.X + col*g.CellW
}

// Column maps a screen x coordinate to a grid column, clamping positions
// left or right of the grid to its edge columns.
func (g Grid) Column(x int) int {
	if g.CellW <= 0 || g.Cols <= 0 {
		return 0
	}
	off := x - g.Origin.X
	if off < 0 {
		return 0
	}
	return Clamp(off/g.CellW, 0, g.Cols-1)
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
