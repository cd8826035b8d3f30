package tetris

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultWidth  = 12
	DefaultHeight = 20
)

// CellStatus tells whether a cell is settled or transient.
type CellStatus uint8

const (
	// StatusClear cells are empty or hold the falling piece's overlay.
	StatusClear CellStatus = iota
	// StatusMerged cells are settled until their row is cleared.
	StatusMerged
)

// Cell is a single board position.
type Cell struct {
	Symbol Symbol
	Status CellStatus
}

// Merged reports whether the cell is a settled fragment.
func (c Cell) Merged() bool {
	return c.Status == StatusMerged
}

// Board is a fixed-size grid of cells, row-major, row 0 at the top.
// Operations return new boards; a Board value is never mutated after
// it has been handed out.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard returns a width x height board of empty, clear cells.
// Panics on non-positive dimensions.
func NewBoard(width, height int) Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tetris: invalid board size %dx%d", width, height))
	}
	b := Board{width: width, height: height, rows: make([][]Cell, height)}
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b Board) Width() int { return b.width }

// Height returns the number of rows.
func (b Board) Height() int { return b.height }

// At returns the cell at column x, row y. Panics when out of range.
func (b Board) At(x, y int) Cell {
	return b.rows[y][x]
}

// Row returns a copy of row y.
func (b Board) Row(y int) []Cell {
	return append([]Cell(nil), b.rows[y]...)
}

// InBounds reports whether (x, y) addresses a board cell.
func (b Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// clone returns a deep copy so callers can write without aliasing.
func (b Board) clone() Board {
	out := Board{width: b.width, height: b.height, rows: make([][]Cell, b.height)}
	for y := range b.rows {
		out.rows[y] = append([]Cell(nil), b.rows[y]...)
	}
	return out
}

// Project overlays the piece's cells as StatusClear on top of the settled
// cells. Cells above the top edge are skipped. Settled state is untouched.
func (b Board) Project(p Piece) Board {
	out := b.clone()
	p.eachCell(func(x, y int, sym Symbol) {
		if out.InBounds(x, y) && !out.rows[y][x].Merged() {
			out.rows[y][x] = Cell{Symbol: sym, Status: StatusClear}
		}
	})
	return out
}

// Merge writes the piece's cells permanently. The caller guarantees the
// piece position is collision-free; overwriting a settled cell or writing
// outside the side or bottom walls panics.
func (b Board) Merge(p Piece) Board {
	out := b.clone()
	p.eachCell(func(x, y int, sym Symbol) {
		if y < 0 {
			return
		}
		if !out.InBounds(x, y) {
			panic(fmt.Sprintf("tetris: merge outside board at (%d,%d)", x, y))
		}
		if out.rows[y][x].Merged() {
			panic(fmt.Sprintf("tetris: merge over settled cell at (%d,%d)", x, y))
		}
		out.rows[y][x] = Cell{Symbol: sym, Status: StatusMerged}
	})
	return out
}

// SweepFullRows removes every row whose cells are all merged in a single
// pass and inserts the same number of empty rows at the top. The relative
// order of the remaining rows is preserved.
func (b Board) SweepFullRows() (Board, int) {
	kept := make([][]Cell, 0, b.height)
	for _, row := range b.rows {
		if !rowFull(row) {
			kept = append(kept, append([]Cell(nil), row...))
		}
	}
	cleared := b.height - len(kept)
	if cleared == 0 {
		return b, 0
	}

	out := Board{width: b.width, height: b.height, rows: make([][]Cell, 0, b.height)}
	for range cleared {
		out.rows = append(out.rows, make([]Cell, b.width))
	}
	out.rows = append(out.rows, kept...)
	return out, cleared
}

// Equal reports whether both boards have the same size and cells.
func (b Board) Equal(o Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for y := range b.rows {
		for x := range b.rows[y] {
			if b.rows[y][x] != o.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the board as text: symbol letters for merged cells,
// lowercase letters for the overlaid piece and '.' for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			switch {
			case c.Symbol == Empty:
				sb.WriteByte('.')
			case c.Merged():
				sb.WriteByte(byte(c.Symbol))
			default:
				sb.WriteString(strings.ToLower(c.Symbol.String()))
			}
		}
	}
	return sb.String()
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Merged() || c.Symbol == Empty {
			return false
		}
	}
	return true
}
