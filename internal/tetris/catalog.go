// Package tetris implements the falling-block game engine: board, pieces,
// collision, rotation, scoring, gravity scheduling and input routing.
// Like the other game packages it has no UI dependencies; the platform
// layer reads projected boards and feeds discrete commands.
package tetris

import "fmt"

// Symbol identifies the tetromino a cell belongs to. Empty is the zero value.
type Symbol byte

// Tetromino symbols.
const (
	Empty Symbol = 0
	I     Symbol = 'I'
	J     Symbol = 'J'
	L     Symbol = 'L'
	O     Symbol = 'O'
	S     Symbol = 'S'
	T     Symbol = 'T'
	Z     Symbol = 'Z'
)

// String returns the symbol letter, or "." for Empty.
func (s Symbol) String() string {
	if s == Empty {
		return "."
	}
	return string(rune(s))
}

// Shape is a square matrix of symbols forming a piece's bounding box.
// Shape[row][col]; Empty entries are not part of the piece.
type Shape [][]Symbol

// Tetromino is a catalog entry: a symbol and its spawn orientation.
type Tetromino struct {
	Symbol Symbol
	Shape  Shape
}

// Catalog is the ordered, immutable set of pieces a game draws from.
type Catalog []Tetromino

// DefaultCatalog returns the seven standard tetrominoes.
func DefaultCatalog() Catalog {
	return NewCatalog(
		Tetromino{Symbol: I, Shape: parseShape(I,
			".X..",
			".X..",
			".X..",
			".X..",
		)},
		Tetromino{Symbol: J, Shape: parseShape(J,
			".X.",
			".X.",
			"XX.",
		)},
		Tetromino{Symbol: L, Shape: parseShape(L,
			".X.",
			".X.",
			".XX",
		)},
		Tetromino{Symbol: O, Shape: parseShape(O,
			"XX",
			"XX",
		)},
		Tetromino{Symbol: S, Shape: parseShape(S,
			".XX",
			"XX.",
			"...",
		)},
		Tetromino{Symbol: T, Shape: parseShape(T,
			"XXX",
			".X.",
			"...",
		)},
		Tetromino{Symbol: Z, Shape: parseShape(Z,
			"XX.",
			".XX",
			"...",
		)},
	)
}

// NewCatalog validates the given pieces and returns them as a Catalog.
// Panics on an empty catalog, a non-square shape or a shape without cells.
func NewCatalog(pieces ...Tetromino) Catalog {
	if len(pieces) == 0 {
		panic("tetris: empty catalog")
	}
	for _, p := range pieces {
		if p.Symbol == Empty {
			panic("tetris: catalog piece with empty symbol")
		}
		mustBeSquare(p.Shape)
		if cellCount(p.Shape) == 0 {
			panic(fmt.Sprintf("tetris: piece %s has no cells", p.Symbol))
		}
	}
	return Catalog(pieces)
}

// Index returns the position of sym in the catalog, or -1.
func (c Catalog) Index(sym Symbol) int {
	for i, p := range c {
		if p.Symbol == sym {
			return i
		}
	}
	return -1
}

// Rotations returns the four clockwise rotation states of the piece at idx,
// starting with its spawn orientation.
func (c Catalog) Rotations(idx int) [4]Shape {
	var out [4]Shape
	s := c[idx].Shape
	for i := range out {
		out[i] = s
		s = s.RotateCW()
	}
	return out
}

// RotateCW returns a new shape rotated 90 degrees clockwise
// (transpose, then reverse each row).
func (s Shape) RotateCW() Shape {
	mustBeSquare(s)
	n := len(s)
	out := make(Shape, n)
	for r := range out {
		out[r] = make([]Symbol, n)
		for c := range out[r] {
			out[r][c] = s[n-1-c][r]
		}
	}
	return out
}

// Size returns the side length of the bounding box.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]Symbol(nil), s[r]...)
	}
	return out
}

// Equal reports whether two shapes have identical entries.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(o[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the shape as rows of symbol letters.
func (s Shape) String() string {
	b := make([]byte, 0, len(s)*(len(s)+1))
	for r, row := range s {
		if r > 0 {
			b = append(b, '\n')
		}
		for _, sym := range row {
			b = append(b, sym.String()[0])
		}
	}
	return string(b)
}

// parseShape builds a shape from rows where 'X' marks a cell of sym.
func parseShape(sym Symbol, rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, row := range rows {
		s[r] = make([]Symbol, len(row))
		for c := range row {
			if row[c] == 'X' {
				s[r][c] = sym
			}
		}
	}
	return s
}

func mustBeSquare(s Shape) {
	for r, row := range s {
		if len(row) != len(s) {
			panic(fmt.Sprintf("tetris: shape row %d has %d cells, want %d", r, len(row), len(s)))
		}
	}
}

func cellCount(s Shape) int {
	n := 0
	for _, row := range s {
		for _, sym := range row {
			if sym != Empty {
				n++
			}
		}
	}
	return n
}
