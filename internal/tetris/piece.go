package tetris

// Point is a board coordinate; X grows right, Y grows down.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Piece is the active falling tetromino. Anchor is the board position of
// the shape's top-left corner. Collided marks the position as final; the
// engine merges and replaces a collided piece within the same transition.
type Piece struct {
	Symbol   Symbol
	Shape    Shape
	Anchor   Point
	Collided bool
}

// Spawn places t with its bounding box horizontally centered and its top
// row on the board's top edge.
func Spawn(t Tetromino, boardWidth int) Piece {
	return Piece{
		Symbol: t.Symbol,
		Shape:  t.Shape.Clone(),
		Anchor: Point{X: (boardWidth - t.Shape.Size()) / 2, Y: 0},
	}
}

// Translated returns a copy of p moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(Point{X: dx, Y: dy})
	return p
}

// Move returns p translated by (dx, dy) when the target position is free.
// A rejected move returns p unchanged and false.
func Move(p Piece, b Board, dx, dy int) (Piece, bool) {
	if Collides(p, b, dx, dy) {
		return p, false
	}
	return p.Translated(dx, dy), true
}

// Cells returns the board coordinates of the piece's occupied cells.
func (p Piece) Cells() []Point {
	pts := make([]Point, 0, 4)
	p.eachCell(func(x, y int, _ Symbol) {
		pts = append(pts, Point{X: x, Y: y})
	})
	return pts
}

// Column returns the board column of the leftmost occupied cell.
func (p Piece) Column() int {
	col := p.Anchor.X + p.Shape.Size()
	p.eachCell(func(x, _ int, _ Symbol) {
		if x < col {
			col = x
		}
	})
	return col
}

func (p Piece) eachCell(fn func(x, y int, sym Symbol)) {
	for r, row := range p.Shape {
		for c, sym := range row {
			if sym != Empty {
				fn(p.Anchor.X+c, p.Anchor.Y+r, sym)
			}
		}
	}
}
