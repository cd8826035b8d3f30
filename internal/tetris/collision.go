package tetris

// Collides reports whether p, shifted by (dx, dy), would overlap a settled
// cell or leave the board through a side or the bottom. Cells above the top
// edge are allowed. The check is pure; callers test before they commit.
func Collides(p Piece, b Board, dx, dy int) bool {
	for r, row := range p.Shape {
		for c, sym := range row {
			if sym == Empty {
				continue
			}
			x := p.Anchor.X + c + dx
			y := p.Anchor.Y + r + dy
			if x < 0 || x >= b.width || y >= b.height {
				return true
			}
			if y >= 0 && b.rows[y][x].Merged() {
				return true
			}
		}
	}
	return false
}
