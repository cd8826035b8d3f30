package tetris

// DefaultKicks is the ordered list of horizontal corrections tried when an
// in-place rotation collides.
var DefaultKicks = []int{-1, 1, -2, 2}

// Rotate turns p clockwise. The rotated shape is tested in place, then at
// each kick offset in order; the first free position wins. When every
// candidate collides, p is returned unchanged with false.
func Rotate(p Piece, b Board, kicks []int) (Piece, bool) {
	rotated := p
	rotated.Shape = p.Shape.RotateCW()

	if !Collides(rotated, b, 0, 0) {
		return rotated, true
	}
	for _, dx := range kicks {
		if !Collides(rotated, b, dx, 0) {
			return rotated.Translated(dx, 0), true
		}
	}
	return p, false
}
