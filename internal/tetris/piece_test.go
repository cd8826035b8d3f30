package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnNeverCollidesOnEmptyBoard(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)
	for _, tm := range DefaultCatalog() {
		p := Spawn(tm, b.Width())

		assert.False(t, Collides(p, b, 0, 0), "piece %s collides at spawn", tm.Symbol)
		assert.False(t, p.Collided)
		assert.Equal(t, 0, p.Anchor.Y)
		// Bounding box centered horizontally.
		assert.Equal(t, (b.Width()-tm.Shape.Size())/2, p.Anchor.X)
	}
}

func TestCollidesWalls(t *testing.T) {
	b := NewBoard(6, 6)
	p := Piece{Symbol: O, Shape: DefaultCatalog()[3].Shape, Anchor: Point{X: 0, Y: 0}}

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"in place", 0, 0, false},
		{"left wall", -1, 0, true},
		{"right inside", 4, 0, false},
		{"right wall", 5, 0, true},
		{"above top", 0, -3, false},
		{"bottom inside", 0, 4, false},
		{"bottom wall", 0, 5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Collides(p, b, tc.dx, tc.dy))
		})
	}
}

func TestCollidesSettledCells(t *testing.T) {
	b := NewBoard(6, 6)
	b.rows[2][1] = Cell{Symbol: T, Status: StatusMerged}
	p := Piece{Symbol: O, Shape: DefaultCatalog()[3].Shape}

	assert.False(t, Collides(p, b, 0, 0))
	assert.True(t, Collides(p, b, 0, 1), "moving down onto (1,2)")
	assert.False(t, Collides(p, b, 2, 1))
}

func TestCollidesIgnoresOverlayCells(t *testing.T) {
	b := NewBoard(6, 6)
	b.rows[1][1] = Cell{Symbol: T, Status: StatusClear}
	p := Piece{Symbol: O, Shape: DefaultCatalog()[3].Shape}

	assert.False(t, Collides(p, b, 0, 0))
}

func TestMoveRejectedLeavesPiece(t *testing.T) {
	b := NewBoard(6, 6)
	p := Piece{Symbol: O, Shape: DefaultCatalog()[3].Shape}

	moved, ok := Move(p, b, -1, 0)
	assert.False(t, ok)
	assert.Equal(t, p.Anchor, moved.Anchor)

	moved, ok = Move(p, b, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, Point{X: 1, Y: 1}, moved.Anchor)
	assert.Equal(t, Point{}, p.Anchor, "Move must not modify its argument")
}

func TestRotationsCycle(t *testing.T) {
	c := DefaultCatalog()
	for i, tm := range c {
		rots := c.Rotations(i)
		back := rots[3].RotateCW()

		assert.True(t, back.Equal(tm.Shape), "four rotations of %s must return to spawn", tm.Symbol)
		for _, r := range rots {
			assert.Equal(t, 4, cellCount(r), "%s keeps four cells", tm.Symbol)
		}
	}
}

func TestRotateInPlace(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)
	p := Spawn(DefaultCatalog()[5], b.Width()).Translated(0, 5)

	rotated, ok := Rotate(p, b, DefaultKicks)

	require.True(t, ok)
	assert.Equal(t, p.Anchor, rotated.Anchor)
	assert.True(t, rotated.Shape.Equal(p.Shape.RotateCW()))
}

func TestRotateKicksOffRightWall(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)
	// Vertical I hugging the right wall: its column is shape col 1.
	p := Spawn(DefaultCatalog()[0], b.Width())
	p.Anchor = Point{X: b.Width() - 2, Y: 5}
	require.False(t, Collides(p, b, 0, 0))

	rotated, ok := Rotate(p, b, DefaultKicks)

	require.True(t, ok)
	assert.Equal(t, b.Width()-4, rotated.Anchor.X, "-1 still overlaps the wall, -2 fits")
	assert.False(t, Collides(rotated, b, 0, 0))
	for _, c := range rotated.Cells() {
		assert.True(t, b.InBounds(c.X, c.Y))
	}
}

func TestRotateTriesKicksInOrder(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)
	p := Spawn(DefaultCatalog()[0], b.Width())
	p.Anchor = Point{X: b.Width() - 2, Y: 5}

	// With only +kicks the rotation cannot escape the wall.
	rotated, ok := Rotate(p, b, []int{1, 2})
	assert.False(t, ok)
	assert.True(t, rotated.Shape.Equal(p.Shape))
	assert.Equal(t, p.Anchor, rotated.Anchor)
}

func TestRotateBlockedLeavesPieceUnchanged(t *testing.T) {
	b := NewBoard(6, 8)
	// A well exactly one column wide around a vertical I.
	for y := range b.Height() {
		for x := range b.Width() {
			if x != 3 {
				b.rows[y][x] = Cell{Symbol: Z, Status: StatusMerged}
			}
		}
	}
	p := Piece{Symbol: I, Shape: DefaultCatalog()[0].Shape, Anchor: Point{X: 2, Y: 2}}
	require.False(t, Collides(p, b, 0, 0))

	rotated, ok := Rotate(p, b, DefaultKicks)

	assert.False(t, ok)
	assert.True(t, rotated.Shape.Equal(p.Shape), "orientation unchanged")
	assert.Equal(t, p.Anchor, rotated.Anchor, "position unchanged")
}

func TestNewCatalogRejectsRaggedShape(t *testing.T) {
	assert.Panics(t, func() {
		NewCatalog(Tetromino{Symbol: T, Shape: Shape{{T, T}, {T}}})
	})
	assert.Panics(t, func() {
		NewCatalog(Tetromino{Symbol: T, Shape: Shape{{Empty}}})
	})
	assert.Panics(t, func() { NewCatalog() })
}

func TestPieceColumn(t *testing.T) {
	p := Spawn(DefaultCatalog()[0], DefaultWidth)
	assert.Equal(t, p.Anchor.X+1, p.Column())
}
