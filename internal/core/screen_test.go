package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row returns line y of the plain-text rendering.
func row(s *Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())
	for y := range s.Height() {
		for x := range s.Width() {
			assert.Equal(t, blank, s.GetCell(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorCyan)
	assert.Equal(t, Cell{Rune: 'X', Color: ColorCyan}, s.GetCell(5, 5))

	s.Set(5, 5, 'Y')
	assert.Equal(t, Cell{Rune: 'Y'}, s.GetCell(5, 5), "Set resets the color")

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	assert.Equal(t, blank, s.GetCell(-1, 0))
	assert.Equal(t, blank, s.GetCell(100, 0))
	assert.NotContains(t, s.String(), "A")
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X')

	s.Clear()

	assert.NotContains(t, s.String(), "X")
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 3)

	s.DrawRect(NewRect(1, 1, 3, 5), '#')

	assert.Equal(t, "     \n ### \n ### ", s.String(), "clipped at the bottom edge")
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawTextColored(2, 1, "Hello", ColorWhite)
	assert.Equal(t, "  Hello             ", row(s, 1))
	assert.Equal(t, ColorWhite, s.GetCell(2, 1).Color)

	// Clipped at the right edge
	s.DrawTextColored(17, 2, "World", ColorDefault)
	assert.True(t, strings.HasSuffix(row(s, 2), "Wor"), "row 2 = %q", row(s, 2))
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(10, 1)

	s.DrawTextCentered(NewRect(0, 0, 10, 1), 0, "▶ab", ColorYellow)

	assert.Equal(t, "   ▶ab    ", row(s, 0))
	assert.Equal(t, ColorYellow, s.GetCell(3, 0).Color)
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)

	s.DrawBox(NewRect(0, 0, 5, 3), ColorGray)

	assert.Equal(t, "┌───┐\n│   │\n└───┘", s.String())
	assert.Equal(t, ColorGray, s.GetCell(0, 0).Color)
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(1, 1, 'X')

	s.Resize(4, 3)

	assert.Equal(t, 4, s.Width())
	assert.Equal(t, 3, s.Height())
	assert.Equal(t, "    \n    \n    ", s.String(), "Resize clears the buffer")
}
