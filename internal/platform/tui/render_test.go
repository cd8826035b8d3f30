package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func TestNewLayoutCentersBoard(t *testing.T) {
	l := newLayout(80, 24, 12, 20)

	assert.Equal(t, core.NewRect(18, 1, 26, 22), l.frame)
	assert.Equal(t, 19, l.board.Origin.X)
	assert.Equal(t, 2, l.board.Origin.Y)
	assert.Equal(t, 46, l.hud.X)
}

func TestNewLayoutSmallScreen(t *testing.T) {
	l := newLayout(10, 5, 12, 20)

	assert.Equal(t, 0, l.frame.X)
	assert.Equal(t, 0, l.frame.Y)
}

func TestDrawGameStates(t *testing.T) {
	g := tetris.New(tetris.DefaultConfig(), tetris.DefaultCatalog(), tetris.Cycle(3))
	s := core.NewScreen(80, 24)
	l := newLayout(80, 24, 12, 20)

	drawGame(s, g, l, hudView{highScore: 500})
	text := s.String()
	assert.Contains(t, text, "enter to start")
	assert.Contains(t, text, "500")

	g.Start()
	drawGame(s, g, l, hudView{})
	text = s.String()
	assert.NotContains(t, text, "enter to start")
	assert.Contains(t, text, "SCORE")
	assert.Contains(t, text, "NEXT")

	// The active O piece is drawn as an overlay in yellow.
	p := g.Piece()
	cell := s.GetCell(l.board.ScreenX(p.Anchor.X), l.board.Origin.Y+p.Anchor.Y)
	assert.Equal(t, '[', cell.Rune)
	assert.Equal(t, core.ColorYellow, cell.Color)

	g.TogglePause()
	drawGame(s, g, l, hudView{})
	assert.Contains(t, s.String(), "PAUSED")
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.Set(2, 0, 'c')

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "c")
}
