package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// symbolColors assigns each tetromino its conventional color.
var symbolColors = map[tetris.Symbol]core.Color{
	tetris.I: core.ColorCyan,
	tetris.J: core.ColorBlue,
	tetris.L: core.ColorOrange,
	tetris.O: core.ColorYellow,
	tetris.S: core.ColorGreen,
	tetris.T: core.ColorMagenta,
	tetris.Z: core.ColorRed,
}

// Layout constants
const (
	cellW    = 2  // characters per board cell
	hudW     = 16 // width of the side panel
	hudGap   = 2
	emptyDot = '·'
)

// layout positions the board and side panel on the screen.
type layout struct {
	board core.Grid // cells inside the border
	frame core.Rect // border around the board
	hud   core.Rect
}

// newLayout centers a w x h board plus side panel in a screen.
func newLayout(screenW, screenH, w, h int) layout {
	frameW := w*cellW + 2
	frameH := h + 2
	total := frameW + hudGap + hudW

	x := max(0, (screenW-total)/2)
	y := max(0, (screenH-frameH)/2)

	return layout{
		board: core.NewGrid(x+1, y+1, w, h, cellW),
		frame: core.NewRect(x, y, frameW, frameH),
		hud:   core.NewRect(x+frameW+hudGap, y, hudW, frameH),
	}
}

// hudView carries the side panel values that do not come from the game.
type hudView struct {
	highScore int
	player    string
	preset    string
}

// drawGame renders the whole game screen into s.
func drawGame(s *core.Screen, g *tetris.Game, l layout, hud hudView) {
	s.Clear()
	s.DrawBox(l.frame, core.ColorFrame)
	drawBoard(s, g.Board(), l.board)
	drawHUD(s, g, l.hud, hud)

	switch {
	case !g.Started():
		drawOverlay(s, l.frame, core.ColorBrightWhite, "TETRIS", "", "enter to start", "tab for scores", "o for options")
	case g.GameOver():
		st := g.Status()
		drawOverlay(s, l.frame, core.ColorRed, "GAME OVER", fmt.Sprintf("score %d", st.Score), "enter to restart", "tab for scores", "o for options")
	case g.Paused():
		drawOverlay(s, l.frame, core.ColorYellow, "PAUSED", "", "p to resume")
	}
}

// drawBoard draws every cell of the projected board.
func drawBoard(s *core.Screen, b tetris.Board, grid core.Grid) {
	for y := range b.Height() {
		for x := range b.Width() {
			sx, sy := grid.ScreenX(x), grid.Origin.Y+y
			cell := b.At(x, y)
			if cell.Symbol == tetris.Empty {
				s.SetColored(sx, sy, ' ', core.ColorFrame)
				s.SetColored(sx+1, sy, emptyDot, core.ColorFrame)
				continue
			}
			c := symbolColors[cell.Symbol]
			if cell.Merged() {
				s.SetColored(sx, sy, '█', c)
				s.SetColored(sx+1, sy, '█', c)
			} else {
				s.SetColored(sx, sy, '[', c)
				s.SetColored(sx+1, sy, ']', c)
			}
		}
	}
}

// drawHUD draws status values and the next-piece preview.
func drawHUD(s *core.Screen, g *tetris.Game, r core.Rect, hud hudView) {
	st := g.Status()
	y := r.Y + 1

	line := func(label string, value any) {
		s.DrawTextColored(r.X, y, label, core.ColorLabel)
		s.DrawTextColored(r.X+7, y, fmt.Sprint(value), core.ColorValue)
		y++
	}
	line("SCORE", st.Score)
	line("ROWS", st.Rows)
	line("LEVEL", st.Level)
	line("BEST", max(hud.highScore, st.Score))
	if hud.player != "" {
		line("PLAYER", hud.player)
	}
	if hud.preset != "" {
		line("MODE", hud.preset)
	}

	y++
	s.DrawTextColored(r.X, y, "NEXT", core.ColorLabel)
	y++
	if g.Started() {
		next := g.Next()
		c := symbolColors[next.Symbol]
		for ry, row := range next.Shape {
			for rx, sym := range row {
				if sym != tetris.Empty {
					s.SetColored(r.X+rx*cellW, y+ry, '█', c)
					s.SetColored(r.X+rx*cellW+1, y+ry, '█', c)
				}
			}
		}
		y += len(next.Shape)
	}

	y++
	switch {
	case g.Paused():
		s.DrawTextColored(r.X, y, "paused", core.ColorYellow)
	case g.SoftDropping():
		s.DrawTextColored(r.X, y, "dropping", core.ColorCyan)
	}
}

// drawOverlay draws a centered message box over the board.
func drawOverlay(s *core.Screen, frame core.Rect, titleColor core.Color, title string, lines ...string) {
	h := len(lines) + 4
	box := core.NewRect(frame.X+1, frame.Y+(frame.H-h)/2, frame.W-2, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box, titleColor)
	s.DrawTextCentered(box, box.Y+1, title, titleColor)
	for i, text := range lines {
		s.DrawTextCentered(box, box.Y+2+i, text, core.ColorWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
