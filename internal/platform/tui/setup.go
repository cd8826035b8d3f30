package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Setup is the per-session choice of difficulty and piece randomizer.
type Setup struct {
	Preset     config.DifficultyPreset
	Randomizer string
}

// SetupKeyMap defines the key bindings for the setup screen.
type SetupKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Back, k.Quit}}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetupModel lets a player pick a difficulty preset and then a piece
// randomizer before the next round.
type SetupModel struct {
	presets     []config.DifficultyPreset
	randomizers []registry.Info

	cursor         int
	randomCursor   int
	inRandomSelect bool

	width  int
	height int
	keys   SetupKeyMap
	help   help.Model

	selection Setup
	choosing  bool
	quitting  bool
	back      bool
}

// NewSetupModel creates a setup screen with the cursors on current.
func NewSetupModel(current Setup, width, height int) SetupModel {
	m := SetupModel{
		presets:     config.Presets(),
		randomizers: registry.List(),
		width:       width,
		height:      height,
		keys:        DefaultSetupKeyMap(),
		help:        help.New(),
		selection:   current,
		choosing:    true,
	}
	for i, p := range m.presets {
		if p == current.Preset {
			m.cursor = i
		}
	}
	for i, r := range m.randomizers {
		if r.ID == current.Randomizer {
			m.randomCursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inRandomSelect {
			return m.handleRandomizerKey(msg), nil
		}
		return m.handlePresetKey(msg), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m SetupModel) handlePresetKey(msg tea.KeyMsg) SetupModel {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selection.Preset = m.presets[m.cursor]
		if len(m.randomizers) == 0 {
			m.choosing = false
			return m
		}
		m.inRandomSelect = true
	case key.Matches(msg, m.keys.Back):
		m.back = true
	}
	return m
}

func (m SetupModel) handleRandomizerKey(msg tea.KeyMsg) SetupModel {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.randomCursor > 0 {
			m.randomCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.randomCursor < len(m.randomizers)-1 {
			m.randomCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selection.Randomizer = m.randomizers[m.randomCursor].ID
		m.choosing = false
	case key.Matches(msg, m.keys.Back):
		m.inRandomSelect = false
	}
	return m
}

// View renders the current step.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var title string
	var lines []string
	if m.inRandomSelect {
		title = "PIECE ORDER"
		for i, r := range m.randomizers {
			lines = append(lines, menuLine(i == m.randomCursor, r.ID, r.Description))
		}
	} else {
		title = "DIFFICULTY"
		for i, p := range m.presets {
			lines = append(lines, menuLine(i == m.cursor, string(p), p.Description()))
		}
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, titleStyle.Render(title)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(strings.Join(lines, "\n"))))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func menuLine(selected bool, name, desc string) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%-8s %s", cursor, name, desc)
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Setup {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if the user wants to quit entirely.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the user left without choosing.
func (m SetupModel) WantsBack() bool {
	return m.back
}
