package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/randomizer"
)

func updateSetup(t *testing.T, m SetupModel, msg tea.Msg) SetupModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SetupModel)
	require.True(t, ok)
	return sm
}

func TestSetupCursorStartsOnCurrent(t *testing.T) {
	m := NewSetupModel(Setup{Preset: config.DifficultyHard, Randomizer: randomizer.UniformID}, 80, 24)

	assert.Equal(t, config.DifficultyHard, m.presets[m.cursor])
	assert.Equal(t, randomizer.UniformID, m.randomizers[m.randomCursor].ID)
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "DIFFICULTY")
	assert.Contains(t, m.View(), "> hard")
}

func TestSetupSelectsPresetThenRandomizer(t *testing.T) {
	m := NewSetupModel(Setup{Preset: config.DifficultyNormal, Randomizer: randomizer.BagID}, 80, 24)

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.inRandomSelect)
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "PIECE ORDER")

	for m.randomizers[m.randomCursor].ID != randomizer.UniformID {
		m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, Setup{Preset: config.DifficultyEasy, Randomizer: randomizer.UniformID}, *m.Selected())
}

func TestSetupCursorStaysInRange(t *testing.T) {
	m := NewSetupModel(Setup{Preset: config.DifficultyEasy, Randomizer: randomizer.BagID}, 80, 24)

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	for range len(m.presets) + 2 {
		m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.presets)-1, m.cursor)
}

func TestSetupBack(t *testing.T) {
	m := NewSetupModel(Setup{Preset: config.DifficultyNormal, Randomizer: randomizer.BagID}, 80, 24)

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.inRandomSelect, "esc returns to the preset list")
	assert.False(t, m.WantsBack())

	m = updateSetup(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.WantsBack())
	assert.Nil(t, m.Selected())
}

func TestSetupQuit(t *testing.T) {
	m := NewSetupModel(Setup{Preset: config.DifficultyNormal, Randomizer: randomizer.BagID}, 80, 24)

	next, cmd := m.Update(runeKey('q'))

	assert.NotNil(t, cmd)
	assert.True(t, next.(SetupModel).IsQuitting())
	assert.Empty(t, next.View())
}
