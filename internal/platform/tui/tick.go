// Package tui provides the Bubble Tea integration for the tetris engine.
// It handles the terminal UI loop, input mapping and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// gravityMsg fires a gravity tick armed for a schedule generation.
type gravityMsg struct {
	gen uint64
}

// pointerFlushMsg asks the router to release a held pointer sample.
type pointerFlushMsg struct{}

// holdCheckMsg checks whether a held soft-drop key went quiet.
type holdCheckMsg struct {
	seq uint64
}

// gravityCmd arms one gravity tick. tea.Tick cannot be cancelled, so the
// generation travels with the message and stale ticks are dropped.
func gravityCmd(delay time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return gravityMsg{gen: gen}
	})
}

// pointerFlushCmd fires once the pointer throttle window has closed.
func pointerFlushCmd(delay time.Duration) tea.Cmd {
	if delay < 0 {
		delay = 0
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return pointerFlushMsg{}
	})
}

// holdCheckCmd fires after the soft-drop release timeout.
func holdCheckCmd(timeout time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return holdCheckMsg{seq: seq}
	})
}
