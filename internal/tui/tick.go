// Package tui provides the Bubble Tea integration for gemcrush. It plays
// back engine frame streams as board animations and handles input,
// scoreboards, and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg advances the playback of a queued frame stream. The generation
// number ties the message to one playback run; stale ticks from a
// superseded run are dropped.
type frameMsg struct {
	generation int
}

// frameCmd schedules the next playback step after the given delay.
func frameCmd(generation int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return frameMsg{generation: generation} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return frameMsg{generation: generation}
	})
}
