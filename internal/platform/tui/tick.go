// Package tui is the Bubble Tea platform for breakout: it samples the mouse
// and keyboard, paces frames, renders the game's screen buffer with lipgloss
// and serves the same flow over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	Gen  int64 // Tick chain the message belongs to
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// one frame interval at the specified rate.
func tickCmd(tickRate int, gen int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
