// Package tui runs games in the terminal with Bubble Tea: the tick loop,
// key and mouse mapping, the variant menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at tickRate steps per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
