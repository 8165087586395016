// Package tui runs trapjump in the terminal with Bubble Tea. It owns the
// wall-clock tick loop, turns key presses into held actions and draws the
// game's screen buffer with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the simulation by one step.
type TickMsg time.Time

// defaultTickRate is close to the simulation's 16ms step.
const defaultTickRate = 60

// tickInterval is the wall-clock period between steps at rate ticks per second.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
