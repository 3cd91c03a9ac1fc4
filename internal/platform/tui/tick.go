// Package tui provides the Bubble Tea integration for the snake arcade.
// It handles the terminal UI loop, input mapping, wall-clock timing, and
// score persistence around the pure game core.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. It carries the tick
// wall-clock time so the model can feed real elapsed seconds into the
// simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
