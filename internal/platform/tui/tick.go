// Package tui runs games in the terminal with Bubble Tea: the game loop,
// key bindings, the mode menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the wall time between steps.
func tickInterval(tickRate int) time.Duration {
	return core.RuntimeConfig{TickRate: tickRate}.TickInterval()
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
