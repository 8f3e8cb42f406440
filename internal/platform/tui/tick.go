// Package tui provides the Bubble Tea integration for tilemerge.
// It handles the terminal UI loop, input mapping, board setup and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilemerge/internal/game"
)

// SettleMsg ends the settle phase started by the move with the same
// generation on the same game. Any other SettleMsg is ignored.
type SettleMsg struct {
	Gen  int
	game *game.Game
}

// settleCmd returns a command that delivers a SettleMsg for g after d.
func settleCmd(d time.Duration, g *game.Game, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SettleMsg{Gen: gen, game: g}
	})
}
