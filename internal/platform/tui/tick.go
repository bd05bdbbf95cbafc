// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, the recurring spawn
// timer, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benchster/floppywaffle2/internal/sprites"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// spawnTickMsg is sent by the recurring obstacle spawn timer. The
// generation ties a firing to the session that armed it: a restart bumps
// the generation, so a timer left over from the previous session is
// discarded instead of doubling the spawn rate.
type spawnTickMsg struct {
	gen int
}

// spawnCmd returns a command that fires the spawn timer once after the
// configured interval. The handler re-arms it only while the game is still
// running, so the timer self-terminates within one interval of a game over.
func spawnCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return spawnTickMsg{gen: gen}
	})
}

// spritesBuiltMsg delivers a finished sprite build to the update loop.
type spritesBuiltMsg struct {
	provider *sprites.Provider
}

// buildSpritesCmd renders the sprite surfaces off the update loop. The
// provider only becomes visible to the game once this message is handled,
// which is what the ready flag gates.
func buildSpritesCmd(screenW, screenH int) tea.Cmd {
	return func() tea.Msg {
		return spritesBuiltMsg{provider: sprites.Build(screenW, screenH)}
	}
}
