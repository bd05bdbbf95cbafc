package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/benchster/floppywaffle2/internal/config"
	"github.com/benchster/floppywaffle2/internal/core"
	"github.com/benchster/floppywaffle2/internal/game"
)

// footerRows is the space reserved below the play field for the help bar.
const footerRows = 1

// Model is the Bubble Tea model running one play session.
// It owns the frame loop, the recurring spawn timer, input mapping, and the
// sprite build lifecycle; all game rules live in the game package.
type Model struct {
	game    *game.Game
	gameCfg config.Config
	screen  *core.Screen
	rt      core.RuntimeConfig

	keys KeyMap
	help help.Model

	inputFrame core.InputFrame
	gameState  core.GameState
	spawnGen   int // Invalidates spawn timers armed by earlier sessions
	quitting   bool
}

// NewModel creates a model for the given game.
func NewModel(g *game.Game, gameCfg config.Config, rt core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		gameCfg:    gameCfg,
		screen:     core.NewScreen(rt.ScreenW, core.Max(1, rt.ScreenH-footerRows)),
		rt:         rt,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
}

// spawnInterval returns the configured obstacle spawn period.
func (m Model) spawnInterval() time.Duration {
	return time.Duration(m.gameCfg.Obstacles.SpawnIntervalMs) * time.Millisecond
}

// Init starts the session: the game begins running immediately at process
// start, with the frame loop, the spawn timer, and the sprite build all
// kicked off together.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.rt)
	m.game.Start()

	return tea.Batch(
		tickCmd(m.rt.TickRate),
		spawnCmd(m.spawnInterval(), m.spawnGen),
		buildSpritesCmd(m.screen.Width(), m.screen.Height()),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spritesBuiltMsg:
		return m.handleSpritesBuilt(msg)

	case TickMsg:
		return m.handleTick()

	case spawnTickMsg:
		return m.handleSpawnTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Keys outside the binding set are
// silently ignored.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.inputFrame.Set(core.ActionJump)
	case core.ActionRestart:
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleMouse maps a pointer press to the same logical action as the jump
// key. All other pointer events are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		m.inputFrame.Set(core.ActionJump)
	}
	return m, nil
}

// handleResize adjusts the play field to the new terminal size and
// invalidates the sprites; rendering degrades to flat shapes until the
// rebuild for the new size arrives.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-footerRows))

	m.game.SetSprites(nil)
	return m, buildSpritesCmd(m.screen.Width(), m.screen.Height())
}

// handleSpritesBuilt installs a finished sprite build, unless the terminal
// was resized again while it was rendering.
func (m Model) handleSpritesBuilt(msg spritesBuiltMsg) (tea.Model, tea.Cmd) {
	if msg.provider.ReadyFor(m.screen.Width(), m.screen.Height()) {
		m.game.SetSprites(msg.provider)
	}
	return m, nil
}

// handleTick runs one simulation tick and re-arms the frame loop. When the
// tick restarted the game, the spawn timer is re-armed as well.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Started {
		m.spawnGen++
		return m, tea.Batch(tickCmd(m.rt.TickRate), spawnCmd(m.spawnInterval(), m.spawnGen))
	}
	return m, tickCmd(m.rt.TickRate)
}

// handleSpawnTick spawns one obstacle and re-arms the timer, but only while
// the game is still running; after a game over the timer simply stops.
// Firings from a previous session's timer are dropped.
func (m Model) handleSpawnTick(msg spawnTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.spawnGen || !m.game.Running() {
		return m, nil
	}
	m.game.SpawnObstacle()
	return m, spawnCmd(m.spawnInterval(), m.spawnGen)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".floppy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("floppy_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the play field plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for one game.
func Run(g *game.Game, gameCfg config.Config, rt core.RuntimeConfig) error {
	model := NewModel(g, gameCfg, rt)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer tap doubles as the jump key
	)

	_, err := p.Run()
	return err
}
