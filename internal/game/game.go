// Package game implements the gated-obstacle side-scroller: a gravity-driven
// player must pass through moving barrier gaps, scoring one point per
// obstacle that scrolls off the field.
//
// The simulation runs on a fixed 320x480 logical field in float units and is
// projected onto the terminal cell grid only at render time. All motion is
// per-tick, so gameplay speed follows the tick rate.
package game

import (
	"fmt"
	"math/rand"

	"github.com/benchster/floppywaffle2/internal/config"
	"github.com/benchster/floppywaffle2/internal/core"
	"github.com/benchster/floppywaffle2/internal/sprites"
)

// Logical field dimensions, portrait orientation.
const (
	FieldW = 320.0
	FieldH = 480.0
)

// state is the controller's two-state machine.
type state int

const (
	stateStopped state = iota
	stateRunning
)

// Game owns all session state: the two-state machine, the score, the player,
// the backdrop, and the obstacle collection. One instance lives for the
// process; Start reconstructs the session in place.
type Game struct {
	cfg config.Config

	st        state
	score     int
	player    Player
	backdrop  Backdrop
	obstacles []Obstacle
	rng       *rand.Rand
	sprites   *sprites.Provider // nil or not ready selects fallback rendering
}

// New creates a game with the given tuning. Reset must be called before Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Floppy Waffle"
}

// Reset initializes the session for the given runtime parameters.
// The game starts stopped; the platform calls Start at process start.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.player = NewPlayer(g.cfg)
	g.backdrop = NewBackdrop(FieldW, g.cfg.Backdrop.ScrollSpeed)
	g.obstacles = make([]Obstacle, 0, 8)
	g.score = 0
	g.st = stateStopped
}

// Start transitions stopped -> running: zero score, empty obstacle
// collection, player re-centered with zero velocity. Calling it while
// already running is a no-op.
func (g *Game) Start() {
	if g.st == stateRunning {
		return
	}
	g.score = 0
	g.obstacles = g.obstacles[:0]
	g.player.Reset()
	g.st = stateRunning
}

// Running reports whether a session is in progress. The platform's
// recurring spawn timer gates its own rescheduling on this.
func (g *Game) Running() bool {
	return g.st == stateRunning
}

// Step advances the game by one tick.
//
// While stopped, jump input triggers a restart and nothing else happens this
// tick. While running: backdrop scroll, jump impulse, player physics (ground
// contact stops the session immediately), then each obstacle in order: move,
// collision test (a hit stops the session and skips the remaining obstacles
// this frame), off-screen removal with a score increment.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.st == stateStopped {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.Start()
			return core.StepResult{State: g.State(), Started: true}
		}
		return core.StepResult{State: g.State()}
	}

	g.backdrop.Update()

	if in.Has(core.ActionJump) {
		g.player.Jump()
	}

	if g.player.Update() {
		// Ground impact ends the session; the position is already clamped.
		g.st = stateStopped
		return core.StepResult{State: g.State()}
	}

	playerRect := g.player.Rect()
	speed := g.cfg.Obstacles.Speed

	// Filter in place. kept only ever writes behind the read index, so
	// aliasing the backing array is safe.
	kept := g.obstacles[:0]
	collided := false
	for i := 0; i < len(g.obstacles); i++ {
		ob := g.obstacles[i]
		if collided {
			// Remaining obstacles are skipped this frame, untouched.
			kept = append(kept, ob)
			continue
		}
		ob.Update(speed)
		if ob.CollidesWith(playerRect) {
			g.st = stateStopped
			collided = true
			kept = append(kept, ob)
			continue
		}
		if ob.OffScreen() {
			// Cleared: exactly one point, never retroactive.
			g.score++
			continue
		}
		kept = append(kept, ob)
	}
	g.obstacles = kept

	return core.StepResult{State: g.State()}
}

// SpawnObstacle appends a new obstacle at the right edge of the field with a
// uniformly random top barrier height. Called by the platform's recurring
// spawn timer; a no-op while stopped, so a timer firing that races a game
// over is harmless.
func (g *Game) SpawnObstacle() {
	if g.st != stateRunning {
		return
	}
	minTop := g.cfg.Obstacles.MinTopHeight
	maxTop := g.cfg.MaxTopHeight(FieldH)
	topHeight := minTop + g.rng.Float64()*(maxTop-minTop)
	g.obstacles = append(g.obstacles,
		NewObstacle(FieldW, g.cfg.Obstacles.Width, topHeight, g.cfg.Obstacles.GapHeight))
}

// SetSprites installs a sprite provider. Until one is installed and reports
// ready, rendering uses the flat-shape fallback.
func (g *Game) SetSprites(p *sprites.Provider) {
	g.sprites = p
}

// State returns the observable session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Running: g.st == stateRunning,
	}
}

// Render draws the current state into dst: backdrop, player, obstacles,
// score overlay, and the game-over message while stopped. The rendering
// variant (sprite vs flat shape) is selected once per frame from the
// provider's ready flag.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(dst)

	var r renderer = shapeRenderer{}
	if g.sprites.ReadyFor(dst.Width(), dst.Height()) {
		r = spriteRenderer{p: g.sprites}
	}

	r.drawBackdrop(dst, v, g.backdrop)
	r.drawPlayer(dst, v, g.player)
	for _, ob := range g.obstacles {
		r.drawObstacle(dst, v, ob)
	}

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	if g.st == stateStopped {
		g.drawGameOver(dst)
	}
}

// drawGameOver draws the centered end-of-session box.
func (g *Game) drawGameOver(dst *core.Screen) {
	title := "GAME OVER"
	subtitle := fmt.Sprintf("Score: %d  |  Space to restart", g.score)

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), core.Cell{Rune: ' '})
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
