package game

import (
	"github.com/benchster/floppywaffle2/internal/config"
	"github.com/benchster/floppywaffle2/internal/core"
)

// Tilt is a purely visual lean derived from vertical velocity.
const (
	tiltPerVelocity = 3.0  // Degrees of tilt per unit of vertical velocity
	maxTiltDeg      = 25.0 // Tilt is clamped to [-maxTiltDeg, +maxTiltDeg]
)

// Player is the gravity-driven entity the session revolves around.
// X is fixed after construction; only Y and VelY change during play.
type Player struct {
	X, Y   float64
	Width  float64
	Height float64
	VelY   float64

	gravity float64
	impulse float64
}

// NewPlayer creates a player from the tuning config, vertically centered.
func NewPlayer(cfg config.Config) Player {
	p := Player{
		X:       cfg.Player.X,
		Width:   cfg.Player.Width,
		Height:  cfg.Player.Height,
		gravity: cfg.Physics.Gravity,
		impulse: cfg.Physics.JumpImpulse,
	}
	p.Reset()
	return p
}

// Reset re-centers the player vertically and zeroes its velocity.
func (p *Player) Reset() {
	p.Y = (FieldH - p.Height) / 2
	p.VelY = 0
}

// Update applies one tick of physics and the boundary rules.
// Returns true on ground contact, which ends the session; the caller owns
// that transition. The position is clamped to stay on the field either way,
// so 0 <= Y <= FieldH-Height holds after every call.
func (p *Player) Update() (grounded bool) {
	p.VelY += p.gravity
	p.Y += p.VelY

	// Head bump absorbs all momentum.
	if p.Y < 0 {
		p.Y = 0
		p.VelY = 0
	}

	if p.Y+p.Height > FieldH {
		p.Y = FieldH - p.Height
		return true
	}
	return false
}

// Jump sets the vertical velocity to the configured impulse. The assignment
// is absolute, not additive, so a flap feels identical at any fall speed.
func (p *Player) Jump() {
	p.VelY = p.impulse
}

// TiltDeg returns the drawing tilt for the current velocity, recomputed at
// every draw rather than stored.
func (p Player) TiltDeg() float64 {
	return core.ClampF(p.VelY*tiltPerVelocity, -maxTiltDeg, maxTiltDeg)
}

// Rect returns the player's bounding box in field units.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}
