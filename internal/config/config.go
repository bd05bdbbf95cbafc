// Package config provides YAML-based configuration loading for the game's
// tunable constants. All values are fixed for the lifetime of a session;
// there is no runtime reconfiguration.
package config

import "fmt"

// Config contains every tunable constant of the game.
//
// All motion values are per-tick increments, not time-scaled: gameplay speed
// is deliberately coupled to the tick rate, matching the original design.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Backdrop  Backdrop  `yaml:"backdrop"`
}

// Physics defines the vertical motion parameters.
type Physics struct {
	// Gravity is the downward velocity increment applied every tick.
	Gravity float64 `yaml:"gravity"`
	// JumpImpulse is the velocity the player is set to on jump. It is an
	// absolute assignment, not an addition, so a flap feels the same at
	// any fall speed. Negative is up.
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// Player defines the player hitbox in field units.
type Player struct {
	X      float64 `yaml:"x"` // Fixed horizontal position
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Obstacles defines obstacle geometry, motion, and spawn cadence.
type Obstacles struct {
	Speed           float64 `yaml:"speed"`             // Leftward displacement per tick
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"` // Time between obstacle creations
	Width           float64 `yaml:"width"`
	GapHeight       float64 `yaml:"gap_height"`      // Vertical clearance of the passable gap
	MinTopHeight    float64 `yaml:"min_top_height"`  // Lower bound for the randomized top barrier
	BottomMargin    float64 `yaml:"bottom_margin"`   // Space always kept below the gap
}

// Backdrop defines the cosmetic scrolling background.
type Backdrop struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward scroll per tick
}

// Validate checks that the configuration can produce a playable field of
// the given height. In particular every spawned gap must be reachable:
// min_top_height + gap_height + bottom_margin must fit inside the field.
func (c Config) Validate(fieldH float64) error {
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player dimensions must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	if c.Obstacles.Speed <= 0 {
		return fmt.Errorf("obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	}
	if c.Obstacles.SpawnIntervalMs <= 0 {
		return fmt.Errorf("obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMs)
	}
	if c.Obstacles.Width <= 0 {
		return fmt.Errorf("obstacles.width must be positive, got %v", c.Obstacles.Width)
	}
	if c.Obstacles.GapHeight <= c.Player.Height {
		return fmt.Errorf("obstacles.gap_height %v must exceed player height %v", c.Obstacles.GapHeight, c.Player.Height)
	}
	if c.Obstacles.MinTopHeight < 0 || c.Obstacles.BottomMargin < 0 {
		return fmt.Errorf("obstacle margins must be non-negative")
	}
	if c.Obstacles.MinTopHeight+c.Obstacles.GapHeight+c.Obstacles.BottomMargin > fieldH {
		return fmt.Errorf("gap placement range is empty: min_top_height %v + gap_height %v + bottom_margin %v exceeds field height %v",
			c.Obstacles.MinTopHeight, c.Obstacles.GapHeight, c.Obstacles.BottomMargin, fieldH)
	}
	if c.Backdrop.ScrollSpeed < 0 {
		return fmt.Errorf("backdrop.scroll_speed must be non-negative, got %v", c.Backdrop.ScrollSpeed)
	}
	return nil
}

// MaxTopHeight returns the upper bound for the randomized top barrier height
// on a field of the given height.
func (c Config) MaxTopHeight(fieldH float64) float64 {
	return fieldH - c.Obstacles.GapHeight - c.Obstacles.BottomMargin
}
