package game

import "github.com/benchster/floppywaffle2/internal/core"

// Obstacle is a paired top/bottom barrier with a fixed-height gap at a
// randomized vertical offset. It moves leftward at constant speed and is
// removed once fully past the left edge.
type Obstacle struct {
	X         float64 // Left edge, decreases monotonically until removal
	Width     float64
	TopHeight float64 // Bottom of the hanging top barrier, fixed at creation
	BottomY   float64 // Top of the standing bottom barrier, = TopHeight + gap
}

// NewObstacle creates an obstacle at horizontal position x.
// The caller guarantees minTopHeight <= topHeight <= FieldH-gap-bottomMargin,
// so the gap is always reachable from any entry position.
func NewObstacle(x, width, topHeight, gapHeight float64) Obstacle {
	return Obstacle{
		X:         x,
		Width:     width,
		TopHeight: topHeight,
		BottomY:   topHeight + gapHeight,
	}
}

// Update moves the obstacle left by the given per-tick displacement.
func (o *Obstacle) Update(speed float64) {
	o.X -= speed
}

// OffScreen reports whether the trailing edge has passed the left boundary.
func (o Obstacle) OffScreen() bool {
	return o.X+o.Width < 0
}

// CollidesWith tests the player's box against both barriers. Given
// horizontal overlap, a collision is a player top above the gap or a player
// bottom below it; absence of both means safe passage through the gap.
func (o Obstacle) CollidesWith(player core.RectF) bool {
	if player.Right() <= o.X || player.X >= o.X+o.Width {
		return false
	}
	return player.Y < o.TopHeight || player.Bottom() > o.BottomY
}
