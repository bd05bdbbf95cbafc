package game

import "github.com/benchster/floppywaffle2/internal/core"

// Backdrop is the horizontally scrolling tiled background. Purely cosmetic:
// no collision, no scoring, just a wrapped scroll offset.
type Backdrop struct {
	X     float64 // Scroll offset, kept in [0, Width)
	Width float64

	speed float64
}

// NewBackdrop creates a backdrop covering a field of the given width.
func NewBackdrop(width, scrollSpeed float64) Backdrop {
	return Backdrop{Width: width, speed: scrollSpeed}
}

// Update advances the scroll and wraps the offset into [0, Width), so the
// value never grows without bound and never goes negative.
func (b *Backdrop) Update() {
	b.X = core.Mod(b.X-b.speed, b.Width)
}
