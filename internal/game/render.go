package game

import (
	"math"

	"github.com/benchster/floppywaffle2/internal/core"
	"github.com/benchster/floppywaffle2/internal/sprites"
)

// viewport projects logical field coordinates onto the destination cell
// grid. Recomputed per frame so resizes take effect immediately.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / FieldW,
		sy: float64(dst.Height()) / FieldH,
	}
}

func (v viewport) x(fx float64) int {
	return int(math.Floor(fx * v.sx))
}

func (v viewport) y(fy float64) int {
	return int(math.Floor(fy * v.sy))
}

func (v viewport) w(fw float64) int {
	return core.Max(1, int(math.Round(fw*v.sx)))
}

func (v viewport) h(fh float64) int {
	return core.Max(1, int(math.Round(fh*v.sy)))
}

// renderer is the per-frame drawing strategy. Exactly two variants exist:
// procedural sprites once the provider is ready, flat shapes before that.
// The choice is made once per frame in Game.Render, not per entity.
type renderer interface {
	drawBackdrop(dst *core.Screen, v viewport, b Backdrop)
	drawPlayer(dst *core.Screen, v viewport, p Player)
	drawObstacle(dst *core.Screen, v viewport, o Obstacle)
}

// shapeRenderer is the degraded mode used while sprites are not ready.
// It must stay visually functional on its own: colored boxes for the
// entities, a sparse scrolling texture for the backdrop.
type shapeRenderer struct{}

func (shapeRenderer) drawBackdrop(dst *core.Screen, v viewport, b Backdrop) {
	// Scroll-anchored dust so motion is visible even without the image.
	for i := 0; i < 24; i++ {
		fx := core.Mod(float64((i*67)%320)+b.X, FieldW)
		fy := float64((i*131)%400) + 20
		dst.SetCell(v.x(fx), v.y(fy), core.Cell{Rune: '·', Color: core.ColorGray})
	}
}

func (shapeRenderer) drawPlayer(dst *core.Screen, v viewport, p Player) {
	r := core.NewRect(v.x(p.X), v.y(p.Y), v.w(p.Width), v.h(p.Height))
	dst.DrawRect(r, core.Cell{Rune: '█', Color: core.ColorBrightYellow})
}

func (shapeRenderer) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	fill := core.Cell{Rune: '█', Color: core.ColorGreen}
	w := v.w(o.Width)
	x := v.x(o.X)

	top := core.NewRect(x, 0, w, v.y(o.TopHeight))
	dst.DrawRect(top, fill)

	by := v.y(o.BottomY)
	bottom := core.NewRect(x, by, w, dst.Height()-by)
	dst.DrawRect(bottom, fill)
}

// spriteRenderer draws the pre-rendered procedural surfaces.
type spriteRenderer struct {
	p *sprites.Provider
}

func (r spriteRenderer) drawBackdrop(dst *core.Screen, v viewport, b Backdrop) {
	img := r.p.Backdrop()
	// Two copies cover [0, FieldW) seamlessly for any offset in [0, FieldW):
	// the image repeats every FieldW, so (x-FieldW, x) is the covering pair.
	dst.Blit(img, v.x(b.X-b.Width), 0)
	dst.Blit(img, v.x(b.X), 0)
}

func (r spriteRenderer) drawPlayer(dst *core.Screen, v viewport, p Player) {
	dst.BlitRotated(r.p.Player(), v.x(p.X), v.y(p.Y), p.TiltDeg())
}

func (r spriteRenderer) drawObstacle(dst *core.Screen, v viewport, o Obstacle) {
	img := r.p.Obstacle()
	x := v.x(o.X)

	// Top barrier hangs downward: align the sprite's lower edge with the
	// top of the gap. Rows above the field are clipped by the screen.
	dst.Blit(img, x, v.y(o.TopHeight)-img.Height())

	// Bottom barrier stands on the field bottom, starting at the gap's end.
	dst.Blit(img, x, v.y(o.BottomY))
}
