// Package sprites procedurally renders the game's three visual assets onto
// offscreen cell surfaces: no files are loaded, every pixel comes from
// primitive rect/disc drawing. A Provider is built for one concrete screen
// size; until a build for the current size has completed, callers must fall
// back to flat-shape rendering.
package sprites

import "github.com/benchster/floppywaffle2/internal/core"

// Logical asset dimensions in field units. The field itself is the size of
// the backdrop, so the cell scale of a build is screen size over backdrop
// size.
const (
	PlayerSize = 30
	ObstacleW  = 50
	ObstacleH  = 400
	BackdropW  = 320
	BackdropH  = 480

	assetCount = 3
)

// Provider holds the three pre-rendered surfaces for one screen size.
type Provider struct {
	player   *core.Screen
	obstacle *core.Screen
	backdrop *core.Screen

	screenW, screenH int
	loaded           int // Count of finished surfaces, ready at assetCount
}

// Build renders all three assets for the given screen size. It is pure and
// synchronous; the platform runs it off the update loop and installs the
// result via a message, which is what makes the ready flag meaningful.
func Build(screenW, screenH int) *Provider {
	p := &Provider{screenW: screenW, screenH: screenH}

	sx := float64(screenW) / BackdropW
	sy := float64(screenH) / BackdropH

	p.player = buildPlayer(scaleDim(PlayerSize, sx), scaleDim(PlayerSize, sy))
	p.loaded++
	p.obstacle = buildObstacle(scaleDim(ObstacleW, sx), scaleDim(ObstacleH, sy))
	p.loaded++
	p.backdrop = buildBackdrop(screenW, screenH)
	p.loaded++

	return p
}

func scaleDim(logical float64, scale float64) int {
	return core.Max(1, int(logical*scale+0.5))
}

// Ready reports whether all assets have finished rendering.
// Safe to call on a nil provider.
func (p *Provider) Ready() bool {
	return p != nil && p.loaded == assetCount
}

// ReadyFor reports readiness for a specific screen size; a provider built
// for another size counts as not ready, forcing fallback until the rebuild
// lands. Safe to call on a nil provider.
func (p *Provider) ReadyFor(screenW, screenH int) bool {
	return p.Ready() && p.screenW == screenW && p.screenH == screenH
}

// Player returns the player surface.
func (p *Provider) Player() *core.Screen { return p.player }

// Obstacle returns the barrier surface.
func (p *Provider) Obstacle() *core.Screen { return p.obstacle }

// Backdrop returns the background surface.
func (p *Provider) Backdrop() *core.Screen { return p.backdrop }

// transparent makes every cell of a fresh surface a zero cell, which Blit
// treats as see-through.
func transparent(s *core.Screen) *core.Screen {
	s.Fill(0)
	return s
}

// buildPlayer draws a round body with an eye and a beak. Cells outside the
// disc stay transparent so the tilt rotation has clean edges.
func buildPlayer(w, h int) *core.Screen {
	s := transparent(core.NewScreen(w, h))

	cx := float64(w-1) / 2
	cy := float64(h-1) / 2
	rx := float64(w) / 2
	ry := float64(h) / 2

	body := core.Cell{Rune: '█', Color: core.ColorBrightYellow}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := (float64(x) - cx) / rx
			ny := (float64(y) - cy) / ry
			if nx*nx+ny*ny <= 1 {
				s.SetCell(x, y, body)
			}
		}
	}

	// Eye toward the upper right, beak on the right edge at mid-height.
	s.SetCell(w-1-w/4, h/4, core.Cell{Rune: '●', Color: core.ColorBrightWhite})
	s.SetCell(w-1, h/2, core.Cell{Rune: '▶', Color: core.ColorOrange})

	return s
}

// buildObstacle draws a barrier column: bright rims, darker body, cap rows
// at both ends so either end can face the gap.
func buildObstacle(w, h int) *core.Screen {
	s := core.NewScreen(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.Cell{Rune: '█', Color: core.ColorGreen}
			if x == 0 || x == w-1 {
				c.Color = core.ColorBrightGreen
			}
			if y == 0 || y == h-1 {
				c = core.Cell{Rune: '▓', Color: core.ColorBrightGreen}
			}
			s.SetCell(x, y, c)
		}
	}

	return s
}

// buildBackdrop draws the full-screen background: a starfield, two cloud
// bands, and a ground strip. Every cell is opaque so two tiled copies always
// cover the whole frame.
func buildBackdrop(w, h int) *core.Screen {
	s := core.NewScreen(w, h) // Opaque blank sky

	// Deterministic sparse stars in the upper two thirds.
	for i := 0; i < w*h/40+1; i++ {
		x := (i*37 + 13) % core.Max(1, w)
		y := (i*53 + 7) % core.Max(1, h*2/3)
		s.SetCell(x, y, core.Cell{Rune: '·', Color: core.ColorGray})
	}

	// Cloud bands.
	cloud := core.Cell{Rune: '~', Color: core.ColorBrightCyan}
	for _, band := range []int{h / 5, h * 2 / 5} {
		for x := 0; x < w; x++ {
			if (x/5)%3 != 0 {
				s.SetCell(x, band, cloud)
			}
		}
	}

	// Ground strip along the bottom row.
	for x := 0; x < w; x++ {
		s.SetCell(x, h-1, core.Cell{Rune: '▄', Color: core.ColorYellow})
	}

	return s
}
