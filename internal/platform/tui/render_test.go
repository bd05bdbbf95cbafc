package tui

import (
	"strings"
	"testing"

	"github.com/benchster/floppywaffle2/internal/core"
)

func TestRenderScreenContent(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColor(0, 1, "hello", core.ColorBrightYellow)
	s.SetCell(9, 2, core.Cell{Rune: '#', Color: core.ColorGreen})

	out := RenderScreen(s)

	if !strings.Contains(out, "hello") {
		t.Error("rendered output should contain the drawn text")
	}
	if !strings.Contains(out, "#") {
		t.Error("rendered output should contain the drawn cell")
	}
	if strings.Count(out, "\n") != s.Height()-1 {
		t.Errorf("rendered output has %d newlines, expected %d", strings.Count(out, "\n"), s.Height()-1)
	}
}

func TestRenderScreenUnknownColorFallsBack(t *testing.T) {
	s := core.NewScreen(4, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'z', Color: core.Color(200)})

	// Must not panic on a color without a style entry
	out := RenderScreen(s)
	if !strings.Contains(out, "z") {
		t.Error("cell with unknown color should still render its rune")
	}
}
