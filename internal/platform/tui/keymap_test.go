package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/benchster/floppywaffle2/internal/core"
)

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w jumps", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionJump},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unmapped key is ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
		{"down is ignored", tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	if len(km.ShortHelp()) != 3 {
		t.Errorf("ShortHelp should list all three bindings, got %d", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 1 || len(km.FullHelp()[0]) != 3 {
		t.Error("FullHelp should hold one column of three bindings")
	}
}
