package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hoppy/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultGameKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionJump},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultGameKeyMap()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, &frame); quit {
		t.Error("restart reported as quit")
	}
	if !frame.Has(core.ActionRestart) {
		t.Error("restart not recorded")
	}

	if quit := km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEsc}, &frame); !quit {
		t.Error("esc not reported as quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit recorded in the frame")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorHero)
	s.DrawText(2, 0, "cd", core.ColorCarrot)
	s.SetColored(0, 1, 'x', core.Color(200))

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "x"} {
		if !containsPlain(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

// containsPlain reports whether s contains want once ANSI escapes are removed.
func containsPlain(s, want string) bool {
	var plain []rune
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			plain = append(plain, r)
		}
	}
	return len(want) == 0 || indexRunes(plain, []rune(want)) >= 0
}

func indexRunes(hay, needle []rune) int {
outer:
	for i := 0; i+len(needle) <= len(hay); i++ {
		for j := range needle {
			if hay[i+j] != needle[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}
