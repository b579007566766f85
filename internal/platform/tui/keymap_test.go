package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"flipspider/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space throws web", tea.KeyMsg{Type: tea.KeySpace}, core.ActionImpulse},
		{"w throws web", runeKey('w'), core.ActionImpulse},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"k moves up", runeKey('k'), core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"x exports", runeKey('x'), core.ActionShare},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyBindingsDisjoint(t *testing.T) {
	// No key may map to two actions; MapKey order would silently shadow one
	k := DefaultKeyMap()
	seen := map[string]string{}

	bindings := map[string][]string{
		"impulse": k.Impulse.Keys(),
		"up":      k.Up.Keys(),
		"down":    k.Down.Keys(),
		"confirm": k.Confirm.Keys(),
		"back":    k.Back.Keys(),
		"restart": k.Restart.Keys(),
		"share":   k.Share.Keys(),
		"quit":    k.Quit.Keys(),
	}

	for action, keys := range bindings {
		for _, key := range keys {
			if prev, ok := seen[key]; ok {
				t.Errorf("key %q bound to both %s and %s", key, prev, action)
			}
			seen[key] = action
		}
	}
}
