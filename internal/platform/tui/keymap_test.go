package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-battle/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Command
		isQuit bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandMoveUp, false},
		{"w", runeKey('w'), core.CommandMoveUp, false},
		{"k", runeKey('k'), core.CommandMoveUp, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandMoveDown, false},
		{"s", runeKey('s'), core.CommandMoveDown, false},
		{"x stops", runeKey('x'), core.CommandStop, false},
		{"left stops", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandStop, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace}, core.CommandFire, false},
		{"f fires", runeKey('f'), core.CommandFire, false},
		{"pause", runeKey('p'), core.CommandPause, false},
		{"restart", runeKey('r'), core.CommandRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.CommandBack, false},
		{"q quits", runeKey('q'), core.CommandQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandQuit, true},
		{"unbound", runeKey('z'), core.CommandNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
