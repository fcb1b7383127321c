package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

func newTestSession() SessionModel {
	return NewSessionModel(SessionOptions{
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24},
		Tuning:     quietTuning(),
		Difficulty: config.DifficultyNormal,
		Logger:     log.New(io.Discard),
	})
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, want SessionModel", next)
	}
	return sm, cmd
}

func TestSessionMenuToBattleAndBack(t *testing.T) {
	m := newTestSession()

	m, cmd := sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("enter did not start a battle")
	}
	if cmd == nil {
		t.Fatal("battle start returned no tick command")
	}
	if !m.game.embedded {
		t.Error("session battle is not embedded")
	}

	m, _ = sendSession(t, m, runeKey('p'))
	m, _ = sendSession(t, m, runeKey('b'))
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("b while paused did not return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu ended the session")
	}
}

func TestSessionStartsSelectedLevel(t *testing.T) {
	m := newTestSession()

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("no battle started")
	}
	if got := m.game.run.LevelID(); got != "level-two" {
		t.Errorf("LevelID() = %q, want level-two", got)
	}
}

func TestSessionScoreboardAndBack(t *testing.T) {
	m := newTestSession()

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("tab did not open the scoreboard")
	}
	if m.View() == "" {
		t.Error("scoreboard rendered nothing")
	}

	m, _ = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu || m.quitting {
		t.Error("esc did not return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()

	m, cmd := sendSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in the menu did not end the session")
	}
	if m.View() != "" {
		t.Error("quitting session still renders")
	}
}
