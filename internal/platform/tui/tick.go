// Package tui provides the Bubble Tea integration for Sky Battle.
// It handles the terminal UI loop, input mapping, rendering and the SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the battle
// that scheduled it, so a battle never consumes a tick left over from another.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after ms milliseconds.
func tickCmd(ms int, gen uint64) tea.Cmd {
	if ms <= 0 {
		ms = 50
	}
	return tea.Tick(time.Duration(ms)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
