package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sky-battle/internal/core"
)

// KeyMapper translates Bubble Tea key messages to commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command.
// Returns the command (may be CommandNone) and whether it's a quit request.
//
// Terminals report no key releases, so holding a direction keeps the craft
// moving until the stop key or the opposite direction is pressed.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (cmd core.Command, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.CommandQuit, true
	case "w", "up", "k":
		return core.CommandMoveUp, false
	case "s", "down", "j":
		return core.CommandMoveDown, false
	case "x", "left", "right":
		return core.CommandStop, false
	case " ", "f":
		return core.CommandFire, false
	case "p":
		return core.CommandPause, false
	case "r":
		return core.CommandRestart, false
	case "enter":
		return core.CommandConfirm, false
	case "b", "esc":
		return core.CommandBack, false
	}

	return core.CommandNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
