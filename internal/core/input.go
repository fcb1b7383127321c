package core

// Command represents a semantic input, abstracted from physical key presses.
// The simulation consumes the flight commands; the platform handles the rest.
type Command int

const (
	CommandNone     Command = iota
	CommandMoveUp           // Up arrow, W - start climbing
	CommandMoveDown         // Down arrow, S - start diving
	CommandStop             // Release of up/down
	CommandFire             // Space - fire one projectile
	CommandPause            // P - pause/unpause
	CommandRestart          // R - restart after game over
	CommandConfirm          // Enter - confirm selection in menu
	CommandBack             // B, Escape - go back to menu
	CommandQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandMoveUp:
		return "MoveUp"
	case CommandMoveDown:
		return "MoveDown"
	case CommandStop:
		return "Stop"
	case CommandFire:
		return "Fire"
	case CommandPause:
		return "Pause"
	case CommandRestart:
		return "Restart"
	case CommandConfirm:
		return "Confirm"
	case CommandBack:
		return "Back"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsFlight reports whether the command is consumed by the simulation itself.
func (c Command) IsFlight() bool {
	switch c {
	case CommandMoveUp, CommandMoveDown, CommandStop, CommandFire:
		return true
	}
	return false
}
