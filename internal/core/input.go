package core

import "fmt"

// Command is a discrete player intent delivered to the game, abstracted
// from physical key presses.
type Command int

const (
	CommandNone  Command = iota
	CommandLeft          // Left arrow, A, H - move paddle left
	CommandRight         // Right arrow, D, L - move paddle right
	CommandStart         // Space, Enter - start the game
	CommandReset         // R - rebuild the field and start again
)

// String returns the stable lowercase name of the command.
// The names are persisted in the run journal, so they must not change.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandStart:
		return "start"
	case CommandReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ParseCommand converts a name produced by Command.String back to a Command.
func ParseCommand(name string) (Command, error) {
	switch name {
	case "none":
		return CommandNone, nil
	case "left":
		return CommandLeft, nil
	case "right":
		return CommandRight, nil
	case "start":
		return CommandStart, nil
	case "reset":
		return CommandReset, nil
	}
	return CommandNone, fmt.Errorf("core: unknown command %q", name)
}

// IsMove reports whether the command moves the paddle.
func (c Command) IsMove() bool {
	return c == CommandLeft || c == CommandRight
}
