package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the engine to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, h - shift piece left
	ActionRight              // Right arrow, l - shift piece right
	ActionDown               // Down arrow, j - step down, lock on failure
	ActionRotateRight        // Up arrow, k, x - rotate clockwise
	ActionRotateLeft         // z - rotate counter-clockwise
	ActionDrop               // Space - drop to the stack and lock
	ActionPause              // P - pause/unpause game
	ActionRestart            // R - restart from any state
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotateRight:
		return "RotateRight"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
