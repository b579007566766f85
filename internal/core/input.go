package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the session consumes actions.
type Action int

const (
	ActionNone    Action = iota
	ActionImpulse        // Space, W - throw a web, the sole control primitive
	ActionUp             // Menu cursor up
	ActionDown           // Menu cursor down
	ActionConfirm        // Enter - start run / confirm selection
	ActionBack           // B, Escape - back to menu
	ActionRestart        // R - restart after game over
	ActionShare          // X - export the final frame after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionImpulse:
		return "Impulse"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionShare:
		return "Share"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
