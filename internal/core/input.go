package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter, Space - press the on-screen button
	ActionBack           // B, Escape - leave to the menu
	ActionRestart        // R - play again after a session ends
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionMute           // M - toggle sound effects
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionMute:
		return "Mute"
	default:
		return "Unknown"
	}
}

// Tap is a pointer press at a screen cell.
type Tap struct {
	X, Y int
}

// InputFrame collects the input for one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	// Taps are pointer presses in arrival order.
	Taps []Tap
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddTap records a pointer press at cell (x, y).
func (f *InputFrame) AddTap(x, y int) {
	f.Taps = append(f.Taps, Tap{X: x, Y: y})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Taps = f.Taps[:0]
}
