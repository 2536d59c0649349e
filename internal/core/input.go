package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys and mouse buttons to actions; the game
// only sees intents.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move up
	ActionDown            // S, Down arrow - move down
	ActionLeft            // A, Left arrow - move left
	ActionRight           // D, Right arrow - move right
	ActionSprint          // Shift held - sprint modifier
	ActionFire            // Left mouse button held - use the selected item
	ActionPickup          // E - pick up a ground item
	ActionDrop            // G - drop the selected item
	ActionInteract        // F - enter/exit a vehicle
	ActionConfirm         // Enter - confirm menu selection
	ActionPause           // P, Escape - pause/unpause
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionSprint:
		return "Sprint"
	case ActionFire:
		return "Fire"
	case ActionPickup:
		return "Pickup"
	case ActionDrop:
		return "Drop"
	case ActionInteract:
		return "Interact"
	case ActionConfirm:
		return "Confirm"
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

// InputFrame is the complete input intent for one simulation tick: triggered
// actions plus the analog-ish extras a top-down shooter needs (aim point,
// inventory slot selection, scroll wheel delta).
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// AimX, AimY is the aim point in screen cell coordinates. The game
	// converts it to world coordinates with the camera transform.
	AimX, AimY int

	// Slot is a direct inventory slot selection (0-8), or -1 for none.
	Slot int

	// Scroll is the inventory scroll delta for this frame (wheel notches).
	Scroll int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Slot:    -1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and deltas for the next frame. The aim point is
// kept: the mouse stays where it was until it moves again.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Slot = -1
	f.Scroll = 0
}

// MoveDir returns the movement intent as a (-1|0|1, -1|0|1) pair.
func (f InputFrame) MoveDir() (dx, dy int) {
	if f.Has(ActionLeft) {
		dx--
	}
	if f.Has(ActionRight) {
		dx++
	}
	if f.Has(ActionUp) {
		dy--
	}
	if f.Has(ActionDown) {
		dy++
	}
	return dx, dy
}
