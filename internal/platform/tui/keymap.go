package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrajewski/tui-scavenger/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes the bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
//
// Shifted movement keys (WASD in caps, shift+arrows) set the movement
// action together with the sprint modifier.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true

	case "w", "up":
		frame.Set(core.ActionUp)
	case "s", "down":
		frame.Set(core.ActionDown)
	case "a", "left":
		frame.Set(core.ActionLeft)
	case "d", "right":
		frame.Set(core.ActionRight)

	case "W", "shift+up":
		frame.Set(core.ActionUp)
		frame.Set(core.ActionSprint)
	case "S", "shift+down":
		frame.Set(core.ActionDown)
		frame.Set(core.ActionSprint)
	case "A", "shift+left":
		frame.Set(core.ActionLeft)
		frame.Set(core.ActionSprint)
	case "D", "shift+right":
		frame.Set(core.ActionRight)
		frame.Set(core.ActionSprint)

	case " ":
		frame.Set(core.ActionFire)
	case "e":
		frame.Set(core.ActionPickup)
	case "g":
		frame.Set(core.ActionDrop)
	case "f":
		frame.Set(core.ActionInteract)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "p", "esc":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		frame.Slot = int(key[0] - '1')
	}

	return false
}

// MapMouseToFrame updates an input frame based on a mouse message: motion
// moves the aim point, the left button fires, the wheel scrolls the
// inventory selection.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.AimX = msg.X
	frame.AimY = msg.Y

	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress {
			frame.Set(core.ActionFire)
		}
	case tea.MouseButtonWheelUp:
		frame.Scroll--
	case tea.MouseButtonWheelDown:
		frame.Scroll++
	}
}
