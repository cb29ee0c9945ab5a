// Package teainput converts bubbletea messages into keymap events.
package teainput

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
)

// Event is a keymap event over concrete buttons.
type Event = keymap.Event[button.Button]

var mouseButtons = map[tea.MouseButton]string{
	tea.MouseButtonLeft:     button.MouseLeft,
	tea.MouseButtonMiddle:   button.MouseMiddle,
	tea.MouseButtonRight:    button.MouseRight,
	tea.MouseButtonBackward: button.MouseBack,
	tea.MouseButtonForward:  button.MouseForward,
	tea.MouseButton10:       button.MouseButton10,
	tea.MouseButton11:       button.MouseButton11,
}

// Wheel deltas. Positive y is away from the user.
var wheelDeltas = map[tea.MouseButton]keymap.Motion{
	tea.MouseButtonWheelUp:    keymap.Scroll(0, 1),
	tea.MouseButtonWheelDown:  keymap.Scroll(0, -1),
	tea.MouseButtonWheelLeft:  keymap.Scroll(-1, 0),
	tea.MouseButtonWheelRight: keymap.Scroll(1, 0),
}

// FromMsg converts msg into an input event. It returns false for messages
// that carry no input.
func FromMsg(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return FromKey(msg)
	case tea.MouseMsg:
		return FromMouse(msg)
	}
	return Event{}, false
}

// FromKey converts a key press. bubbletea does not report key releases.
func FromKey(msg tea.KeyMsg) (Event, bool) {
	b, ok := KeyButton(msg)
	if !ok {
		return Event{}, false
	}
	return keymap.Press(b), true
}

// KeyButton returns the button a key message refers to.
func KeyButton(msg tea.KeyMsg) (button.Button, bool) {
	name := msg.String()
	switch name {
	case "":
		return button.Button{}, false
	case " ":
		name = "space"
	}
	return button.Key(name), true
}

// FromMouse converts a mouse message. Wheel presses become scroll motion
// and pointer motion becomes an absolute cursor position in cells.
func FromMouse(msg tea.MouseMsg) (Event, bool) {
	if m, ok := wheelDeltas[msg.Button]; ok {
		if msg.Action != tea.MouseActionPress {
			return Event{}, false
		}
		return keymap.Move[button.Button](m), true
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		return keymap.Move[button.Button](keymap.AbsoluteCursor(float64(msg.X), float64(msg.Y))), true
	case tea.MouseActionPress:
		if b, ok := MouseButton(msg); ok {
			return keymap.Press(b), true
		}
	case tea.MouseActionRelease:
		// Some terminals report releases without saying which button.
		if b, ok := MouseButton(msg); ok {
			return keymap.Release(b), true
		}
	}
	return Event{}, false
}

// MouseButton returns the button a mouse message refers to. Wheel and
// motion-only messages have none.
func MouseButton(msg tea.MouseMsg) (button.Button, bool) {
	name, ok := mouseButtons[msg.Button]
	if !ok {
		return button.Button{}, false
	}
	return button.Mouse(name), true
}

// Size returns the viewport size reported by a resize message.
func Size(msg tea.WindowSizeMsg) keymap.Size {
	return keymap.Size{Width: float64(msg.Width), Height: float64(msg.Height)}
}
