// Package actions defines the logical actions input is mapped to, and their
// default bindings.
package actions

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
)

var (
	// ErrUnknownAction is returned by Parse for names outside the vocabulary.
	ErrUnknownAction = errors.New("unknown action")
	// ErrReservedButton is returned when binding a button the application
	// handles before translation.
	ErrReservedButton = errors.New("reserved button")
)

// Action represents a user-triggerable action.
type Action string

const (
	// Movement
	MoveUp    Action = "move_up"
	MoveDown  Action = "move_down"
	MoveLeft  Action = "move_left"
	MoveRight Action = "move_right"
	Jump      Action = "jump"
	Crouch    Action = "crouch"

	// Combat
	Fire   Action = "fire"
	Aim    Action = "aim"
	Reload Action = "reload"

	// World
	Interact Action = "interact"

	// Application
	Pause Action = "pause"
	Menu  Action = "menu" // opens the rebinding editor
	Quit  Action = "quit"
)

var labels = map[Action]string{
	MoveUp:    "Move up",
	MoveDown:  "Move down",
	MoveLeft:  "Move left",
	MoveRight: "Move right",
	Jump:      "Jump",
	Crouch:    "Crouch",
	Fire:      "Fire",
	Aim:       "Aim",
	Reload:    "Reload",
	Interact:  "Interact",
	Pause:     "Pause",
	Menu:      "Edit bindings",
	Quit:      "Quit",
}

// All returns every known action in ascending order.
func All() []Action {
	out := make([]Action, 0, len(labels))
	for a := range labels {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Parse returns the action with the given name.
func Parse(name string) (Action, error) {
	a := Action(name)
	if _, ok := labels[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// Label returns a human-readable description of a.
func Label(a Action) string {
	if l, ok := labels[a]; ok {
		return l
	}
	return string(a)
}

// Defaults returns a builder holding the default bindings.
// Every action is bound to at least one button and to at most three.
func Defaults() *keymap.Builder[button.Button, Action] {
	key, mouse := button.Key, button.Mouse
	return keymap.NewBuilder[button.Button, Action]().
		BindAll(MoveUp, key("up"), key("w"), button.Pad("dpad-up")).
		BindAll(MoveDown, key("down"), key("s"), button.Pad("dpad-down")).
		BindAll(MoveLeft, key("left"), key("a"), button.Pad("dpad-left")).
		BindAll(MoveRight, key("right"), key("d"), button.Pad("dpad-right")).
		BindAll(Jump, key("space"), button.Pad("south")).
		BindAll(Crouch, key("c"), button.Pad("east")).
		BindAll(Fire, mouse(button.MouseLeft), key("f"), button.Pad("r2")).
		BindAll(Aim, mouse(button.MouseRight), button.Pad("l2")).
		BindAll(Reload, key("r"), button.Pad("west")).
		BindAll(Interact, key("e"), button.Pad("north")).
		BindAll(Pause, key("p"), button.Pad("start")).
		BindAll(Menu, key("tab"), button.Pad("select")).
		BindAll(Quit, key("q"), key("ctrl+c"))
}

// DefaultBindings returns the default buttons of a.
func DefaultBindings(a Action) keymap.ButtonSet[button.Button] {
	set, _ := Defaults().RebindMap().Bindings(a)
	return set
}

// Required actions must keep at least one button, otherwise the user cannot
// leave the program or reach the editor.
var Required = []Action{Menu, Quit}

// reserved buttons never reach the Translator. The value is the only action
// the button may be bound to; empty means none.
var reserved = map[button.Button]Action{
	button.Key("?"):      "", // help
	button.Key("ctrl+c"): Quit,
}

// CheckBinding returns ErrReservedButton when b cannot be bound to a.
func CheckBinding(a Action, b button.Button) error {
	owner, ok := reserved[b]
	if !ok || (owner != "" && owner == a) {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrReservedButton, b)
}

// Restore rebinds every required action that is missing or has no buttons
// to its defaults. It returns the actions it restored.
func Restore(r *keymap.RebindMap[button.Button, Action]) []Action {
	var restored []Action
	for _, a := range Required {
		if set, ok := r.Bindings(a); ok && set.Len() > 0 {
			continue
		}
		r.InsertActionWithButtons(a, DefaultBindings(a))
		restored = append(restored, a)
	}
	return restored
}
