// Package button identifies physical input sources: keyboard keys, mouse
// buttons and gamepad buttons.
package button

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Parse errors.
var (
	ErrEmpty         = errors.New("empty button name")
	ErrUnknownDevice = errors.New("unknown device")
	ErrUnknownButton = errors.New("unknown button")
)

// Device is the kind of hardware a button belongs to.
type Device uint8

const (
	DeviceKey Device = iota
	DeviceMouse
	DevicePad
)

var deviceNames = map[Device]string{
	DeviceKey:   "key",
	DeviceMouse: "mouse",
	DevicePad:   "pad",
}

// String returns the device prefix used in button names.
func (d Device) String() string {
	if name, ok := deviceNames[d]; ok {
		return name
	}
	return "unknown"
}

// Mouse button names.
const (
	MouseLeft     = "left"
	MouseMiddle   = "middle"
	MouseRight    = "right"
	MouseBack     = "back"
	MouseForward  = "forward"
	MouseButton10 = "button10"
	MouseButton11 = "button11"
)

var mouseNames = []string{
	MouseLeft, MouseMiddle, MouseRight, MouseBack, MouseForward,
	MouseButton10, MouseButton11,
}

var padNames = []string{
	"south", "east", "west", "north",
	"l1", "r1", "l2", "r2", "l3", "r3",
	"select", "start",
	"dpad-up", "dpad-down", "dpad-left", "dpad-right",
}

// Button is a single physical input source. Keyboard buttons are named the
// way bubbletea names keys ("a", "ctrl+c", "up", "space").
type Button struct {
	Device Device
	Name   string
}

// Key returns a keyboard button.
func Key(name string) Button {
	return Button{Device: DeviceKey, Name: name}
}

// Mouse returns a mouse button.
func Mouse(name string) Button {
	return Button{Device: DeviceMouse, Name: name}
}

// Pad returns a gamepad button.
func Pad(name string) Button {
	return Button{Device: DevicePad, Name: name}
}

// Compare orders buttons by device, then by name.
func (b Button) Compare(other Button) int {
	if c := cmp.Compare(b.Device, other.Device); c != 0 {
		return c
	}
	return strings.Compare(b.Name, other.Name)
}

// String returns the canonical "device:name" form accepted by Parse.
func (b Button) String() string {
	return b.Device.String() + ":" + b.Name
}

// Label returns a short display form. Keyboard keys drop the device prefix.
func (b Button) Label() string {
	if b.Device == DeviceKey {
		return b.Name
	}
	return b.String()
}

// IsZero reports whether b is the zero Button.
func (b Button) IsZero() bool {
	return b == Button{}
}

// Parse reads a button name.
//
// Accepted forms are "device:name" with device one of key, mouse or pad, or a
// bare name which is taken as a keyboard key. A single space is the space key.
func Parse(s string) (Button, error) {
	if s == " " {
		return Key("space"), nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Button{}, ErrEmpty
	}

	prefix, name, found := strings.Cut(s, ":")
	if !found || prefix == "" || name == "" {
		return Key(s), nil
	}

	switch strings.ToLower(prefix) {
	case "key":
		return Key(name), nil
	case "mouse":
		name = strings.ToLower(name)
		if !slices.Contains(mouseNames, name) {
			return Button{}, fmt.Errorf("%w: mouse %q", ErrUnknownButton, name)
		}
		return Mouse(name), nil
	case "pad":
		name = strings.ToLower(name)
		if !slices.Contains(padNames, name) {
			return Button{}, fmt.Errorf("%w: pad %q", ErrUnknownButton, name)
		}
		return Pad(name), nil
	}
	return Button{}, fmt.Errorf("%w: %q", ErrUnknownDevice, prefix)
}

// MustParse is like Parse but panics on error. Use it for literals.
func MustParse(s string) Button {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseAll parses every name in names.
func ParseAll(names []string) ([]Button, error) {
	out := make([]Button, 0, len(names))
	for _, name := range names {
		b, err := Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
