package keymap

// EventKind tags input events and translated outputs.
type EventKind uint8

const (
	// EventNone is an event the translator ignores.
	EventNone EventKind = iota
	// EventPress is a button going down.
	EventPress
	// EventRelease is a button going up.
	EventRelease
	// EventMove is mouse motion.
	EventMove
)

// String returns a string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventMove:
		return "move"
	default:
		return "none"
	}
}

// Event is a raw input event. Button is set for press and release events,
// Motion for move events.
type Event[B any] struct {
	Kind   EventKind
	Button B
	Motion Motion
}

// Press returns a press event for b.
func Press[B any](b B) Event[B] {
	return Event[B]{Kind: EventPress, Button: b}
}

// Release returns a release event for b.
func Release[B any](b B) Event[B] {
	return Event[B]{Kind: EventRelease, Button: b}
}

// Move returns a motion event.
func Move[B any](m Motion) Event[B] {
	return Event[B]{Kind: EventMove, Motion: m}
}

// Output is a translated event. Action is set for press and release
// outputs, Motion (already transformed) for move outputs.
type Output[A any] struct {
	Kind   EventKind
	Action A
	Motion Motion
}
