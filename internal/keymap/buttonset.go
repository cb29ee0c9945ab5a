// Package keymap maps physical buttons to application actions.
//
// It keeps two views of the same bindings: a Translator, a flat
// Button -> Action map used once per input event, and a RebindMap, an
// Action -> ButtonSet map used for display and editing. ToTranslator and
// ToRebindMap convert between them deterministically.
//
// Nothing in this package performs I/O or locking. Each value has a single
// owner; callers sharing one across goroutines must synchronise themselves.
package keymap

import "iter"

// SetCapacity is the number of buttons a single action can hold.
const SetCapacity = 3

// Orderable is the constraint for button types. Compare must define a total
// order; conversions use it to lay buttons out in a reproducible order.
type Orderable[T any] interface {
	comparable
	Compare(other T) int
}

// Slot is one position of a ButtonSet. OK is false for an empty slot.
type Slot[B any] struct {
	Button B
	OK     bool
}

// ButtonSet holds up to SetCapacity distinct buttons bound to one action.
// The zero value is an empty set. Two sets compare equal with == when the
// same buttons occupy the same slots.
type ButtonSet[B Orderable[B]] struct {
	slots [SetCapacity]Slot[B]
}

// NewButtonSet builds a set from buttons in order, skipping duplicates.
// It returns false if some buttons did not fit.
func NewButtonSet[B Orderable[B]](buttons ...B) (ButtonSet[B], bool) {
	var s ButtonSet[B]
	ok := true
	for _, b := range buttons {
		if !s.TryInsert(b) {
			ok = false
		}
	}
	return s, ok
}

// Contains reports whether any occupied slot holds b.
func (s ButtonSet[B]) Contains(b B) bool {
	for _, slot := range s.slots {
		if slot.OK && slot.Button == b {
			return true
		}
	}
	return false
}

// TryInsert puts b into the first empty slot, scanning left to right.
// It returns false without touching the set when every slot is taken.
// Inserting a button that is already present changes nothing and returns true.
func (s *ButtonSet[B]) TryInsert(b B) bool {
	if s.Contains(b) {
		return true
	}
	for i := range s.slots {
		if !s.slots[i].OK {
			s.slots[i] = Slot[B]{Button: b, OK: true}
			return true
		}
	}
	return false
}

// Remove deletes b and shifts the buttons after it one slot left.
func (s *ButtonSet[B]) Remove(b B) bool {
	for i, slot := range s.slots {
		if slot.OK && slot.Button == b {
			copy(s.slots[i:], s.slots[i+1:])
			s.slots[SetCapacity-1] = Slot[B]{}
			return true
		}
	}
	return false
}

// Clear empties every slot.
func (s *ButtonSet[B]) Clear() {
	s.slots = [SetCapacity]Slot[B]{}
}

// Slots returns all SetCapacity slots in order, empty ones included.
func (s ButtonSet[B]) Slots() [SetCapacity]Slot[B] {
	return s.slots
}

// All yields the occupied slots in slot order.
func (s ButtonSet[B]) All() iter.Seq[B] {
	return func(yield func(B) bool) {
		for _, slot := range s.slots {
			if slot.OK && !yield(slot.Button) {
				return
			}
		}
	}
}

// Buttons returns the occupied slots in slot order.
func (s ButtonSet[B]) Buttons() []B {
	out := make([]B, 0, SetCapacity)
	for b := range s.All() {
		out = append(out, b)
	}
	return out
}

// Len returns the number of occupied slots.
func (s ButtonSet[B]) Len() int {
	n := 0
	for _, slot := range s.slots {
		if slot.OK {
			n++
		}
	}
	return n
}

// Full reports whether TryInsert would reject a new button.
func (s ButtonSet[B]) Full() bool {
	return s.Len() == SetCapacity
}

// SameButtons reports whether both sets hold the same buttons, ignoring slot
// positions.
func (s ButtonSet[B]) SameButtons(other ButtonSet[B]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for b := range s.All() {
		if !other.Contains(b) {
			return false
		}
	}
	return true
}

func compareButtons[B Orderable[B]](x, y B) int {
	return x.Compare(y)
}
