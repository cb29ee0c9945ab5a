package keymap

import (
	"cmp"
	"slices"
)

// ToTranslator flattens r into a Translator.
//
// Actions are visited in ascending order and every bound button is assigned
// to the action being visited. A button bound to several actions therefore
// ends up owned by the action that sorts last. The result shares no memory
// with r.
func ToTranslator[B Orderable[B], A cmp.Ordered](r *RebindMap[B, A]) *Translator[B, A] {
	t := &Translator[B, A]{
		bindings: make(map[B]A, len(r.bindings)),
		axes:     r.axes,
	}
	for _, a := range r.Actions() {
		for _, slot := range r.bindings[a].Slots() {
			if slot.OK {
				t.bindings[slot.Button] = a
			}
		}
	}
	return t
}

// ToRebindMap groups the buttons of t by action.
//
// Each group is sorted by button and cut to its first SetCapacity entries;
// the rest are dropped. Slots are filled left to right in that order.
// The result shares no memory with t.
func ToRebindMap[B Orderable[B], A cmp.Ordered](t *Translator[B, A]) *RebindMap[B, A] {
	groups := make(map[A][]B)
	for b, a := range t.bindings {
		groups[a] = append(groups[a], b)
	}

	r := &RebindMap[B, A]{
		bindings: make(map[A]ButtonSet[B], len(groups)),
		axes:     t.axes,
	}
	for a, buttons := range groups {
		slices.SortFunc(buttons, compareButtons[B])
		var set ButtonSet[B]
		for i, b := range buttons[:min(len(buttons), SetCapacity)] {
			set.slots[i] = Slot[B]{Button: b, OK: true}
		}
		r.bindings[a] = set
	}
	return r
}
