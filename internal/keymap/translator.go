package keymap

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Translator maps buttons to actions on the event hot path.
// Each button maps to at most one action.
type Translator[B Orderable[B], A cmp.Ordered] struct {
	bindings map[B]A
	axes     AxisConfig
}

// NewTranslator creates a translator from a button -> action map.
// The map is copied.
func NewTranslator[B Orderable[B], A cmp.Ordered](bindings map[B]A, axes AxisConfig) *Translator[B, A] {
	t := &Translator[B, A]{
		bindings: make(map[B]A, len(bindings)),
		axes:     axes,
	}
	maps.Copy(t.bindings, bindings)
	return t
}

// Translate converts a raw event.
//
// Press and release events produce an output only when the button is bound.
// Move events always produce an output carrying the transformed motion.
// Anything else produces nothing.
func (t *Translator[B, A]) Translate(ev Event[B]) (Output[A], bool) {
	switch ev.Kind {
	case EventPress, EventRelease:
		action, ok := t.bindings[ev.Button]
		if !ok {
			return Output[A]{}, false
		}
		return Output[A]{Kind: ev.Kind, Action: action}, true
	case EventMove:
		return Output[A]{Kind: EventMove, Motion: t.axes.Transform(ev.Motion)}, true
	}
	return Output[A]{}, false
}

// Lookup returns the action bound to b.
func (t *Translator[B, A]) Lookup(b B) (A, bool) {
	a, ok := t.bindings[b]
	return a, ok
}

// SetSize replaces the viewport size used for cursor inversion.
func (t *Translator[B, A]) SetSize(size Size) {
	t.axes.Size = size
}

// Axes returns the axis configuration.
func (t *Translator[B, A]) Axes() AxisConfig {
	return t.axes
}

// Len returns the number of bound buttons.
func (t *Translator[B, A]) Len() int {
	return len(t.bindings)
}

// All yields every binding ordered by button.
func (t *Translator[B, A]) All() iter.Seq2[B, A] {
	return func(yield func(B, A) bool) {
		keys := slices.SortedFunc(maps.Keys(t.bindings), compareButtons[B])
		for _, b := range keys {
			if !yield(b, t.bindings[b]) {
				return
			}
		}
	}
}

// Equal reports whether both translators hold the same bindings and axis
// configuration.
func (t *Translator[B, A]) Equal(other *Translator[B, A]) bool {
	return t.axes == other.axes && maps.Equal(t.bindings, other.bindings)
}

// RebindMap converts the translator into an editable view. See ToRebindMap.
func (t *Translator[B, A]) RebindMap() *RebindMap[B, A] {
	return ToRebindMap(t)
}
