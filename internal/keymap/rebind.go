package keymap

import (
	"cmp"
	"maps"
	"slices"
)

// RebindMap maps each action to the set of buttons bound to it.
//
// Nothing stops two actions from holding the same button. Such buttons are
// reported by Conflicts and resolved when converting to a Translator.
//
// The zero value is an empty map ready to use.
type RebindMap[B Orderable[B], A cmp.Ordered] struct {
	bindings map[A]ButtonSet[B]
	axes     AxisConfig
}

// NewRebindMap creates an empty rebind map.
func NewRebindMap[B Orderable[B], A cmp.Ordered]() *RebindMap[B, A] {
	return &RebindMap[B, A]{bindings: make(map[A]ButtonSet[B])}
}

// InsertAction binds a to an empty set. It returns the set a held before,
// if any.
func (r *RebindMap[B, A]) InsertAction(a A) (ButtonSet[B], bool) {
	return r.InsertActionWithButtons(a, ButtonSet[B]{})
}

// InsertActionWithButtons binds a to set. It returns the set a held before,
// if any.
func (r *RebindMap[B, A]) InsertActionWithButtons(a A, set ButtonSet[B]) (ButtonSet[B], bool) {
	prev, ok := r.bindings[a]
	r.store(a, set)
	return prev, ok
}

func (r *RebindMap[B, A]) store(a A, set ButtonSet[B]) {
	if r.bindings == nil {
		r.bindings = make(map[A]ButtonSet[B])
	}
	r.bindings[a] = set
}

// Bindings returns the buttons bound to a.
func (r *RebindMap[B, A]) Bindings(a A) (ButtonSet[B], bool) {
	set, ok := r.bindings[a]
	return set, ok
}

// Update calls fn with the set bound to a and stores the result.
// It returns false, without calling fn, when a is not present.
func (r *RebindMap[B, A]) Update(a A, fn func(*ButtonSet[B])) bool {
	set, ok := r.bindings[a]
	if !ok {
		return false
	}
	fn(&set)
	r.bindings[a] = set
	return true
}

// Bind adds b to the buttons of a, inserting a if needed.
// It returns false when a already holds SetCapacity other buttons.
func (r *RebindMap[B, A]) Bind(a A, b B) bool {
	set := r.bindings[a]
	if !set.TryInsert(b) {
		return false
	}
	r.store(a, set)
	return true
}

// Unbind removes b from the buttons of a.
func (r *RebindMap[B, A]) Unbind(a A, b B) bool {
	removed := false
	r.Update(a, func(set *ButtonSet[B]) {
		removed = set.Remove(b)
	})
	return removed
}

// RemoveAction deletes a and returns the set it held.
func (r *RebindMap[B, A]) RemoveAction(a A) (ButtonSet[B], bool) {
	set, ok := r.bindings[a]
	delete(r.bindings, a)
	return set, ok
}

// Actions returns every action in ascending order, unbound ones included.
func (r *RebindMap[B, A]) Actions() []A {
	return slices.Sorted(maps.Keys(r.bindings))
}

// Len returns the number of actions.
func (r *RebindMap[B, A]) Len() int {
	return len(r.bindings)
}

// Clone returns an independent copy.
func (r *RebindMap[B, A]) Clone() *RebindMap[B, A] {
	return &RebindMap[B, A]{
		bindings: maps.Clone(r.bindings),
		axes:     r.axes,
	}
}

// Conflict is a button bound to more than one action. Actions are in
// ascending order; the last one owns the button after ToTranslator.
type Conflict[B any, A any] struct {
	Button  B
	Actions []A
}

// Winner returns the action that keeps the button in a Translator, or the
// zero action when Actions is empty.
func (c Conflict[B, A]) Winner() A {
	if len(c.Actions) == 0 {
		var zero A
		return zero
	}
	return c.Actions[len(c.Actions)-1]
}

// Conflicts returns the buttons bound to several actions, ordered by button.
func (r *RebindMap[B, A]) Conflicts() []Conflict[B, A] {
	owners := make(map[B][]A)
	for _, a := range r.Actions() {
		for b := range r.bindings[a].All() {
			owners[b] = append(owners[b], a)
		}
	}

	var out []Conflict[B, A]
	for _, b := range slices.SortedFunc(maps.Keys(owners), compareButtons[B]) {
		if len(owners[b]) > 1 {
			out = append(out, Conflict[B, A]{Button: b, Actions: owners[b]})
		}
	}
	return out
}

// Axes returns the axis configuration.
func (r *RebindMap[B, A]) Axes() AxisConfig { return r.axes }

// SetAxes replaces the axis configuration.
func (r *RebindMap[B, A]) SetAxes(axes AxisConfig) { r.axes = axes }

func (r *RebindMap[B, A]) InvertMotionX() bool { return r.axes.InvertMotionX }
func (r *RebindMap[B, A]) InvertMotionY() bool { return r.axes.InvertMotionY }
func (r *RebindMap[B, A]) InvertScrollX() bool { return r.axes.InvertScrollX }
func (r *RebindMap[B, A]) InvertScrollY() bool { return r.axes.InvertScrollY }
func (r *RebindMap[B, A]) Size() Size          { return r.axes.Size }

func (r *RebindMap[B, A]) SetInvertMotionX(v bool) { r.axes.InvertMotionX = v }
func (r *RebindMap[B, A]) SetInvertMotionY(v bool) { r.axes.InvertMotionY = v }
func (r *RebindMap[B, A]) SetInvertScrollX(v bool) { r.axes.InvertScrollX = v }
func (r *RebindMap[B, A]) SetInvertScrollY(v bool) { r.axes.InvertScrollY = v }

// SetSize replaces the viewport size. Zero sizes are accepted.
func (r *RebindMap[B, A]) SetSize(size Size) { r.axes.Size = size }

// Translator converts the map into a runtime lookup view. See ToTranslator.
func (r *RebindMap[B, A]) Translator() *Translator[B, A] {
	return ToTranslator(r)
}
