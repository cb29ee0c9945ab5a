package keymap

import "cmp"

type binding[B any, A any] struct {
	button B
	action A
}

// Builder accumulates bindings and axis settings before creating either
// view. Methods return the builder for chaining.
//
// Example:
//
//	t := keymap.NewBuilder[button.Button, actions.Action]().
//	    Bind(button.Key("w"), actions.MoveUp).
//	    Bind(button.Key("up"), actions.MoveUp).
//	    InvertScrollY(true).
//	    Translator()
type Builder[B Orderable[B], A cmp.Ordered] struct {
	bindings []binding[B, A]
	axes     AxisConfig
}

// NewBuilder creates an empty builder.
func NewBuilder[B Orderable[B], A cmp.Ordered]() *Builder[B, A] {
	return &Builder[B, A]{}
}

// Bind maps b to a. A later Bind for the same button replaces this one.
func (bd *Builder[B, A]) Bind(b B, a A) *Builder[B, A] {
	bd.bindings = append(bd.bindings, binding[B, A]{button: b, action: a})
	return bd
}

// BindAll maps every button in bs to a.
func (bd *Builder[B, A]) BindAll(a A, bs ...B) *Builder[B, A] {
	for _, b := range bs {
		bd.Bind(b, a)
	}
	return bd
}

// Unbind drops every earlier binding of a.
func (bd *Builder[B, A]) Unbind(a A) *Builder[B, A] {
	kept := bd.bindings[:0]
	for _, bnd := range bd.bindings {
		if bnd.action != a {
			kept = append(kept, bnd)
		}
	}
	bd.bindings = kept
	return bd
}

// InvertMotionX mirrors horizontal cursor positions.
func (bd *Builder[B, A]) InvertMotionX(v bool) *Builder[B, A] {
	bd.axes.InvertMotionX = v
	return bd
}

// InvertMotionY mirrors vertical cursor positions.
func (bd *Builder[B, A]) InvertMotionY(v bool) *Builder[B, A] {
	bd.axes.InvertMotionY = v
	return bd
}

// InvertScrollX negates horizontal wheel deltas.
func (bd *Builder[B, A]) InvertScrollX(v bool) *Builder[B, A] {
	bd.axes.InvertScrollX = v
	return bd
}

// InvertScrollY negates vertical wheel deltas.
func (bd *Builder[B, A]) InvertScrollY(v bool) *Builder[B, A] {
	bd.axes.InvertScrollY = v
	return bd
}

// WithSize sets the viewport size.
func (bd *Builder[B, A]) WithSize(size Size) *Builder[B, A] {
	bd.axes.Size = size
	return bd
}

// WithAxes replaces the whole axis configuration.
func (bd *Builder[B, A]) WithAxes(axes AxisConfig) *Builder[B, A] {
	bd.axes = axes
	return bd
}

// Translator creates a Translator from the accumulated bindings.
func (bd *Builder[B, A]) Translator() *Translator[B, A] {
	t := &Translator[B, A]{
		bindings: make(map[B]A, len(bd.bindings)),
		axes:     bd.axes,
	}
	for _, bnd := range bd.bindings {
		t.bindings[bnd.button] = bnd.action
	}
	return t
}

// RebindMap creates a RebindMap through the Translator, so the same
// ordering and truncation rules apply.
func (bd *Builder[B, A]) RebindMap() *RebindMap[B, A] {
	return ToRebindMap(bd.Translator())
}
