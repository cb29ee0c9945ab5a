//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// key is a minimal button type ordered by name.
type key string

func (k key) Compare(other key) int { return cmp.Compare(k, other) }

type act int

const (
	a1 act = iota + 1
	a2
	a3
	a4
)

func mustSet(t *testing.T, buttons ...key) ButtonSet[key] {
	t.Helper()
	set, ok := NewButtonSet(buttons...)
	require.True(t, ok, "NewButtonSet(%v) overflowed", buttons)
	return set
}

func TestButtonSet_TryInsertFillsLeftToRight(t *testing.T) {
	var s ButtonSet[key]

	assert.True(t, s.TryInsert("a"))
	assert.True(t, s.TryInsert("b"))

	slots := s.Slots()
	assert.Equal(t, Slot[key]{Button: "a", OK: true}, slots[0])
	assert.Equal(t, Slot[key]{Button: "b", OK: true}, slots[1])
	assert.False(t, slots[2].OK)
	assert.Equal(t, 2, s.Len())
}

func TestButtonSet_TryInsertRejectsFourth(t *testing.T) {
	s := mustSet(t, "a", "b", "c")
	before := s

	assert.False(t, s.TryInsert("d"))
	assert.Equal(t, before, s, "rejected insert must not mutate the set")
	assert.Equal(t, []key{"a", "b", "c"}, s.Buttons())
	assert.False(t, s.Contains("d"))
	assert.True(t, s.Full())
}

func TestButtonSet_TryInsertDuplicate(t *testing.T) {
	tests := []struct {
		name    string
		initial []key
		insert  key
	}{
		{"duplicate in partial set", []key{"a"}, "a"},
		{"duplicate in full set", []key{"a", "b", "c"}, "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSet(t, tt.initial...)
			before := s

			assert.True(t, s.TryInsert(tt.insert))
			assert.Equal(t, before, s)
		})
	}
}

func TestButtonSet_SlotsAlwaysThree(t *testing.T) {
	var empty ButtonSet[key]
	assert.Len(t, empty.Slots(), SetCapacity)
	for _, slot := range empty.Slots() {
		assert.False(t, slot.OK)
	}

	s := mustSet(t, "x")
	slots := s.Slots()
	assert.Len(t, slots, SetCapacity)
	assert.True(t, slots[0].OK)
	assert.False(t, slots[1].OK)
	assert.False(t, slots[2].OK)
}

func TestButtonSet_Remove(t *testing.T) {
	s := mustSet(t, "a", "b", "c")

	assert.True(t, s.Remove("a"))
	assert.Equal(t, []key{"b", "c"}, s.Buttons())
	assert.False(t, s.Slots()[2].OK)

	assert.False(t, s.Remove("a"), "removing an absent button")
	assert.True(t, s.TryInsert("d"))
	assert.Equal(t, []key{"b", "c", "d"}, s.Buttons())

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestNewButtonSet_Overflow(t *testing.T) {
	s, ok := NewButtonSet[key]("a", "b", "a", "c", "d")

	assert.False(t, ok)
	assert.Equal(t, []key{"a", "b", "c"}, s.Buttons())
}

func TestButtonSet_SameButtons(t *testing.T) {
	ab := mustSet(t, "a", "b")
	ba := mustSet(t, "b", "a")
	abc := mustSet(t, "a", "b", "c")

	assert.True(t, ab.SameButtons(ba))
	assert.NotEqual(t, ab, ba, "slot order differs")
	assert.False(t, ab.SameButtons(abc))
	assert.False(t, abc.SameButtons(ab))
}

func TestAxisConfig_Transform(t *testing.T) {
	size := Size{Width: 800, Height: 600}

	tests := []struct {
		name string
		axes AxisConfig
		in   Motion
		want Motion
	}{
		{
			name: "cursor unchanged without flags",
			axes: AxisConfig{Size: size},
			in:   AbsoluteCursor(100, 50),
			want: AbsoluteCursor(100, 50),
		},
		{
			name: "cursor x inverted",
			axes: AxisConfig{InvertMotionX: true, Size: size},
			in:   AbsoluteCursor(100, 50),
			want: AbsoluteCursor(700, 50),
		},
		{
			name: "cursor y inverted",
			axes: AxisConfig{InvertMotionY: true, Size: size},
			in:   AbsoluteCursor(100, 50),
			want: AbsoluteCursor(100, 550),
		},
		{
			name: "cursor beyond viewport is not clamped",
			axes: AxisConfig{InvertMotionX: true, Size: size},
			in:   AbsoluteCursor(900, 0),
			want: AbsoluteCursor(-100, 0),
		},
		{
			name: "zero viewport",
			axes: AxisConfig{InvertMotionX: true, InvertMotionY: true},
			in:   AbsoluteCursor(3, 4),
			want: AbsoluteCursor(-3, -4),
		},
		{
			name: "scroll y inverted",
			axes: AxisConfig{InvertScrollY: true},
			in:   Scroll(1, 1),
			want: Scroll(1, -1),
		},
		{
			name: "scroll both inverted",
			axes: AxisConfig{InvertScrollX: true, InvertScrollY: true},
			in:   Scroll(2, -3),
			want: Scroll(-2, 3),
		},
		{
			name: "scroll ignores motion flags",
			axes: AxisConfig{InvertMotionX: true, InvertMotionY: true, Size: size},
			in:   Scroll(1, 1),
			want: Scroll(1, 1),
		},
		{
			name: "relative never touched",
			axes: AxisConfig{
				InvertMotionX: true, InvertMotionY: true,
				InvertScrollX: true, InvertScrollY: true,
				Size: size,
			},
			in:   Relative(5, -5),
			want: Relative(5, -5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.axes.Transform(tt.in))
		})
	}
}

func newSampleTranslator() *Translator[key, act] {
	return NewTranslator(map[key]act{
		"up":   a1,
		"w":    a1,
		"down": a2,
		"d":    a4,
	}, AxisConfig{})
}

func TestTranslator_Translate(t *testing.T) {
	tr := newSampleTranslator()

	tests := []struct {
		name   string
		event  Event[key]
		want   Output[act]
		wantOK bool
	}{
		{"press bound", Press[key]("down"), Output[act]{Kind: EventPress, Action: a2}, true},
		{"release bound", Release[key]("w"), Output[act]{Kind: EventRelease, Action: a1}, true},
		{"press unbound", Press[key]("q"), Output[act]{}, false},
		{"release unbound", Release[key]("q"), Output[act]{}, false},
		{"move always translates", Move[key](Relative(1, 2)), Output[act]{Kind: EventMove, Motion: Relative(1, 2)}, true},
		{"unknown kind", Event[key]{Kind: EventNone, Button: "w"}, Output[act]{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tr.Translate(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslator_MoveUsesAxesAndSize(t *testing.T) {
	tr := NewTranslator(map[key]act{}, AxisConfig{InvertMotionX: true, Size: Size{Width: 800, Height: 600}})

	out, ok := tr.Translate(Move[key](AbsoluteCursor(100, 50)))
	require.True(t, ok)
	assert.Equal(t, AbsoluteCursor(700, 50), out.Motion)

	tr.SetSize(Size{Width: 200, Height: 100})
	out, ok = tr.Translate(Move[key](AbsoluteCursor(100, 50)))
	require.True(t, ok)
	assert.Equal(t, AbsoluteCursor(100, 50), out.Motion)
	assert.Equal(t, Size{Width: 200, Height: 100}, tr.Axes().Size)
}

func TestNewTranslator_CopiesInput(t *testing.T) {
	src := map[key]act{"a": a1}
	tr := NewTranslator(src, AxisConfig{})
	src["b"] = a2

	_, ok := tr.Lookup("b")
	assert.False(t, ok)
	assert.Equal(t, 1, tr.Len())
}

func TestTranslator_AllIsOrdered(t *testing.T) {
	tr := newSampleTranslator()

	var got []key
	for b := range tr.All() {
		got = append(got, b)
	}
	assert.Equal(t, []key{"d", "down", "up", "w"}, got)
}

func TestRebindMap_InsertAction(t *testing.T) {
	r := NewRebindMap[key, act]()

	_, existed := r.InsertAction(a1)
	assert.False(t, existed)

	set, ok := r.Bindings(a1)
	require.True(t, ok)
	assert.Equal(t, 0, set.Len())

	prev, existed := r.InsertActionWithButtons(a1, mustSet(t, "x", "y"))
	assert.True(t, existed)
	assert.Equal(t, 0, prev.Len())

	prev, existed = r.InsertAction(a1)
	assert.True(t, existed)
	assert.Equal(t, []key{"x", "y"}, prev.Buttons())
}

func TestRebindMap_BindingsMissing(t *testing.T) {
	r := NewRebindMap[key, act]()

	set, ok := r.Bindings(a3)
	assert.False(t, ok)
	assert.Equal(t, ButtonSet[key]{}, set)
	assert.False(t, r.Update(a3, func(*ButtonSet[key]) { t.Fatal("fn called for missing action") }))
}

func TestRebindMap_BindAndUnbind(t *testing.T) {
	r := NewRebindMap[key, act]()

	assert.True(t, r.Bind(a1, "a"))
	assert.True(t, r.Bind(a1, "b"))
	assert.True(t, r.Bind(a1, "c"))
	assert.False(t, r.Bind(a1, "d"), "fourth button must be rejected")

	set, _ := r.Bindings(a1)
	assert.Equal(t, []key{"a", "b", "c"}, set.Buttons())

	assert.True(t, r.Unbind(a1, "b"))
	assert.False(t, r.Unbind(a1, "b"))
	assert.False(t, r.Unbind(a2, "a"))

	set, _ = r.Bindings(a1)
	assert.Equal(t, []key{"a", "c"}, set.Buttons())
}

func TestRebindMap_Update(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.InsertAction(a2)

	ok := r.Update(a2, func(s *ButtonSet[key]) {
		s.TryInsert("z")
	})
	require.True(t, ok)

	set, _ := r.Bindings(a2)
	assert.True(t, set.Contains("z"))
}

func TestRebindMap_AxisAccessors(t *testing.T) {
	r := NewRebindMap[key, act]()

	r.SetInvertMotionX(true)
	r.SetInvertScrollY(true)
	r.SetSize(Size{})

	assert.True(t, r.InvertMotionX())
	assert.False(t, r.InvertMotionY())
	assert.False(t, r.InvertScrollX())
	assert.True(t, r.InvertScrollY())
	assert.Equal(t, Size{}, r.Size())

	r.SetInvertMotionY(true)
	r.SetInvertScrollX(true)
	assert.Equal(t, AxisConfig{
		InvertMotionX: true, InvertMotionY: true,
		InvertScrollX: true, InvertScrollY: true,
	}, r.Axes())
}

func TestRebindMap_ActionsSortedAndRemove(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.InsertAction(a3)
	r.InsertAction(a1)
	r.InsertAction(a2)

	assert.Equal(t, []act{a1, a2, a3}, r.Actions())

	_, ok := r.RemoveAction(a2)
	assert.True(t, ok)
	_, ok = r.RemoveAction(a2)
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len())
}

func TestRebindMap_CloneIsIndependent(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.Bind(a1, "a")

	c := r.Clone()
	c.Bind(a1, "b")
	c.SetInvertMotionX(true)

	set, _ := r.Bindings(a1)
	assert.Equal(t, []key{"a"}, set.Buttons())
	assert.False(t, r.InvertMotionX())
}

func TestRebindMap_Conflicts(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.InsertActionWithButtons(a2, mustSet(t, "k", "x"))
	r.InsertActionWithButtons(a1, mustSet(t, "k"))
	r.InsertActionWithButtons(a3, mustSet(t, "x", "k"))
	r.InsertActionWithButtons(a4, mustSet(t, "y"))

	conflicts := r.Conflicts()
	require.Len(t, conflicts, 2)

	assert.Equal(t, key("k"), conflicts[0].Button)
	assert.Equal(t, []act{a1, a2, a3}, conflicts[0].Actions)
	assert.Equal(t, a3, conflicts[0].Winner())

	assert.Equal(t, key("x"), conflicts[1].Button)
	assert.Equal(t, []act{a2, a3}, conflicts[1].Actions)
}

func TestRebindMap_ZeroValue(t *testing.T) {
	tests := []struct {
		name  string
		write func(r *RebindMap[key, act])
		want  []key
	}{
		{"insert action", func(r *RebindMap[key, act]) { r.InsertAction(a1) }, nil},
		{"insert with buttons", func(r *RebindMap[key, act]) { r.InsertActionWithButtons(a1, mustSet(t, "a")) }, []key{"a"}},
		{"bind", func(r *RebindMap[key, act]) { r.Bind(a1, "b") }, []key{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r RebindMap[key, act]
			tt.write(&r)

			set, ok := r.Bindings(a1)
			if !ok {
				t.Fatalf("Bindings(a1) missing after write")
			}
			if got := set.Buttons(); !slices.Equal(got, tt.want) {
				t.Errorf("Buttons() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRebindMap_ZeroValueReads(t *testing.T) {
	var r RebindMap[key, act]

	if r.Len() != 0 || len(r.Actions()) != 0 || len(r.Conflicts()) != 0 {
		t.Errorf("zero map not empty: len=%d actions=%v", r.Len(), r.Actions())
	}
	if r.Unbind(a1, "a") {
		t.Error("Unbind on zero map reported a removal")
	}
	if c := r.Clone(); !c.Bind(a1, "a") {
		t.Error("Bind on clone of zero map failed")
	}
	if r.Translator().Len() != 0 {
		t.Error("zero map translated to a non-empty Translator")
	}
}

func TestConflict_WinnerEmpty(t *testing.T) {
	var c Conflict[key, act]
	if got := c.Winner(); got != 0 {
		t.Errorf("Winner() = %v, want zero action", got)
	}
}

func TestToTranslator_Flattens(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.InsertActionWithButtons(a1, mustSet(t, "up", "w"))
	r.InsertActionWithButtons(a2, mustSet(t, "down"))
	r.InsertAction(a3)
	r.SetInvertScrollX(true)

	tr := ToTranslator(r)

	assert.Equal(t, 3, tr.Len())
	for b, want := range map[key]act{"up": a1, "w": a1, "down": a2} {
		got, ok := tr.Lookup(b)
		assert.True(t, ok, "button %q", b)
		assert.Equal(t, want, got, "button %q", b)
	}
	assert.True(t, tr.Axes().InvertScrollX)
}

func TestToTranslator_LaterActionWins(t *testing.T) {
	for i := range 20 {
		r := NewRebindMap[key, act]()
		r.InsertActionWithButtons(a1, mustSet(t, "k"))
		r.InsertActionWithButtons(a2, mustSet(t, "k"))

		tr := r.Translator()

		got, ok := tr.Lookup("k")
		require.True(t, ok)
		require.Equal(t, a2, got, "run %d", i)
	}
}

func TestToTranslator_LaterActionWinsRegardlessOfInsertOrder(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.InsertActionWithButtons(a4, mustSet(t, "k"))
	r.InsertActionWithButtons(a1, mustSet(t, "k", "j"))

	tr := ToTranslator(r)

	got, _ := tr.Lookup("k")
	assert.Equal(t, a4, got)
	got, _ = tr.Lookup("j")
	assert.Equal(t, a1, got)
}

func TestToRebindMap_Groups(t *testing.T) {
	tr := NewTranslator(map[key]act{
		"w":    a1,
		"up":   a1,
		"down": a2,
	}, AxisConfig{InvertMotionY: true})

	r := ToRebindMap(tr)

	assert.Equal(t, []act{a1, a2}, r.Actions())
	set, _ := r.Bindings(a1)
	assert.Equal(t, mustSet(t, "up", "w"), set, "buttons sorted into slots")
	set, _ = r.Bindings(a2)
	assert.Equal(t, mustSet(t, "down"), set)
	assert.True(t, r.InvertMotionY())
}

func TestToRebindMap_Truncates(t *testing.T) {
	tr := NewTranslator(map[key]act{
		"d": a1,
		"b": a1,
		"c": a1,
		"a": a1,
	}, AxisConfig{})

	for range 10 {
		r := tr.RebindMap()
		set, ok := r.Bindings(a1)
		require.True(t, ok)
		require.Equal(t, []key{"a", "b", "c"}, set.Buttons())
		require.False(t, set.Contains("d"))
	}
}

func TestToRebindMap_DropsPlaceholders(t *testing.T) {
	r := NewRebindMap[key, act]()
	r.InsertAction(a1)
	r.InsertActionWithButtons(a2, mustSet(t, "x"))

	back := ToRebindMap(ToTranslator(r))

	_, ok := back.Bindings(a1)
	assert.False(t, ok)
	assert.Equal(t, []act{a2}, back.Actions())
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func(r *RebindMap[key, act])
	}{
		{"empty", func(*RebindMap[key, act]) {}},
		{"single", func(r *RebindMap[key, act]) {
			r.Bind(a1, "a")
		}},
		{"unsorted slots", func(r *RebindMap[key, act]) {
			r.Bind(a1, "z")
			r.Bind(a1, "m")
			r.Bind(a1, "a")
			r.Bind(a2, "q")
		}},
		{"placeholders and axes", func(r *RebindMap[key, act]) {
			r.InsertAction(a3)
			r.Bind(a4, "x")
			r.Bind(a4, "y")
			r.SetInvertMotionX(true)
			r.SetSize(Size{Width: 640, Height: 480})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRebindMap[key, act]()
			tt.build(r)

			first := ToTranslator(r)
			second := ToTranslator(ToRebindMap(first))

			assert.True(t, first.Equal(second))

			back := ToRebindMap(first)
			for _, a := range back.Actions() {
				orig, _ := r.Bindings(a)
				got, _ := back.Bindings(a)
				assert.True(t, orig.SameButtons(got), "action %d", a)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder[key, act]().
		Bind("up", a1).
		Bind("w", a1).
		BindAll(a2, "down", "s").
		Bind("d", a4).
		InvertMotionX(true).
		InvertMotionY(true).
		InvertScrollX(true).
		InvertScrollY(true).
		WithSize(Size{Width: 10, Height: 20})

	tr := b.Translator()
	got, ok := tr.Lookup("s")
	require.True(t, ok)
	assert.Equal(t, a2, got)
	assert.Equal(t, AxisConfig{
		InvertMotionX: true, InvertMotionY: true,
		InvertScrollX: true, InvertScrollY: true,
		Size: Size{Width: 10, Height: 20},
	}, tr.Axes())

	r := b.RebindMap()
	set, ok := r.Bindings(a2)
	require.True(t, ok)
	assert.Equal(t, []key{"down", "s"}, set.Buttons())
	assert.Equal(t, tr.Axes(), r.Axes())
}

func TestBuilder_LaterBindReplaces(t *testing.T) {
	tr := NewBuilder[key, act]().
		Bind("k", a3).
		Bind("k", a1).
		Translator()

	got, _ := tr.Lookup("k")
	assert.Equal(t, a1, got)
}

func TestBuilder_Unbind(t *testing.T) {
	tr := NewBuilder[key, act]().
		BindAll(a1, "a", "b").
		Bind("c", a2).
		Unbind(a1).
		Bind("z", a1).
		Translator()

	_, ok := tr.Lookup("a")
	assert.False(t, ok)
	got, _ := tr.Lookup("z")
	assert.Equal(t, a1, got)
	assert.Equal(t, 2, tr.Len())
}
