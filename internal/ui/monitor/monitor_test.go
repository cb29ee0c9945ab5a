package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/ui/testutil"
)

func newTestMonitor() *Model {
	m := New()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return base }
	m.SetSize(100, 30)
	return &m
}

func record(m *Model, tr *keymap.Translator[button.Button, actions.Action], ev keymap.Event[button.Button]) {
	out, ok := tr.Translate(ev)
	m.Record(ev, out, ok)
}

func TestRecord_Counts(t *testing.T) {
	m := newTestMonitor()
	tr := actions.Defaults().Translator()

	record(m, tr, keymap.Press(button.Key("space")))
	record(m, tr, keymap.Release(button.Key("space")))
	record(m, tr, keymap.Press(button.Pad("south")))
	record(m, tr, keymap.Press(button.Key("F12")))
	record(m, tr, keymap.Move[button.Button](keymap.Scroll(0, 1)))

	assert.Equal(t, 5, m.Total())
	assert.Equal(t, 1, m.Unmatched())
	assert.Equal(t, 2, m.Count(actions.Jump), "releases are not counted")
	assert.Equal(t, 0, m.Count(actions.Fire))
	require.Len(t, m.Entries(), 5)
	assert.False(t, m.Entries()[3].Matched)
}

func TestRecord_Bounded(t *testing.T) {
	m := newTestMonitor()
	tr := actions.Defaults().Translator()

	for range maxEntries + 50 {
		record(m, tr, keymap.Press(button.Key("w")))
	}
	assert.Len(t, m.Entries(), maxEntries)
	assert.Equal(t, maxEntries+50, m.Total())
	assert.Equal(t, maxEntries+50, m.Count(actions.MoveUp))
}

func TestView(t *testing.T) {
	m := newTestMonitor()
	tr := keymap.NewBuilder[button.Button, actions.Action]().
		Bind(button.Key("space"), actions.Jump).
		InvertScrollY(true).
		Translator()

	m.SetViewport(keymap.Size{Width: 80, Height: 24})
	for range 1500 {
		record(m, tr, keymap.Press(button.Key("space")))
	}
	record(m, tr, keymap.Press(button.Key("z")))
	record(m, tr, keymap.Move[button.Button](keymap.Scroll(0, 1)))

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "1,502 events")
	assert.Contains(t, view, "1 unbound")
	assert.Contains(t, view, "viewport 80×24")
	assert.Contains(t, view, "Jump 1,500")
	assert.Contains(t, view, "press    z (unbound)")
	assert.Contains(t, view, "scroll   (0, 1) → (0, -1)")
	assert.Contains(t, view, "press    space → Jump")
	assert.Contains(t, view, "now")
}

func TestView_Empty(t *testing.T) {
	m := newTestMonitor()
	assert.Contains(t, testutil.StripANSI(m.View()), "No actions yet")
}

func TestView_Status(t *testing.T) {
	m := newTestMonitor()
	m.SetStatus("Failed to save profile: disk full")
	assert.Contains(t, testutil.StripANSI(m.View()), "disk full")
}
