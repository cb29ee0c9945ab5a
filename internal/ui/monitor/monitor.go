// Package monitor shows what the translator makes of incoming input.
package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/teainput"
	"github.com/MarkMcCaskey/rebind/internal/ui"
	"github.com/MarkMcCaskey/rebind/internal/ui/styles"
)

const maxEntries = 200

// Output is a translated event.
type Output = keymap.Output[actions.Action]

// Entry is one input event and what it became.
type Entry struct {
	Event   teainput.Event
	Output  Output
	Matched bool
	At      time.Time
}

type Model struct {
	ui.Base
	entries   []Entry
	counts    map[actions.Action]int
	total     int
	unmatched int
	viewport  keymap.Size
	status    string
	now       func() time.Time
}

func New() Model {
	return Model{
		counts: make(map[actions.Action]int),
		now:    time.Now,
	}
}

// Record adds an event and its translation. ok is false when the event had
// no binding.
func (m *Model) Record(ev teainput.Event, out Output, ok bool) {
	m.total++
	if !ok {
		m.unmatched++
	} else if out.Kind == keymap.EventPress {
		m.counts[out.Action]++
	}

	m.entries = append(m.entries, Entry{Event: ev, Output: out, Matched: ok, At: m.now()})
	if len(m.entries) > maxEntries {
		m.entries = m.entries[len(m.entries)-maxEntries:]
	}
}

// SetViewport records the size used for cursor inversion.
func (m *Model) SetViewport(size keymap.Size) {
	m.viewport = size
}

// SetStatus shows a one-line message, typically an error.
func (m *Model) SetStatus(status string) {
	m.status = status
}

// Count returns how many presses were translated to a.
func (m Model) Count(a actions.Action) int {
	return m.counts[a]
}

func (m Model) Total() int     { return m.total }
func (m Model) Unmatched() int { return m.unmatched }

// Entries returns the recorded events, oldest first.
func (m Model) Entries() []Entry {
	return m.entries
}

func (m Model) View() string {
	s := styles.T().S()

	header := styles.Title("Input monitor") + "  " + s.Subtle.Render(fmt.Sprintf(
		"%s events · %s unbound · viewport %.0f×%.0f",
		humanize.Comma(int64(m.total)),
		humanize.Comma(int64(m.unmatched)),
		m.viewport.Width, m.viewport.Height,
	))

	counts := m.renderCounts()
	recent := m.renderRecent(max(m.ListHeight()-lipgloss.Height(counts), 1))

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", counts, "", recent)
	if m.status != "" {
		body += "\n" + s.Error.Render(m.status)
	}

	if m.Width() > 0 {
		return styles.PanelStyle(true).Width(max(m.Width()-2, 0)).Render(body)
	}
	return body
}

func (m Model) renderCounts() string {
	s := styles.T().S()

	var parts []string
	for _, a := range actions.All() {
		n := m.counts[a]
		if n == 0 {
			continue
		}
		parts = append(parts, s.Key.Render(actions.Label(a))+" "+s.Base.Render(humanize.Comma(int64(n))))
	}
	if len(parts) == 0 {
		return s.Muted.Render("No actions yet. Press a bound key or click.")
	}
	return strings.Join(parts, s.Subtle.Render(" · "))
}

func (m Model) renderRecent(rows int) string {
	s := styles.T().S()
	now := m.now()

	start := max(len(m.entries)-rows, 0)
	lines := make([]string, 0, rows)
	for i := len(m.entries) - 1; i >= start; i-- {
		e := m.entries[i]
		when := s.Subtle.Render(humanize.RelTime(e.At, now, "ago", "from now"))
		lines = append(lines, describe(e)+"  "+when)
	}
	return strings.Join(lines, "\n")
}

func describe(e Entry) string {
	s := styles.T().S()

	switch e.Event.Kind {
	case keymap.EventMove:
		in := e.Event.Motion
		out := e.Output.Motion
		return fmt.Sprintf("%-8s (%g, %g) → (%g, %g)", in.Kind, in.X, in.Y, out.X, out.Y)
	case keymap.EventPress, keymap.EventRelease:
		in := fmt.Sprintf("%-8s %s", e.Event.Kind, e.Event.Button.Label())
		if !e.Matched {
			return in + " " + s.Subtle.Render("(unbound)")
		}
		return in + " → " + s.Success.Render(actions.Label(e.Output.Action))
	}
	return e.Event.Kind.String()
}
