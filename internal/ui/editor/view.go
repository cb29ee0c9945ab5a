package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/ui/styles"
)

const (
	labelWidth = 16
	slotWidth  = 14
	emptySlot  = "·"
)

func (m *Model) View() string {
	t := styles.T()
	s := t.S()

	conflicts := m.conflictsByButton()

	var b strings.Builder
	b.WriteString(styles.Title("Bindings"))
	b.WriteString("\n")
	b.WriteString(s.Subtle.Render(m.axesLine()))
	b.WriteString("\n\n")

	start, end := m.cursor.VisibleRange(len(m.rows), m.visibleRows())
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i, conflicts))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	switch {
	case m.capture:
		b.WriteString(s.Capture.Render(fmt.Sprintf("Press a key or mouse button for %s (esc cancels)", actions.Label(m.Selected()))))
	case m.status != "":
		b.WriteString(s.Error.Render(m.status))
	default:
		b.WriteString(m.help.View(m.keys))
	}

	return b.String()
}

func (m *Model) renderRow(i int, conflicts map[button.Button][]actions.Action) string {
	s := styles.T().S()
	a := m.rows[i]
	set, _ := m.km.Bindings(a)

	marker := "  "
	if i == m.cursor.Pos() {
		marker = "> "
	}

	label := ansi.Truncate(actions.Label(a), labelWidth, "…")
	label += strings.Repeat(" ", labelWidth-ansi.StringWidth(label))

	var slots []string
	var shadowedBy []string
	waiting := i == m.cursor.Pos() && m.capture
	for _, slot := range set.Slots() {
		slots = append(slots, m.renderSlot(slot, waiting && !slot.OK, conflicts))
		if !slot.OK {
			waiting = false
		}
		if !slot.OK {
			continue
		}
		if owners := conflicts[slot.Button]; len(owners) > 1 && owners[len(owners)-1] != a {
			shadowedBy = append(shadowedBy, fmt.Sprintf("%s→%s", slot.Button.Label(), owners[len(owners)-1]))
		}
	}

	line := marker + label + strings.Join(slots, " ")
	if len(shadowedBy) > 0 {
		line += " " + s.Error.Render("shadowed: "+strings.Join(shadowedBy, ", "))
	}

	if w := m.Width(); w > 0 {
		line = ansi.Truncate(line, w, "…")
	}
	if i == m.cursor.Pos() {
		return s.Cursor.Render(line)
	}
	return line
}

func (m *Model) renderSlot(slot keymap.Slot[button.Button], waiting bool, conflicts map[button.Button][]actions.Action) string {
	s := styles.T().S()

	text := emptySlot
	style := s.Subtle
	if slot.OK {
		text = slot.Button.Label()
		style = s.Key
		if len(conflicts[slot.Button]) > 1 {
			style = s.Conflict
		}
	}

	text = ansi.Truncate(text, slotWidth-2, "…")
	cell := lipgloss.NewStyle().Width(slotWidth).Render("[" + text + "]")
	if waiting {
		return s.Capture.Render(cell)
	}
	return style.Render(cell)
}

func (m *Model) axesLine() string {
	onOff := func(v bool) string {
		if v {
			return "inverted"
		}
		return "normal"
	}
	return fmt.Sprintf("motion x %s, y %s · scroll x %s, y %s",
		onOff(m.km.InvertMotionX()), onOff(m.km.InvertMotionY()),
		onOff(m.km.InvertScrollX()), onOff(m.km.InvertScrollY()))
}

func (m *Model) conflictsByButton() map[button.Button][]actions.Action {
	out := make(map[button.Button][]actions.Action)
	for _, c := range m.km.Conflicts() {
		out[c.Button] = c.Actions
	}
	return out
}
