// Package editor is the modal view for changing which buttons trigger each
// action.
package editor

import (
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/errmsg"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/teainput"
	"github.com/MarkMcCaskey/rebind/internal/ui"
	"github.com/MarkMcCaskey/rebind/internal/ui/cursor"
	"github.com/MarkMcCaskey/rebind/internal/ui/popup"
)

// Keymap is the table being edited.
type Keymap = keymap.RebindMap[button.Button, actions.Action]

var (
	// ErrSetFull is reported when capturing into an action that already has
	// every slot taken.
	ErrSetFull = errors.New("all slots are taken")
	// ErrRequired is reported when a change would leave a required action
	// with no buttons.
	ErrRequired = errors.New("needs at least one button")
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

type Model struct {
	ui.Base
	km      *Keymap
	rows    []actions.Action
	cursor  cursor.Cursor
	capture bool
	changed bool
	status  string
	keys    Keys
	help    help.Model
}

// New opens the editor on a copy of km.
func New(km *Keymap) *Model {
	return &Model{
		km:     km.Clone(),
		rows:   actions.All(),
		cursor: cursor.New(1),
		keys:   DefaultKeys(),
		help:   help.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Keymap returns the table as edited so far.
func (m *Model) Keymap() *Keymap {
	return m.km
}

// Selected returns the action under the cursor.
func (m *Model) Selected() actions.Action {
	return m.rows[m.cursor.Pos()]
}

// Capturing reports whether the next button press will be bound.
func (m *Model) Capturing() bool {
	return m.capture
}

func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.help.Width = width
	m.cursor.EnsureVisible(len(m.rows), m.visibleRows())
}

func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if m.capture {
		return m, m.updateCapture(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""
	a := m.Selected()

	switch {
	case key.Matches(keyMsg, m.keys.Close):
		return m, func() tea.Msg {
			return ActionMsg(Close{Keymap: m.km, Changed: m.changed})
		}
	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(1)
	case key.Matches(keyMsg, m.keys.Capture):
		set, _ := m.km.Bindings(a)
		if set.Full() {
			m.status = errmsg.FormatWith(errmsg.OpBind, actions.Label(a), ErrSetFull)
			return m, nil
		}
		m.capture = true
	case key.Matches(keyMsg, m.keys.Remove):
		m.removeLast(a)
	case key.Matches(keyMsg, m.keys.Clear):
		if isRequired(a) {
			m.status = errmsg.FormatWith(errmsg.OpBind, actions.Label(a), ErrRequired)
			return m, nil
		}
		if m.km.Update(a, func(set *keymap.ButtonSet[button.Button]) { set.Clear() }) {
			m.changed = true
		}
	case key.Matches(keyMsg, m.keys.Reset):
		m.km.InsertActionWithButtons(a, actions.DefaultBindings(a))
		m.changed = true
	case key.Matches(keyMsg, m.keys.Invert):
		m.km.SetInvertScrollY(!m.km.InvertScrollY())
		m.changed = true
	}
	return m, nil
}

// updateCapture binds the first button pressed. Escape cancels.
func (m *Model) updateCapture(msg tea.Msg) tea.Cmd {
	var b button.Button
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEscape {
			m.capture = false
			return nil
		}
		kb, ok := teainput.KeyButton(msg)
		if !ok {
			return nil
		}
		b = kb
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		mb, ok := teainput.MouseButton(msg)
		if !ok {
			return nil
		}
		b = mb
	default:
		return nil
	}

	m.capture = false
	a := m.Selected()
	if err := actions.CheckBinding(a, b); err != nil {
		m.status = errmsg.FormatWith(errmsg.OpBind, actions.Label(a), err)
		return nil
	}
	if !m.km.Bind(a, b) {
		m.status = errmsg.FormatWith(errmsg.OpBind, b.String(), ErrSetFull)
		return nil
	}
	m.changed = true
	return nil
}

func (m *Model) removeLast(a actions.Action) {
	set, ok := m.km.Bindings(a)
	if !ok {
		return
	}
	buttons := set.Buttons()
	if len(buttons) == 0 {
		return
	}
	if len(buttons) == 1 && isRequired(a) {
		m.status = errmsg.FormatWith(errmsg.OpBind, actions.Label(a), ErrRequired)
		return
	}
	m.km.Unbind(a, buttons[len(buttons)-1])
	m.changed = true
}

func isRequired(a actions.Action) bool {
	return slices.Contains(actions.Required, a)
}

func (m *Model) move(delta int) {
	m.cursor.Move(delta, len(m.rows), m.visibleRows())
}

// visibleRows is the number of action rows that fit; title, axis line,
// status and help take the rest.
func (m *Model) visibleRows() int {
	if m.Height() == 0 {
		return len(m.rows)
	}
	return max(m.Height()-ui.PanelOverhead-2, 1)
}
