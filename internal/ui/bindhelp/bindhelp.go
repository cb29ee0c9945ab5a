// Package bindhelp renders the current bindings as a bubbles help line.
package bindhelp

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/ui"
	"github.com/MarkMcCaskey/rebind/internal/ui/styles"
)

// Actions shown in the one-line help.
var shortActions = []actions.Action{actions.Menu, actions.Pause, actions.Quit}

// Columns of the full help.
var groups = [][]actions.Action{
	{actions.MoveUp, actions.MoveDown, actions.MoveLeft, actions.MoveRight},
	{actions.Jump, actions.Crouch, actions.Interact},
	{actions.Fire, actions.Aim, actions.Reload},
	{actions.Menu, actions.Pause, actions.Quit},
}

// Binding returns a key binding for a. Only keyboard buttons can be matched
// against key messages, but every button is listed in the help text. An
// action with no buttons gives a disabled binding, which help hides.
func Binding(a actions.Action, set keymap.ButtonSet[button.Button]) key.Binding {
	var keys, labels []string
	for b := range set.All() {
		if b.Device == button.DeviceKey {
			keys = append(keys, b.Name)
		}
		labels = append(labels, b.Label())
	}

	binding := key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), actions.Label(a)),
	)
	if set.Len() == 0 {
		binding.SetEnabled(false)
	}
	return binding
}

// KeyMap exposes a binding table through help.KeyMap.
type KeyMap struct {
	bindings map[actions.Action]key.Binding
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap builds help bindings for every action in r. A shared button is
// listed only under the action that wins it.
func NewKeyMap(r *keymap.RebindMap[button.Button, actions.Action]) KeyMap {
	lost := make(map[actions.Action][]button.Button)
	for _, c := range r.Conflicts() {
		for _, a := range c.Actions {
			if a != c.Winner() {
				lost[a] = append(lost[a], c.Button)
			}
		}
	}

	k := KeyMap{bindings: make(map[actions.Action]key.Binding, r.Len())}
	for _, a := range r.Actions() {
		set, _ := r.Bindings(a)
		for _, b := range lost[a] {
			set.Remove(b)
		}
		k.bindings[a] = Binding(a, set)
	}
	return k
}

// Get returns the binding for a.
func (k KeyMap) Get(a actions.Action) (key.Binding, bool) {
	b, ok := k.bindings[a]
	return b, ok
}

func (k KeyMap) ShortHelp() []key.Binding {
	return k.collect(shortActions)
}

func (k KeyMap) FullHelp() [][]key.Binding {
	columns := make([][]key.Binding, 0, len(groups))
	for _, g := range groups {
		if col := k.collect(g); len(col) > 0 {
			columns = append(columns, col)
		}
	}
	return columns
}

func (k KeyMap) collect(as []actions.Action) []key.Binding {
	out := make([]key.Binding, 0, len(as))
	for _, a := range as {
		if b, ok := k.bindings[a]; ok {
			out = append(out, b)
		}
	}
	return out
}

// Model draws the help line below the main view.
type Model struct {
	ui.Base
	help help.Model
	keys help.KeyMap
}

func New() Model {
	h := help.New()
	t := styles.T()
	h.Styles.ShortKey = t.S().Key
	h.Styles.FullKey = t.S().Key
	h.Styles.ShortDesc = t.S().Muted
	h.Styles.FullDesc = t.S().Muted
	return Model{help: h}
}

// SetKeyMap replaces the bindings shown.
func (m *Model) SetKeyMap(k help.KeyMap) {
	m.keys = k
}

// SetSize sets the width available to the help line.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.help.Width = width
}

// ToggleFull switches between the short line and the full table.
func (m *Model) ToggleFull() {
	m.help.ShowAll = !m.help.ShowAll
}

func (m Model) ShowingFull() bool {
	return m.help.ShowAll
}

func (m Model) View() string {
	if m.keys == nil {
		return ""
	}
	return m.help.View(m.keys)
}
