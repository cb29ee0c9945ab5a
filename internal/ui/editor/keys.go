package editor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Keys are the editor's own controls. They do not go through the binding
// table, and the editor never leaves Menu or Quit without a button.
type Keys struct {
	Up      key.Binding
	Down    key.Binding
	Capture key.Binding
	Remove  key.Binding
	Clear   key.Binding
	Reset   key.Binding
	Invert  key.Binding
	Close   key.Binding
}

var _ help.KeyMap = Keys{}

func DefaultKeys() Keys {
	return Keys{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Capture: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add button")),
		Remove:  key.NewBinding(key.WithKeys("backspace", "d"), key.WithHelp("d", "remove last")),
		Clear:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Invert:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "invert scroll")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
	}
}

func (k Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Capture, k.Remove, k.Clear, k.Reset, k.Invert, k.Close}
}

func (k Keys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Capture, k.Remove, k.Clear, k.Reset},
		{k.Invert, k.Close},
	}
}
