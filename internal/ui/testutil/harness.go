package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MarkMcCaskey/rebind/internal/ui/action"
	"github.com/MarkMcCaskey/rebind/internal/ui/popup"
)

// PopupHarness drives a popup.Popup in tests and keeps every command it
// returned, newest last.
type PopupHarness struct {
	p    popup.Popup
	cmds []tea.Cmd
}

func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{p: p}
	h.keep(p.Init())
	return h
}

func (h *PopupHarness) keep(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the current popup value; Update may have replaced it.
func (h *PopupHarness) Popup() popup.Popup { return h.p }

func (h *PopupHarness) View() string { return h.p.View() }

// SendMsg delivers msg and returns the command produced.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.p, cmd = h.p.Update(msg)
	return h.keep(cmd)
}

// SendKey types the runes of s as one key message.
func (h *PopupHarness) SendKey(s string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// SendSpecialKey sends a non-rune key such as tea.KeyEnter.
func (h *PopupHarness) SendSpecialKey(t tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: t})
}

// SendMouse presses b.
func (h *PopupHarness) SendMouse(b tea.MouseButton) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{Action: tea.MouseActionPress, Button: b})
}

// LastCommand is nil when nothing has returned a command yet.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if n := len(h.cmds); n > 0 {
		return h.cmds[n-1]
	}
	return nil
}

func (h *PopupHarness) ClearCommands() { h.cmds = nil }

// LastAction runs LastCommand and unwraps the action.Msg it produced.
func (h *PopupHarness) LastAction() action.Action {
	if msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg); ok {
		return msg.Action
	}
	return nil
}

// ViewContains matches substr against the view with styling removed.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(StripANSI(h.View()), substr)
}

// ExecuteCmd runs cmd synchronously. A nil cmd yields a nil message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
