package editor

import (
	"github.com/MarkMcCaskey/rebind/internal/ui/action"
)

// Close is emitted when the editor is dismissed. Keymap is the edited
// table; the editor no longer touches it.
type Close struct {
	Keymap  *Keymap
	Changed bool
}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "editor.close" }

// ActionMsg creates an action.Msg for an editor action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "editor", Action: a}
}
