// Package action carries requests from views up to the root model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request from a view. ActionType names it in debug logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg that delivers an Action, tagged with the view that
// sent it ("editor", "monitor").
type Msg struct {
	Source string
	Action Action
}

var _ tea.Msg = Msg{}
