package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/MarkMcCaskey/rebind/internal/actions"
	"github.com/MarkMcCaskey/rebind/internal/button"
	"github.com/MarkMcCaskey/rebind/internal/config"
	"github.com/MarkMcCaskey/rebind/internal/errmsg"
	"github.com/MarkMcCaskey/rebind/internal/keymap"
	"github.com/MarkMcCaskey/rebind/internal/state"
	"github.com/MarkMcCaskey/rebind/internal/teainput"
	"github.com/MarkMcCaskey/rebind/internal/ui/action"
	"github.com/MarkMcCaskey/rebind/internal/ui/bindhelp"
	"github.com/MarkMcCaskey/rebind/internal/ui/editor"
	"github.com/MarkMcCaskey/rebind/internal/ui/monitor"
	"github.com/MarkMcCaskey/rebind/internal/ui/popup"
)

type translator = keymap.Translator[button.Button, actions.Action]

type model struct {
	profile    string
	store      state.Interface // nil when persistence is off
	logger     *log.Logger
	km         *state.Keymap
	translator *translator
	monitor    monitor.Model
	help       bindhelp.Model
	editor     *editor.Model // nil unless open
	paused     bool
	width      int
	height     int
}

// newModel starts from the saved profile when there is one and from the
// config file otherwise.
func newModel(cfg *config.Config, store state.Interface, logger *log.Logger) (model, error) {
	km, err := cfg.Keymap()
	if err != nil {
		return model{}, errors.New(errmsg.Format(errmsg.OpKeymapLoad, err))
	}

	if store != nil {
		saved, err := store.LoadProfile(cfg.Profile)
		switch {
		case err != nil:
			logger.Error(errmsg.FormatWith(errmsg.OpProfileLoad, cfg.Profile, err))
		case saved != nil:
			logger.Info("loaded profile", "profile", cfg.Profile, "actions", saved.Len())
			km = saved
		}
	}

	m := model{
		profile: cfg.Profile,
		store:   store,
		logger:  logger,
		monitor: monitor.New(),
		help:    bindhelp.New(),
	}
	m.setKeymap(km)
	return m, nil
}

// setKeymap installs km and rebuilds everything derived from it. The
// viewport size survives the rebuild, and required actions left without
// buttons get their defaults back.
func (m *model) setKeymap(km *state.Keymap) {
	var size keymap.Size
	if m.translator != nil {
		size = m.translator.Axes().Size
	}
	km.SetSize(size)

	if restored := actions.Restore(km); len(restored) > 0 {
		m.logger.Warn("restored default bindings", "actions", restored)
	}

	m.km = km
	m.translator = keymap.ToTranslator(km)
	m.help.SetKeyMap(bindhelp.NewKeyMap(km))

	for _, c := range km.Conflicts() {
		m.logger.Warn("shared button", "button", c.Button, "actions", c.Actions, "winner", c.Winner())
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size)
		return m, nil
	}

	// Reserved keys are handled here and never reach the bindings
	k, isKey := msg.(tea.KeyMsg)
	if isKey && k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.editor != nil {
		return m.updateEditor(msg)
	}

	if isKey && k.String() == "?" {
		m.help.ToggleFull()
		m.layout()
		return m, nil
	}

	ev, ok := teainput.FromMsg(msg)
	if !ok {
		return m, nil
	}

	out, matched := m.translator.Translate(ev)
	if matched && out.Kind == keymap.EventPress {
		switch out.Action {
		case actions.Quit:
			return m, tea.Quit
		case actions.Menu:
			m.openEditor()
			return m, nil
		case actions.Pause:
			m.paused = !m.paused
			m.monitor.SetStatus(pausedStatus(m.paused))
			return m, nil
		}
	}

	if !m.paused {
		m.monitor.Record(ev, out, matched)
	}
	return m, nil
}

func pausedStatus(paused bool) string {
	if paused {
		return "Paused: input is not recorded"
	}
	return ""
}

func (m *model) openEditor() {
	m.editor = editor.New(m.km)
	m.editor.SetSize(popup.ContentSize(m.width, m.height, popup.SizeLarge))
	m.logger.Debug("editor opened")
}

func (m model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if am, ok := msg.(action.Msg); ok {
		if closed, ok := am.Action.(editor.Close); ok {
			m.closeEditor(closed)
			return m, nil
		}
	}

	p, cmd := m.editor.Update(msg)
	if e, ok := p.(*editor.Model); ok {
		m.editor = e
	}
	return m, cmd
}

func (m *model) closeEditor(closed editor.Close) {
	m.editor = nil
	if !closed.Changed {
		return
	}

	m.setKeymap(closed.Keymap)
	m.logger.Info("bindings changed", "profile", m.profile)
	if m.store != nil {
		m.store.QueueSave(m.profile, m.km)
	}
}

func (m *model) resize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height

	size := teainput.Size(msg)
	m.translator.SetSize(size)
	m.km.SetSize(size)
	m.monitor.SetViewport(size)
	m.layout()

	if m.editor != nil {
		m.editor.SetSize(popup.ContentSize(m.width, m.height, popup.SizeLarge))
	}
}

func (m *model) layout() {
	m.help.SetSize(m.width, 0)
	helpHeight := lipgloss.Height(m.help.View())
	m.monitor.SetSize(m.width, max(m.height-helpHeight, 0))
}

func (m model) View() string {
	if m.editor != nil {
		return popup.RenderBordered(m.editor.View(), m.width, m.height, popup.SizeLarge)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.monitor.View(), m.help.View())
}
