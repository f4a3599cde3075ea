package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/complymate/complymate/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "switch to Dashboard"},
		{Key: m.Keys.Tasks, Action: "switch to Tasks"},
		{Key: m.Keys.Calendar, Action: "switch to Calendar"},
		{Key: m.Keys.Notifications, Action: "switch to Notifications"},
		{Key: m.Keys.Reports, Action: "switch to Reports"},
		{Key: "/", Action: "open command palette"},
		{Key: "L", Action: "sign out"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewLogin:
		return []KeyBinding{
			{Key: "j/k", Action: "select user"},
			{Key: "enter", Action: "sign in"},
		}
	case ViewTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "n/e", Action: "new / edit task"},
			{Key: "c", Action: "complete task"},
			{Key: "d", Action: "delete task"},
			{Key: "a", Action: "attach file"},
			{Key: "f", Action: "clear filter"},
		}
	case ViewCalendar:
		return []KeyBinding{
			{Key: "h/l", Action: "previous/next month"},
			{Key: "j/k", Action: "move day"},
			{Key: "t", Action: "jump to today"},
			{Key: "enter", Action: "open tasks"},
		}
	case ViewNotifications:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "enter", Action: "mark read"},
			{Key: "A", Action: "mark all read"},
		}
	case ViewReports:
		return []KeyBinding{
			{Key: "j/k", Action: "scroll summary"},
			{Key: "x", Action: "export CSV"},
			{Key: "p", Action: "export summary"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
