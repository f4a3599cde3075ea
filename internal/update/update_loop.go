package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Form != nil {
		return m.updateForm(msg)
	}

	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			next, cmd := m.handlePaletteKey(typed)
			next.syncBubbleData()
			return next, cmd
		}
		if m.CurrentView == ViewLogin {
			next, cmd := m.handleLoginKey(typed)
			next.syncBubbleData()
			if next.Quitting {
				return next, tea.Quit
			}
			return next, cmd
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active", IsError: false}
			return m, nil
		case m.Keys.Dashboard:
			m.CurrentView = ViewDashboard
			return m, nil
		case m.Keys.Tasks:
			m.CurrentView = ViewTasks
			m.syncBubbleData()
			return m, nil
		case m.Keys.Calendar:
			m.CurrentView = ViewCalendar
			return m, nil
		case m.Keys.Notifications:
			m.CurrentView = ViewNotifications
			m.syncBubbleData()
			return m, nil
		case m.Keys.Reports:
			m.CurrentView = ViewReports
			m.syncBubbleData()
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown", IsError: false}
			} else {
				m.Status = StatusBar{Text: "help hidden", IsError: false}
			}
			return m, nil
		case "L":
			m.Session.Logout()
			m.CurrentView = ViewLogin
			m.Login = LoginState{}
			m.Status = StatusBar{Text: "signed out", IsError: false}
			return m, nil
		case "ctrl+c", m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}

		switch m.CurrentView {
		case ViewTasks:
			next, cmd := m.handleTasksKey(typed)
			next.syncBubbleData()
			return next, cmd
		case ViewCalendar:
			next := m.handleCalendarKey(typed)
			return next, nil
		case ViewNotifications:
			next := m.handleNotificationsKey(typed)
			next.syncBubbleData()
			return next, nil
		case ViewReports:
			next, cmd := m.handleReportsKey(typed)
			next.syncBubbleData()
			return next, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.syncBubbleData()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	if m.Form != nil {
		return views.RenderApp(views.AppData{
			Header:        m.headerLine(),
			LeftPane:      m.Form.View(),
			RightPane:     m.renderHelpIfVisible(),
			StatusLine:    status,
			StatusIsError: m.Status.IsError,
			Footer:        "keys: tab next field | enter submit | esc cancel",
		})
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewLogin:
		leftPane = m.renderLoginView()
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderDashboardSidePane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderTaskDetailPane() + m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewCalendar:
		leftPane = m.renderCalendarView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewNotifications:
		leftPane = m.renderNotificationsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	case ViewReports:
		leftPane = m.renderReportsView()
		rightPane = m.renderCommandPalette() + m.renderHelpIfVisible()
	}

	return views.RenderApp(views.AppData{
		Header:        m.headerLine(),
		LeftPane:      leftPane,
		RightPane:     rightPane,
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Footer:        m.footerLine(),
		Toast:         m.renderToastView(),
	})
}

func (m Model) headerLine() string {
	who := "(signed out)"
	unread := 0
	if user, ok := m.Session.CurrentUser(); ok {
		who = fmt.Sprintf("%s (%s)", user.Name, user.Role)
		unread = m.Session.UnreadCount(user.ID)
	}
	return fmt.Sprintf("complymate | view: %s | %s | unread: %d", m.CurrentView, who, unread)
}

func (m Model) footerLine() string {
	if m.CurrentView == ViewLogin {
		return "keys: j/k select | enter sign in | q quit"
	}
	return fmt.Sprintf("keys: %s dash | %s tasks | %s cal | %s notif | %s reports | / cmd | %s help | L logout | %s quit",
		m.Keys.Dashboard, m.Keys.Tasks, m.Keys.Calendar, m.Keys.Notifications, m.Keys.Reports, m.Keys.Help, m.Keys.Quit)
}
