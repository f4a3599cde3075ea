package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
	"github.com/complymate/complymate/internal/report"
	"github.com/complymate/complymate/internal/views"
)

func (m *Model) initBubbleComponents() {
	cols := []table.Column{
		{Title: "Task", Width: 26},
		{Title: "Dept", Width: 8},
		{Title: "Due", Width: 11},
		{Title: "Status", Width: 10},
		{Title: "Amount", Width: 11},
	}
	m.tasksTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithFocused(true), table.WithHeight(12))

	m.notifList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.notifList.Title = "Notifications (list)"
	m.notifList.SetShowHelp(false)
	m.notifList.SetFilteringEnabled(false)

	m.passwordInput = textinput.New()
	m.passwordInput.Prompt = "password> "
	m.passwordInput.EchoMode = textinput.EchoPassword
	m.passwordInput.CharLimit = 64
	m.passwordInput.Width = 24

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.rateProgress = progress.New(progress.WithDefaultGradient())

	m.helpModel = help.New()
	m.summaryView = viewport.New(58, 16)
}

func (m *Model) syncBubbleData() {
	tasks := m.visibleTasks()
	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		amount := ""
		if t.Amount > 0 {
			amount = report.FormatINR(t.Amount)
		}
		rows = append(rows, table.Row{t.Name, string(t.Department), dates.ISO(t.DueDate), string(t.Status), amount})
	}
	m.tasksTable.SetRows(rows)
	if len(rows) > 0 && m.Tasks.Cursor < len(rows) {
		m.tasksTable.SetCursor(m.Tasks.Cursor)
	}

	notifs := m.visibleNotifications()
	items := make([]list.Item, 0, len(notifs))
	for _, n := range notifs {
		state := "unread"
		if n.Read {
			state = "read"
		}
		items = append(items, listItem{title: n.Message, description: fmt.Sprintf("%s | %s", n.Type, state)})
	}
	m.notifList.SetItems(items)
	if len(items) > 0 && m.Notifications.Cursor < len(items) {
		m.notifList.Select(m.Notifications.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if m.CurrentView == ViewReports {
		md := report.Summary(m.Session.Tasks(), m.Session.Users(), m.Clock())
		m.summaryView.SetContent(views.RenderMarkdown(md))
	}
}

// visibleTasks applies the active show filter to the task collection.
func (m *Model) visibleTasks() []model.Task {
	tasks := m.Session.Tasks()
	if m.Tasks.Filter.Department == "" && m.Tasks.Filter.Status == "" {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if m.Tasks.Filter.Department != "" && !strings.EqualFold(string(t.Department), m.Tasks.Filter.Department) {
			continue
		}
		if m.Tasks.Filter.Status != "" && !strings.EqualFold(string(t.Status), m.Tasks.Filter.Status) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// visibleNotifications returns the signed-in user's feed, unread first.
func (m *Model) visibleNotifications() []model.Notification {
	user, ok := m.Session.CurrentUser()
	if !ok {
		return nil
	}
	all := m.Session.Notifications()
	unread := make([]model.Notification, 0, len(all))
	read := make([]model.Notification, 0, len(all))
	for _, n := range all {
		if n.UserID != user.ID {
			continue
		}
		if n.Read {
			read = append(read, n)
		} else {
			unread = append(unread, n)
		}
	}
	return append(unread, read...)
}

func (m *Model) selectedTask() (model.Task, bool) {
	tasks := m.visibleTasks()
	if m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Tasks.Cursor], true
}

func (m *Model) assigneeName(id string) string {
	if u, ok := m.Session.UserByID(id); ok {
		return u.Name
	}
	return ""
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	m.Toasts = append(m.Toasts, Toast{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.Clock().UTC(),
	})
	if len(m.Toasts) > 40 {
		m.Toasts = m.Toasts[len(m.Toasts)-40:]
	}
}

func (m Model) renderToastView() string {
	if len(m.Toasts) == 0 {
		return ""
	}
	t := m.Toasts[len(m.Toasts)-1]
	return views.RenderNotification(t.Level, t.Body)
}

func levelFromError(isError bool) string {
	if isError {
		return "error"
	}
	return "info"
}

