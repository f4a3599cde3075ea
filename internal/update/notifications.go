package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/views"
)

func (m Model) handleNotificationsKey(msg tea.KeyMsg) Model {
	feed := m.visibleNotifications()
	switch msg.String() {
	case "j", "down":
		if m.Notifications.Cursor < len(feed)-1 {
			m.Notifications.Cursor++
		}
	case "k", "up":
		if m.Notifications.Cursor > 0 {
			m.Notifications.Cursor--
		}
	case "enter":
		if m.Notifications.Cursor < len(feed) {
			m.Session.MarkNotificationRead(feed[m.Notifications.Cursor].ID)
			m.Status = StatusBar{Text: "notification marked read", IsError: false}
		}
	case "A":
		for _, n := range feed {
			if !n.Read {
				m.Session.MarkNotificationRead(n.ID)
			}
		}
		m.Status = StatusBar{Text: "all notifications marked read", IsError: false}
	}
	return m
}

func (m Model) renderNotificationsView() string {
	user, ok := m.Session.CurrentUser()
	if !ok {
		return "notifications:\n(sign in first)"
	}
	feed := m.visibleNotifications()
	data := views.NotificationsPanelData{
		ListView: m.notifList.View(),
		Unread:   m.Session.UnreadCount(user.ID),
	}
	for _, n := range feed {
		data.Items = append(data.Items, views.NotificationLineData{
			ID:      n.ID,
			Message: n.Message,
			Created: dates.ISO(n.CreatedAt),
			Read:    n.Read,
			Type:    string(n.Type),
		})
	}
	return views.RenderNotificationsPanel(data)
}
