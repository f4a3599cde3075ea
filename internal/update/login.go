package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/model"
	"github.com/complymate/complymate/internal/views"
)

func (m Model) handleLoginKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	users := m.Session.Users()
	if len(users) == 0 {
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.Quitting = true
		}
		return m, nil
	}

	if m.Login.PasswordMode {
		switch msg.String() {
		case "esc":
			m.Login.PasswordMode = false
			m.Login.ErrorText = ""
			m.passwordInput.Blur()
			m.passwordInput.SetValue("")
		case "enter":
			m = m.attemptLogin(users[m.Login.Cursor], m.passwordInput.Value())
		case "ctrl+c":
			m.Quitting = true
		default:
			var cmd tea.Cmd
			m.passwordInput, cmd = m.passwordInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.Login.Cursor < len(users)-1 {
			m.Login.Cursor++
		}
	case "k", "up":
		if m.Login.Cursor > 0 {
			m.Login.Cursor--
		}
	case "enter":
		selected := users[m.Login.Cursor]
		if selected.Role == model.RoleAdmin {
			m.Login.PasswordMode = true
			m.Login.ErrorText = ""
			m.passwordInput.SetValue("")
			return m, m.passwordInput.Focus()
		}
		m = m.attemptLogin(selected, "")
	case "q", "ctrl+c":
		m.Quitting = true
	}
	return m, nil
}

func (m Model) attemptLogin(user model.User, password string) Model {
	if err := m.Session.Login(user.ID, password); err != nil {
		m.Login.ErrorText = err.Error()
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	m.Login.PasswordMode = false
	m.Login.ErrorText = ""
	m.passwordInput.Blur()
	m.passwordInput.SetValue("")
	m.CurrentView = ViewDashboard
	if m.afterLoginView != "" {
		m.CurrentView = m.afterLoginView
	}
	m.Status = StatusBar{Text: "signed in as " + user.Name, IsError: false}
	return m
}

func (m Model) renderLoginView() string {
	users := m.Session.Users()
	data := views.LoginPanelData{
		NeedsPassword: m.Login.PasswordMode,
		PasswordView:  m.passwordInput.View(),
		ErrorText:     m.Login.ErrorText,
	}
	for i, u := range users {
		item := views.LoginUserData{
			ID:         u.ID,
			Name:       u.Name,
			Role:       string(u.Role),
			Department: string(u.Department),
		}
		if i == m.Login.Cursor {
			data.SelectedID = u.ID
		}
		data.Users = append(data.Users, item)
	}
	return views.RenderLoginPanel(data)
}
