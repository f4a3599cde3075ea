package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/commands"
	"github.com/complymate/complymate/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
	return m, nil
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Complete: func(a commands.CompleteArgs) (commands.Result, error) {
			task, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no matching task for " + a.Target}
			}
			if err := m.Session.CompleteTask(task.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("completed: %s", task.Name)}, nil
		},
		Assign: func(a commands.AssignArgs) (commands.Result, error) {
			task, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no matching task for " + a.Target}
			}
			user, ok := m.resolveUser(a.Assignee)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no such user: " + a.Assignee}
			}
			task.AssigneeID = user.ID
			m.Session.UpdateTask(task)
			return commands.Result{Message: fmt.Sprintf("assigned %s to %s", task.Name, user.Name)}, nil
		},
		Attach: func(a commands.AttachArgs) (commands.Result, error) {
			task, ok := m.resolveTarget(a.Target)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no matching task for " + a.Target}
			}
			m.Session.AttachFile(task.ID, a.FileName, mediaTypeFor(a.FileName))
			return commands.Result{Message: fmt.Sprintf("attached %s to %s", a.FileName, task.Name)}, nil
		},
		Read: func(a commands.ReadArgs) (commands.Result, error) {
			if a.Target == "all" {
				count := 0
				for _, n := range m.visibleNotifications() {
					if !n.Read {
						m.Session.MarkNotificationRead(n.ID)
						count++
					}
				}
				return commands.Result{Message: fmt.Sprintf("marked %d notification(s) read", count)}, nil
			}
			m.Session.MarkNotificationRead(a.Target)
			return commands.Result{Message: "marked read: " + a.Target}, nil
		},
		Show: func(a commands.ShowArgs) (commands.Result, error) {
			switch a.Subject {
			case "tasks":
				m.Tasks.Filter = TaskFilter{Department: a.Department, Status: a.Status}
				m.Tasks.Cursor = 0
				m.CurrentView = ViewTasks
				return commands.Result{Message: "showing tasks"}, nil
			case "dashboard", "calendar", "notifications", "reports":
				m.CurrentView = View(strings.ToUpper(a.Subject[:1]) + a.Subject[1:])
				return commands.Result{Message: "showing " + a.Subject}, nil
			default:
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "unknown subject: " + a.Subject}
			}
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			var path string
			var err error
			if a.Format == "csv" {
				path, err = m.exportCSV(a.Path)
			} else {
				path, err = m.exportSummary(a.Path)
			}
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "exported " + path}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

// resolveTarget maps a palette target to a task: "selected" uses the table
// cursor, anything else matches by id then by case-insensitive name.
func (m *Model) resolveTarget(target string) (model.Task, bool) {
	if strings.EqualFold(target, "selected") {
		return m.selectedTask()
	}
	for _, t := range m.Session.Tasks() {
		if t.ID == target {
			return t, true
		}
	}
	for _, t := range m.Session.Tasks() {
		if strings.EqualFold(t.Name, target) {
			return t, true
		}
	}
	return model.Task{}, false
}

func (m *Model) resolveUser(ref string) (model.User, bool) {
	if u, ok := m.Session.UserByID(ref); ok {
		return u, true
	}
	for _, u := range m.Session.Users() {
		if strings.EqualFold(u.Name, ref) {
			return u, true
		}
	}
	return model.User{}, false
}

func mediaTypeFor(fileName string) string {
	lower := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "application/pdf"
	case strings.HasSuffix(lower, ".csv"):
		return "text/csv"
	case strings.HasSuffix(lower, ".png"):
		return "image/png"
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
