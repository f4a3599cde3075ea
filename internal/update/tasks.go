package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/report"
	"github.com/complymate/complymate/internal/views"
)

func (m Model) handleTasksKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.Tasks.Cursor < len(m.visibleTasks())-1 {
			m.Tasks.Cursor++
		}
	case "k", "up":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "n":
		form := NewTaskForm(m.Session.Users(), m.Clock)
		cmd := form.StartCreate()
		m.Form = form
		return m, cmd
	case "e":
		if t, ok := m.selectedTask(); ok {
			form := NewTaskForm(m.Session.Users(), m.Clock)
			cmd := form.StartEdit(t)
			m.Form = form
			return m, cmd
		}
	case "c":
		if t, ok := m.selectedTask(); ok {
			if err := m.Session.CompleteTask(t.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
			} else {
				m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", t.Name), IsError: false}
			}
		}
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.Session.DeleteTask(t.ID)
			if m.Tasks.Cursor > 0 {
				m.Tasks.Cursor--
			}
			m.Status = StatusBar{Text: fmt.Sprintf("deleted: %s", t.Name), IsError: false}
		}
	case "a":
		if _, ok := m.selectedTask(); ok {
			m.Palette.Active = true
			m.Palette.Input = "attach selected "
			m.commandInput.Focus()
			m.commandInput.SetValue(m.Palette.Input)
		}
	case "f":
		m.Tasks.Filter = TaskFilter{}
		m.Tasks.Cursor = 0
		m.Status = StatusBar{Text: "filter cleared", IsError: false}
	}
	return m, nil
}

func (m Model) renderTasksView() string {
	filter := ""
	if m.Tasks.Filter.Department != "" || m.Tasks.Filter.Status != "" {
		parts := make([]string, 0, 2)
		if m.Tasks.Filter.Department != "" {
			parts = append(parts, "dept:"+m.Tasks.Filter.Department)
		}
		if m.Tasks.Filter.Status != "" {
			parts = append(parts, "status:"+m.Tasks.Filter.Status)
		}
		filter = strings.Join(parts, " ")
	}
	return views.RenderTasksPanel(views.TasksPanelData{
		TableView: m.tasksTable.View(),
		Filter:    filter,
	})
}

func (m Model) renderTaskDetailPane() string {
	t, ok := m.selectedTask()
	if !ok {
		return views.RenderTaskDetail(nil)
	}
	data := views.TaskDetailData{
		Name:        t.Name,
		Department:  string(t.Department),
		Category:    string(t.Category),
		Due:         dates.ISO(t.DueDate),
		Period:      t.Period,
		Status:      string(t.Status),
		Assignee:    m.assigneeName(t.AssigneeID),
		Description: t.Description,
	}
	if t.Amount > 0 {
		data.Amount = report.FormatINR(t.Amount)
	}
	if t.CompletedBy != "" {
		data.CompletedBy = m.assigneeName(t.CompletedBy)
		if t.CompletedAt != nil {
			data.CompletedAt = dates.ISO(*t.CompletedAt)
		}
	}
	if t.Attachment != nil {
		data.Attachment = fmt.Sprintf("%s (%s)", t.Attachment.Name, t.Attachment.MediaType)
	}
	return views.RenderTaskDetail(&data)
}
