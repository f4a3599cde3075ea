package update

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name        string
	department  string
	category    string
	dueDate     string
	period      string
	description string
	amount      string
	assigneeID  string
}

// TaskFormState is the create/edit form for a single task.
type TaskFormState struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editing  model.Task
	users    []model.User
	clock    func() time.Time
}

func NewTaskForm(users []model.User, clock func() time.Time) *TaskFormState {
	if clock == nil {
		clock = time.Now
	}
	return &TaskFormState{
		fb: &formBindings{
			department: string(model.DepartmentFinance),
			category:   string(model.CategoryMonthly),
		},
		users: users,
		clock: clock,
	}
}

func (f *TaskFormState) StartCreate() tea.Cmd {
	f.editMode = false
	f.editing = model.Task{}
	*f.fb = formBindings{
		department: string(model.DepartmentFinance),
		category:   string(model.CategoryMonthly),
		dueDate:    dates.ISO(dates.Day(f.clock().UTC())),
	}
	if len(f.users) > 0 {
		f.fb.assigneeID = f.users[0].ID
	}
	f.form = f.buildForm()
	return f.form.Init()
}

func (f *TaskFormState) StartEdit(t model.Task) tea.Cmd {
	f.editMode = true
	f.editing = t
	*f.fb = formBindings{
		name:        t.Name,
		department:  string(t.Department),
		category:    string(t.Category),
		dueDate:     dates.ISO(t.DueDate),
		period:      t.Period,
		description: t.Description,
		assigneeID:  t.AssigneeID,
	}
	if t.Amount > 0 {
		f.fb.amount = strconv.FormatFloat(t.Amount, 'f', -1, 64)
	}
	f.form = f.buildForm()
	return f.form.Init()
}

func (f *TaskFormState) Update(msg tea.Msg) (*TaskFormState, tea.Cmd) {
	if f.form == nil {
		return f, nil
	}
	mdl, cmd := f.form.Update(msg)
	if next, ok := mdl.(*huh.Form); ok {
		f.form = next
	}
	if f.form.State == huh.StateCompleted {
		return f, f.handleSubmit()
	}
	if f.form.State == huh.StateAborted {
		return f, func() tea.Msg { return TaskFormCancelMsg{} }
	}
	return f, cmd
}

func (f *TaskFormState) View() string {
	if f.form == nil {
		return ""
	}
	title := "New Task"
	if f.editMode {
		title = "Edit Task"
	}
	return title + "\n" + f.form.View()
}

func (f *TaskFormState) buildForm() *huh.Form {
	assigneeOpts := make([]huh.Option[string], 0, len(f.users))
	for _, u := range f.users {
		assigneeOpts = append(assigneeOpts, huh.NewOption(fmt.Sprintf("%s (%s)", u.Name, u.Role), u.ID))
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("e.g. GST Remittance").
			Value(&f.fb.name).
			Validate(validateRequired("Name")),
		huh.NewSelect[string]().
			Title("Department").
			Options(
				huh.NewOption("Finance", string(model.DepartmentFinance)),
				huh.NewOption("HR", string(model.DepartmentHR)),
			).
			Value(&f.fb.department),
		huh.NewSelect[string]().
			Title("Category").
			Options(
				huh.NewOption("Monthly", string(model.CategoryMonthly)),
				huh.NewOption("Quarterly", string(model.CategoryQuarterly)),
				huh.NewOption("Half-Yearly", string(model.CategoryHalfYearly)),
				huh.NewOption("Annual", string(model.CategoryAnnual)),
			).
			Value(&f.fb.category),
		huh.NewInput().
			Title("Due Date").
			Placeholder("YYYY-MM-DD").
			Value(&f.fb.dueDate).
			Validate(validateDate),
		huh.NewInput().
			Title("Period").
			Placeholder("e.g. July 2024").
			Value(&f.fb.period),
		huh.NewInput().
			Title("Amount").
			Placeholder("0 for pure filings").
			Value(&f.fb.amount).
			Validate(validateOptionalAmount),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&f.fb.description),
	}
	if len(assigneeOpts) > 0 {
		fields = append(fields, huh.NewSelect[string]().
			Title("Assignee").
			Options(assigneeOpts...).
			Value(&f.fb.assigneeID))
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithWidth(56)
}

func (f *TaskFormState) handleSubmit() tea.Cmd {
	task := model.Task{
		Name:        strings.TrimSpace(f.fb.name),
		Department:  model.Department(f.fb.department),
		Category:    model.Category(f.fb.category),
		Period:      strings.TrimSpace(f.fb.period),
		Description: strings.TrimSpace(f.fb.description),
		AssigneeID:  f.fb.assigneeID,
		Status:      model.StatusPending,
	}
	if due, err := dates.ParseISO(f.fb.dueDate); err == nil {
		task.DueDate = due
	}
	if raw := strings.TrimSpace(f.fb.amount); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			task.Amount = v
		}
	}

	edit := f.editMode
	if edit {
		task.ID = f.editing.ID
		task.Status = f.editing.Status
		task.CompletedBy = f.editing.CompletedBy
		task.CompletedAt = f.editing.CompletedAt
		task.Attachment = f.editing.Attachment
	}
	return func() tea.Msg { return TaskSavedMsg{Task: task, Edit: edit} }
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case TaskSavedMsg:
		m.applyFormResult(typed)
		m.Form = nil
		m.syncBubbleData()
		return m, nil
	case TaskFormCancelMsg:
		m.Form = nil
		m.Status = StatusBar{Text: "form cancelled", IsError: false}
		return m, nil
	}
	form, cmd := m.Form.Update(msg)
	m.Form = form
	return m, cmd
}

func (m *Model) applyFormResult(msg TaskSavedMsg) {
	if msg.Edit {
		m.Session.UpdateTask(msg.Task)
		m.Status = StatusBar{Text: "updated: " + msg.Task.Name, IsError: false}
		m.notify("Task", "updated: "+msg.Task.Name, "info")
		return
	}
	saved := m.Session.AddTask(msg.Task)
	m.Status = StatusBar{Text: "created: " + saved.Name, IsError: false}
	m.notify("Task", "created: "+saved.Name, "info")
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := dates.ParseISO(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalAmount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("amount must be a non-negative number")
	}
	return nil
}
