package views

import (
	"fmt"
	"strings"
)

type LoginUserData struct {
	ID         string
	Name       string
	Role       string
	Department string
}

type LoginPanelData struct {
	Users         []LoginUserData
	SelectedID    string
	PasswordView  string
	NeedsPassword bool
	ErrorText     string
}

type StatRowData struct {
	Label string
	Value string
}

type DashboardPanelData struct {
	Stats        []StatRowData
	ProgressView string
	RatePct      int
	Finance      []StatRowData
	CashFlow     []StatRowData
	Departments  []StatRowData
	Upcoming     []TaskLineData
	Overdue      []TaskLineData
}

type TaskLineData struct {
	ID       string
	Name     string
	Due      string
	Status   string
	Amount   string
	Assignee string
}

type TaskDetailData struct {
	Name        string
	Department  string
	Category    string
	Due         string
	Period      string
	Status      string
	Amount      string
	Assignee    string
	Description string
	CompletedBy string
	CompletedAt string
	Attachment  string
}

type TasksPanelData struct {
	TableView string
	Detail    *TaskDetailData
	Filter    string
}

type CalendarPanelData struct {
	MonthLabel   string
	FirstWeekday int // 0=Sunday, column of day 1
	DaysInMonth  int
	DueCounts    map[int]int
	Today        int // 0 when today is outside the shown month
	SelectedDay  int
	DayTasks     []TaskLineData
}

type NotificationLineData struct {
	ID      string
	Message string
	Created string
	Read    bool
	Type    string
}

type NotificationsPanelData struct {
	ListView string
	Items    []NotificationLineData
	Unread   int
}

type ReportsPanelData struct {
	SummaryView string
	ExportHint  string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderLoginPanel(data LoginPanelData) string {
	var b strings.Builder
	b.WriteString("login:\n")
	b.WriteString("actions: [j/k]select [enter]login [q]quit\n")
	for _, u := range data.Users {
		cursor := " "
		if u.ID == data.SelectedID {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s, %s)\n", cursor, u.Name, u.Role, u.Department))
	}
	if data.NeedsPassword {
		b.WriteString("\npassword:\n")
		b.WriteString(data.PasswordView + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString("\nerror: " + data.ErrorText)
	}
	return strings.TrimSpace(b.String())
}

func RenderDashboardPanel(data DashboardPanelData) string {
	var b strings.Builder
	b.WriteString("dashboard:\n")
	for _, row := range data.Stats {
		b.WriteString(fmt.Sprintf("%s: %s\n", row.Label, row.Value))
	}
	b.WriteString(fmt.Sprintf("completion: %s %d%%\n", data.ProgressView, data.RatePct))

	b.WriteString("\nliability:\n")
	for _, row := range data.Finance {
		b.WriteString(fmt.Sprintf("%s: %s\n", row.Label, row.Value))
	}

	b.WriteString("\ncash outflow (6 months):\n")
	for _, row := range data.CashFlow {
		b.WriteString(fmt.Sprintf("  %s %s\n", row.Label, row.Value))
	}

	b.WriteString("\ndepartments:\n")
	for _, row := range data.Departments {
		b.WriteString(fmt.Sprintf("  %s %s\n", row.Label, row.Value))
	}
	return strings.TrimSpace(b.String())
}

func RenderDashboardSidePane(data DashboardPanelData) string {
	var b strings.Builder
	renderTaskSection(&b, "upcoming", data.Upcoming)
	renderTaskSection(&b, "overdue", data.Overdue)
	return strings.TrimSpace(b.String())
}

func RenderTasksPanel(data TasksPanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString("actions: [j/k]move [n]new [e]edit [c]complete [a]attach [d]delete\n")
	if data.Filter != "" {
		b.WriteString("filter: " + data.Filter + "\n")
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderTaskDetail(data *TaskDetailData) string {
	if data == nil {
		return "detail:\n(no selection)"
	}
	var b strings.Builder
	b.WriteString("detail:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	b.WriteString(fmt.Sprintf("department: %s | category: %s\n", data.Department, data.Category))
	b.WriteString(fmt.Sprintf("due: %s | period: %s\n", data.Due, data.Period))
	b.WriteString(fmt.Sprintf("status: %s\n", data.Status))
	if data.Amount != "" {
		b.WriteString(fmt.Sprintf("amount: %s\n", data.Amount))
	}
	b.WriteString(fmt.Sprintf("assignee: %s\n", data.Assignee))
	if data.Description != "" {
		b.WriteString(fmt.Sprintf("notes: %s\n", data.Description))
	}
	if data.CompletedBy != "" {
		b.WriteString(fmt.Sprintf("completed: %s by %s\n", data.CompletedAt, data.CompletedBy))
	}
	if data.Attachment != "" {
		b.WriteString(fmt.Sprintf("attachment: %s\n", data.Attachment))
	}
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("calendar:\n")
	b.WriteString(fmt.Sprintf("month: %s\n", data.MonthLabel))
	b.WriteString("actions: [h/l]month [j/k]day [enter]tasks\n\n")
	b.WriteString(" Su  Mo  Tu  We  Th  Fr  Sa\n")

	col := 0
	for ; col < data.FirstWeekday; col++ {
		b.WriteString("    ")
	}
	for day := 1; day <= data.DaysInMonth; day++ {
		mark := " "
		if data.DueCounts[day] > 0 {
			mark = "*"
		}
		cell := fmt.Sprintf("%2d%s ", day, mark)
		if day == data.SelectedDay {
			cell = fmt.Sprintf("[%2d]", day)
		} else if day == data.Today {
			cell = fmt.Sprintf("%2d. ", day)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	if data.SelectedDay > 0 {
		b.WriteString(fmt.Sprintf("\nday %d:\n", data.SelectedDay))
		if len(data.DayTasks) == 0 {
			b.WriteString("  (nothing due)\n")
		}
		for _, t := range data.DayTasks {
			b.WriteString(fmt.Sprintf("  [%s] %s", strings.ToUpper(t.Status), t.Name))
			if t.Amount != "" {
				b.WriteString(" " + t.Amount)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderNotificationsPanel(data NotificationsPanelData) string {
	var b strings.Builder
	b.WriteString("notifications:\n")
	b.WriteString(fmt.Sprintf("unread: %d\n", data.Unread))
	b.WriteString("actions: [j/k]move [enter]mark-read\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Items) == 0 {
		b.WriteString("(none)")
	}
	for _, n := range data.Items {
		marker := "*"
		if n.Read {
			marker = " "
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s (%s)\n", marker, strings.ToUpper(n.Type), n.Message, n.Created))
	}
	return strings.TrimSpace(b.String())
}

func RenderReportsPanel(data ReportsPanelData) string {
	var b strings.Builder
	b.WriteString("reports:\n")
	b.WriteString("actions: [x]export-csv [p]export-summary\n")
	if data.ExportHint != "" {
		b.WriteString(data.ExportHint + "\n")
	}
	b.WriteString("\n" + data.SummaryView)
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("\nnotification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\nglobal:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTaskSection(b *strings.Builder, title string, items []TaskLineData) {
	b.WriteString(fmt.Sprintf("\n%s:\n", title))
	if len(items) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, t := range items {
		b.WriteString(fmt.Sprintf("  %s due:%s", t.Name, t.Due))
		if t.Amount != "" {
			b.WriteString(" " + t.Amount)
		}
		b.WriteString("\n")
	}
}
