package update

import (
	"fmt"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/report"
	"github.com/complymate/complymate/internal/views"
)

func (m Model) renderDashboardView() string {
	tasks := m.Session.Tasks()
	now := m.Clock()
	ops := report.Operational(tasks)
	fin := report.Financial(tasks)

	data := views.DashboardPanelData{
		ProgressView: m.rateProgress.ViewAs(float64(ops.Rate) / 100),
		RatePct:      ops.Rate,
		Stats: []views.StatRowData{
			{Label: "total", Value: fmt.Sprintf("%d", ops.Total)},
			{Label: "completed", Value: fmt.Sprintf("%d", ops.Completed)},
			{Label: "pending", Value: fmt.Sprintf("%d", ops.Pending)},
			{Label: "overdue", Value: fmt.Sprintf("%d", ops.Overdue)},
		},
		Finance: []views.StatRowData{
			{Label: "total", Value: report.FormatINR(fin.TotalLiability)},
			{Label: "paid", Value: fmt.Sprintf("%s (%.0f%%)", report.FormatINR(fin.Paid), fin.PaidPct)},
			{Label: "pending", Value: fmt.Sprintf("%s (%.0f%%)", report.FormatINR(fin.Pending), fin.PendingPct)},
			{Label: "overdue", Value: fmt.Sprintf("%s (%.0f%%)", report.FormatINR(fin.Overdue), fin.OverduePct)},
		},
	}

	for _, out := range report.CashFlow(tasks, now) {
		data.CashFlow = append(data.CashFlow, views.StatRowData{
			Label: fmt.Sprintf("%s %d", out.Label, out.Year),
			Value: report.FormatINR(out.Amount),
		})
	}
	for _, d := range report.ByDepartment(tasks) {
		data.Departments = append(data.Departments, views.StatRowData{
			Label: string(d.Department),
			Value: fmt.Sprintf("%d%% compliant, %s", d.Percent, report.FormatINR(d.Liability)),
		})
	}
	return views.RenderDashboardPanel(data)
}

func (m Model) renderDashboardSidePane() string {
	tasks := m.Session.Tasks()
	data := views.DashboardPanelData{}
	for _, t := range report.Upcoming(tasks, m.UpcomingLimit) {
		data.Upcoming = append(data.Upcoming, taskLine(t.Name, dates.ISO(t.DueDate), t.Amount))
	}
	for _, t := range report.OverdueTasks(tasks) {
		data.Overdue = append(data.Overdue, taskLine(t.Name, dates.ISO(t.DueDate), t.Amount))
	}
	return views.RenderDashboardSidePane(data)
}

func taskLine(name, due string, amount float64) views.TaskLineData {
	line := views.TaskLineData{Name: name, Due: due}
	if amount > 0 {
		line.Amount = report.FormatINR(amount)
	}
	return line
}
