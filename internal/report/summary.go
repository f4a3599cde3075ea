// Package report computes the aggregate figures behind the dashboard and
// reports panes: operational counts, financial liability split by status,
// a six-month cash outflow projection, and per-department compliance
// summaries. All functions are pure over a task snapshot.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
)

// OperationalStats counts tasks by status.
type OperationalStats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
	Rate      int // completed percentage of total, rounded
}

// FinancialStats sums task amounts by status. Percentages are shares of
// the total liability and are zero when there is no liability at all.
type FinancialStats struct {
	TotalLiability float64
	Paid           float64
	Pending        float64
	Overdue        float64
	PaidPct        float64
	PendingPct     float64
	OverduePct     float64
}

// MonthOutflow is one bar of the projected cash outflow chart.
type MonthOutflow struct {
	Year   int
	Month  time.Month
	Label  string // short month name, e.g. "Jul"
	Amount float64
}

// DepartmentStats is one department's slice of the executive summary.
type DepartmentStats struct {
	Department model.Department
	Total      int
	Completed  int
	Overdue    int
	Percent    int // completed percentage of total, rounded
	Liability  float64
}

func Operational(tasks []model.Task) OperationalStats {
	var s OperationalStats
	s.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case model.StatusCompleted:
			s.Completed++
		case model.StatusPending:
			s.Pending++
		case model.StatusOverdue:
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.Rate = roundPct(float64(s.Completed) / float64(s.Total))
	}
	return s
}

func Financial(tasks []model.Task) FinancialStats {
	var f FinancialStats
	for _, t := range tasks {
		f.TotalLiability += t.Amount
		switch t.Status {
		case model.StatusCompleted:
			f.Paid += t.Amount
		case model.StatusPending:
			f.Pending += t.Amount
		case model.StatusOverdue:
			f.Overdue += t.Amount
		}
	}
	if f.TotalLiability > 0 {
		f.PaidPct = f.Paid / f.TotalLiability * 100
		f.PendingPct = f.Pending / f.TotalLiability * 100
		f.OverduePct = f.Overdue / f.TotalLiability * 100
	}
	return f
}

// CashFlow projects liability amounts over the six calendar months
// starting with now's month. Every task with an amount contributes to
// its due month regardless of status, so the chart shows the full
// budgeted outflow rather than only what remains unpaid.
func CashFlow(tasks []model.Task, now time.Time) []MonthOutflow {
	today := dates.Day(now)
	out := make([]MonthOutflow, 6)
	for i := range out {
		y, m := dates.AddMonths(today.Year(), today.Month(), i)
		out[i] = MonthOutflow{Year: y, Month: m, Label: m.String()[:3]}
	}
	for _, t := range tasks {
		if t.Amount == 0 {
			continue
		}
		for i := range out {
			if t.DueDate.Year() == out[i].Year && t.DueDate.Month() == out[i].Month {
				out[i].Amount += t.Amount
				break
			}
		}
	}
	return out
}

func ByDepartment(tasks []model.Task) []DepartmentStats {
	order := []model.Department{model.DepartmentFinance, model.DepartmentHR}
	stats := make([]DepartmentStats, 0, len(order))
	for _, dept := range order {
		s := DepartmentStats{Department: dept}
		for _, t := range tasks {
			if t.Department != dept {
				continue
			}
			s.Total++
			s.Liability += t.Amount
			switch t.Status {
			case model.StatusCompleted:
				s.Completed++
			case model.StatusOverdue:
				s.Overdue++
			}
		}
		if s.Total > 0 {
			s.Percent = roundPct(float64(s.Completed) / float64(s.Total))
		}
		stats = append(stats, s)
	}
	return stats
}

// Upcoming returns up to limit pending tasks ordered by due date.
func Upcoming(tasks []model.Task, limit int) []model.Task {
	pending := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Status == model.StatusPending {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].DueDate.Before(pending[j].DueDate)
	})
	if limit >= 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}

// OverdueTasks returns every overdue task ordered by due date.
func OverdueTasks(tasks []model.Task) []model.Task {
	overdue := make([]model.Task, 0)
	for _, t := range tasks {
		if t.Status == model.StatusOverdue {
			overdue = append(overdue, t)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		return overdue[i].DueDate.Before(overdue[j].DueDate)
	})
	return overdue
}

// FormatINR renders amounts the way the finance team reads them, in whole
// rupees with Indian digit grouping (12,34,567).
func FormatINR(amount float64) string {
	n := int64(amount + 0.5)
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}

// Summary renders the executive summary as markdown for the reports pane.
func Summary(tasks []model.Task, users []model.User, now time.Time) string {
	ops := Operational(tasks)
	fin := Financial(tasks)
	depts := ByDepartment(tasks)

	var b strings.Builder
	fmt.Fprintf(&b, "# Executive Summary\n\n")
	fmt.Fprintf(&b, "Report date: %s\n\n", dates.ISO(dates.Day(now)))

	fmt.Fprintf(&b, "## Operational\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total tasks | %d |\n", ops.Total)
	fmt.Fprintf(&b, "| Completed | %d |\n", ops.Completed)
	fmt.Fprintf(&b, "| Pending | %d |\n", ops.Pending)
	fmt.Fprintf(&b, "| Overdue | %d |\n", ops.Overdue)
	fmt.Fprintf(&b, "| Completion rate | %d%% |\n\n", ops.Rate)

	fmt.Fprintf(&b, "## Financial\n\n")
	fmt.Fprintf(&b, "| Bucket | Amount |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total liability | %s |\n", FormatINR(fin.TotalLiability))
	fmt.Fprintf(&b, "| Paid | %s |\n", FormatINR(fin.Paid))
	fmt.Fprintf(&b, "| Pending | %s |\n", FormatINR(fin.Pending))
	fmt.Fprintf(&b, "| Overdue | %s |\n\n", FormatINR(fin.Overdue))

	fmt.Fprintf(&b, "## Departments\n\n")
	fmt.Fprintf(&b, "| Department | Total | Completed | Overdue | Compliant | Liability |\n|---|---|---|---|---|---|\n")
	for _, d := range depts {
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d%% | %s |\n",
			d.Department, d.Total, d.Completed, d.Overdue, d.Percent, FormatINR(d.Liability))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Projected Cash Outflow\n\n")
	fmt.Fprintf(&b, "| Month | Amount |\n|---|---|\n")
	for _, m := range CashFlow(tasks, now) {
		fmt.Fprintf(&b, "| %s %d | %s |\n", m.Label, m.Year, FormatINR(m.Amount))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Full Task List\n\n")
	fmt.Fprintf(&b, "| Task | Due Date | Status | Assigned To |\n|---|---|---|---|\n")
	names := nameIndex(users)
	for _, t := range tasks {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			t.Name, dates.ISO(t.DueDate), t.Status, names[t.AssigneeID])
	}
	return b.String()
}

func nameIndex(users []model.User) map[string]string {
	idx := make(map[string]string, len(users))
	for _, u := range users {
		idx[u.ID] = u.Name
	}
	return idx
}

func roundPct(ratio float64) int {
	return int(ratio*100 + 0.5)
}
