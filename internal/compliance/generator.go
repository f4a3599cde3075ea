// Package compliance is the task lifecycle engine: it synthesizes the
// recurring obligation calendar, derives lifecycle status against the current
// date, and scans the task set for reminder and overdue notifications.
package compliance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
)

// assigneeRole names which of the two directory roles owns a generated task:
// the preparer handles filings and reconciliations, the approver handles
// payments, remittances, and high-value annual filings.
type assigneeRole int

const (
	rolePreparer assigneeRole = iota
	roleApprover
)

// monthlySlate is the fixed set of obligations produced for every processed
// month. Day offsets are anchored either to the processed month itself or to
// the month after it; the December to January rollover is handled by
// dates.AddMonths.
var monthlySlate = []struct {
	name        string
	department  model.Department
	description string
	day         int
	nextMonth   bool
	assign      assigneeRole
	amount      func(m int) float64
}{
	{
		name:        "GSTR-1 Filing",
		department:  model.DepartmentFinance,
		description: "File GSTR-1 for outward supplies.",
		day:         13,
		nextMonth:   true,
		assign:      rolePreparer,
		amount:      func(int) float64 { return 0 },
	},
	{
		name:        "GST Payment Remittance",
		department:  model.DepartmentFinance,
		description: "Remit GST payment to government.",
		day:         20,
		nextMonth:   true,
		assign:      roleApprover,
		amount:      func(m int) float64 { return 45000 + float64(m)*2000 },
	},
	{
		name:        "TDS Payment",
		department:  model.DepartmentFinance,
		description: "Deposit Tax Deducted at Source.",
		day:         7,
		nextMonth:   true,
		assign:      rolePreparer,
		amount:      func(int) float64 { return 12500 },
	},
	{
		name:        "PF Payment",
		department:  model.DepartmentHR,
		description: "Provident Fund monthly payment.",
		day:         15,
		nextMonth:   false,
		// HR has no dedicated directory entry, so payments land on the approver.
		assign: roleApprover,
		amount: func(int) float64 { return 85000 },
	},
	{
		name:        "Bank Reconciliation (BRS)",
		department:  model.DepartmentFinance,
		description: "Complete bank reconciliation for all accounts.",
		day:         10,
		nextMonth:   true,
		assign:      rolePreparer,
		amount:      func(int) float64 { return 0 },
	},
}

// monthlyWindow is how many months of the monthly slate Generate produces,
// starting with the current month.
const monthlyWindow = 3

// Generate synthesizes the initial obligation calendar for the session: a
// rolling window of monthly tasks plus the calendar-year quarterly and annual
// obligations. Every task starts Pending and is assigned to a present
// directory user; absent roles fall back so no task is ever left unassigned.
func Generate(users []model.User, now time.Time) []model.Task {
	if len(users) == 0 {
		return nil
	}
	approver, preparer := resolveAssignees(users)

	tasks := make([]model.Task, 0, monthlyWindow*len(monthlySlate)+6)
	year, month := now.Year(), now.Month()

	for m := 0; m < monthlyWindow; m++ {
		ty, tm := dates.AddMonths(year, month, m)
		ny, nm := dates.AddMonths(ty, tm, 1)
		period := dates.MonthLabel(ty, tm)

		for _, slate := range monthlySlate {
			dueYear, dueMonth := ty, tm
			if slate.nextMonth {
				dueYear, dueMonth = ny, nm
			}
			assignee := preparer
			if slate.assign == roleApprover {
				assignee = approver
			}
			tasks = append(tasks, model.Task{
				ID:          uuid.New().String(),
				Name:        slate.name,
				Department:  slate.department,
				Category:    model.CategoryMonthly,
				DueDate:     dates.DueOn(dueYear, dueMonth, slate.day),
				Period:      period,
				Description: slate.description,
				Amount:      slate.amount(m),
				AssigneeID:  assignee.ID,
				Status:      model.StatusPending,
			})
		}
	}

	tasks = append(tasks, quarterlyTasks(year, approver)...)
	tasks = append(tasks, annualTasks(year, approver)...)
	return tasks
}

// quarterlyTasks returns the four TDS return filings anchored to the current
// calendar year; the last two quarters spill into the next year.
func quarterlyTasks(year int, approver model.User) []model.Task {
	quarters := []struct {
		period string
		due    time.Time
	}{
		{"Q1 (Apr-Jun)", dates.DueOn(year, time.July, 31)},
		{"Q2 (Jul-Sep)", dates.DueOn(year, time.October, 31)},
		{"Q3 (Oct-Dec)", dates.DueOn(year+1, time.January, 31)},
		{"Q4 (Jan-Mar)", dates.DueOn(year+1, time.May, 31)},
	}

	out := make([]model.Task, 0, len(quarters))
	for _, q := range quarters {
		out = append(out, model.Task{
			ID:          uuid.New().String(),
			Name:        "TDS Return Filing",
			Department:  model.DepartmentFinance,
			Category:    model.CategoryQuarterly,
			DueDate:     q.due,
			Period:      q.period,
			Description: "Quarterly TDS Return filing (24Q/26Q).",
			AssigneeID:  approver.ID,
			Status:      model.StatusPending,
		})
	}
	return out
}

func annualTasks(year int, approver model.User) []model.Task {
	fy := fmt.Sprintf("FY %d-%d", year-1, year)
	return []model.Task{
		{
			ID:          uuid.New().String(),
			Name:        "GSTR-9 Annual Return",
			Department:  model.DepartmentFinance,
			Category:    model.CategoryAnnual,
			DueDate:     dates.DueOn(year, time.December, 31),
			Period:      fy,
			Description: "Annual GST Return.",
			AssigneeID:  approver.ID,
			Status:      model.StatusPending,
		},
		{
			ID:          uuid.New().String(),
			Name:        "Income Tax Return (ITR)",
			Department:  model.DepartmentFinance,
			Category:    model.CategoryAnnual,
			DueDate:     dates.DueOn(year, time.September, 30),
			Period:      fy,
			Description: "Corporate Income Tax Return Filing.",
			Amount:      150000,
			AssigneeID:  approver.ID,
			Status:      model.StatusPending,
		},
	}
}

// resolveAssignees picks the approver (first Admin-role user) and preparer
// (first User-role user) from the directory. When a role is absent, the
// approver falls back to the first entry and the preparer to the second,
// then the first, so generation never leaves a task unassigned.
func resolveAssignees(users []model.User) (approver, preparer model.User) {
	approver = users[0]
	for _, u := range users {
		if u.Role == model.RoleAdmin {
			approver = u
			break
		}
	}

	preparer = model.User{}
	for _, u := range users {
		if u.Role == model.RoleUser {
			preparer = u
			break
		}
	}
	if preparer.ID == "" {
		if len(users) > 1 {
			preparer = users[1]
		} else {
			preparer = users[0]
		}
	}
	return approver, preparer
}
