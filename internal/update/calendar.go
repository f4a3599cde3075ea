package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/report"
	"github.com/complymate/complymate/internal/views"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.Calendar.Year, m.Calendar.Month = dates.AddMonths(m.Calendar.Year, m.Calendar.Month, -1)
		m.clampSelectedDay()
	case "l", "right":
		m.Calendar.Year, m.Calendar.Month = dates.AddMonths(m.Calendar.Year, m.Calendar.Month, 1)
		m.clampSelectedDay()
	case "j", "down":
		if m.Calendar.SelectedDay < dates.DaysInMonth(m.Calendar.Year, m.Calendar.Month) {
			m.Calendar.SelectedDay++
		}
	case "k", "up":
		if m.Calendar.SelectedDay > 1 {
			m.Calendar.SelectedDay--
		}
	case "t":
		today := dates.Day(m.Clock().UTC())
		m.Calendar.Year = today.Year()
		m.Calendar.Month = today.Month()
		m.Calendar.SelectedDay = today.Day()
	case "enter":
		m.CurrentView = ViewTasks
		m.syncBubbleData()
	}
	return m
}

func (m *Model) clampSelectedDay() {
	if max := dates.DaysInMonth(m.Calendar.Year, m.Calendar.Month); m.Calendar.SelectedDay > max {
		m.Calendar.SelectedDay = max
	}
	if m.Calendar.SelectedDay < 1 {
		m.Calendar.SelectedDay = 1
	}
}

func (m Model) renderCalendarView() string {
	first := dates.DueOn(m.Calendar.Year, m.Calendar.Month, 1)
	counts := make(map[int]int)
	dayTasks := make([]views.TaskLineData, 0)
	for _, t := range m.Session.Tasks() {
		if t.DueDate.Year() != m.Calendar.Year || t.DueDate.Month() != m.Calendar.Month {
			continue
		}
		counts[t.DueDate.Day()]++
		if t.DueDate.Day() == m.Calendar.SelectedDay {
			line := views.TaskLineData{
				ID:     t.ID,
				Name:   t.Name,
				Due:    dates.ISO(t.DueDate),
				Status: string(t.Status),
			}
			if t.Amount > 0 {
				line.Amount = report.FormatINR(t.Amount)
			}
			dayTasks = append(dayTasks, line)
		}
	}

	today := dates.Day(m.Clock().UTC())
	todayDay := 0
	if today.Year() == m.Calendar.Year && today.Month() == m.Calendar.Month {
		todayDay = today.Day()
	}

	return views.RenderCalendarPanel(views.CalendarPanelData{
		MonthLabel:   dates.MonthLabel(m.Calendar.Year, m.Calendar.Month),
		FirstWeekday: int(first.Weekday()),
		DaysInMonth:  dates.DaysInMonth(m.Calendar.Year, m.Calendar.Month),
		DueCounts:    counts,
		Today:        todayDay,
		SelectedDay:  m.Calendar.SelectedDay,
		DayTasks:     dayTasks,
	})
}
