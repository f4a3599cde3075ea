package views

import (
	"strings"
	"testing"
)

func TestRenderCalendarPanelGrid(t *testing.T) {
	out := RenderCalendarPanel(CalendarPanelData{
		MonthLabel:   "July 2024",
		FirstWeekday: 1, // July 1 2024 is a Monday
		DaysInMonth:  31,
		DueCounts:    map[int]int{15: 2, 20: 1},
		Today:        10,
		SelectedDay:  15,
	})
	if !strings.Contains(out, "month: July 2024") {
		t.Errorf("missing month label:\n%s", out)
	}
	if !strings.Contains(out, "[15]") {
		t.Errorf("selected day not bracketed:\n%s", out)
	}
	if !strings.Contains(out, "20*") {
		t.Errorf("due day not starred:\n%s", out)
	}
	if !strings.Contains(out, "10.") {
		t.Errorf("today not dotted:\n%s", out)
	}
	// Monday start leaves one leading blank cell before day 1.
	lines := strings.Split(out, "\n")
	var firstWeek string
	for i, line := range lines {
		if strings.HasPrefix(line, " Su") && i+1 < len(lines) {
			firstWeek = lines[i+1]
			break
		}
	}
	if !strings.HasPrefix(firstWeek, "    ") {
		t.Errorf("first week = %q, want leading blank cell", firstWeek)
	}
}

func TestRenderCalendarPanelDayTasks(t *testing.T) {
	out := RenderCalendarPanel(CalendarPanelData{
		MonthLabel:   "July 2024",
		FirstWeekday: 1,
		DaysInMonth:  31,
		SelectedDay:  20,
		DayTasks: []TaskLineData{
			{Name: "GST Remittance", Status: "Pending", Amount: "₹45,000"},
		},
	})
	if !strings.Contains(out, "day 20:") {
		t.Errorf("missing day section:\n%s", out)
	}
	if !strings.Contains(out, "[PENDING] GST Remittance ₹45,000") {
		t.Errorf("missing task line:\n%s", out)
	}
}

func TestRenderLoginPanel(t *testing.T) {
	out := RenderLoginPanel(LoginPanelData{
		Users: []LoginUserData{
			{ID: "u1", Name: "System Admin", Role: "Admin", Department: "Finance"},
			{ID: "u2", Name: "Finance Staff", Role: "User", Department: "Finance"},
		},
		SelectedID:    "u1",
		NeedsPassword: true,
		PasswordView:  "> ****",
		ErrorText:     "invalid credential",
	})
	if !strings.Contains(out, "> System Admin (Admin, Finance)") {
		t.Errorf("selected user not marked:\n%s", out)
	}
	if !strings.Contains(out, "password:") {
		t.Errorf("password prompt missing:\n%s", out)
	}
	if !strings.Contains(out, "error: invalid credential") {
		t.Errorf("error line missing:\n%s", out)
	}
}

func TestRenderNotificationsPanelMarkers(t *testing.T) {
	out := RenderNotificationsPanel(NotificationsPanelData{
		Unread: 1,
		Items: []NotificationLineData{
			{ID: "n1", Message: "Alert: GST Remittance is due today!", Type: "Reminder", Created: "2024-07-20"},
			{ID: "n2", Message: "New Assignment: PF Payment", Type: "Assignment", Created: "2024-07-10", Read: true},
		},
	})
	if !strings.Contains(out, "* [REMINDER] Alert: GST Remittance is due today! (2024-07-20)") {
		t.Errorf("unread marker missing:\n%s", out)
	}
	if !strings.Contains(out, "  [ASSIGNMENT] New Assignment: PF Payment") {
		t.Errorf("read marker wrong:\n%s", out)
	}
}
