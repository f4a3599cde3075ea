package compliance

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
)

// Scan produces the reminder and overdue notifications for a task set as of
// now. Thresholds are a sparse fixed-point set: exactly 7 days out, exactly
// 3, due today, and anything already past due. Day differences of 1, 2, 4,
// 5, and 6 deliberately produce nothing. Completed tasks are skipped.
//
// Each scan emits at most one notification per qualifying task and does not
// deduplicate against earlier scans; callers that rescan append duplicates.
func Scan(tasks []model.Task, now time.Time) []model.Notification {
	today := dates.Day(now)
	out := make([]model.Notification, 0)

	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			continue
		}

		diff := dates.DaysBetween(today, t.DueDate)
		var (
			message string
			kind    model.NotificationType
		)
		switch {
		case diff == 7 || diff == 3:
			message = fmt.Sprintf("Reminder: %s is due in %d days.", t.Name, diff)
			kind = model.NotificationReminder
		case diff == 0:
			message = fmt.Sprintf("Alert: %s is due today!", t.Name)
			kind = model.NotificationReminder
		case diff < 0:
			message = fmt.Sprintf("Overdue: %s was due on %s.", t.Name, dates.ISO(t.DueDate))
			kind = model.NotificationOverdue
		default:
			continue
		}

		out = append(out, model.Notification{
			ID:        uuid.New().String(),
			UserID:    t.AssigneeID,
			TaskID:    t.ID,
			TaskName:  t.Name,
			Message:   message,
			CreatedAt: now,
			Type:      kind,
		})
	}
	return out
}

// NewAssignment builds the notification emitted when a task is created and
// handed to its assignee.
func NewAssignment(t model.Task, now time.Time) model.Notification {
	return model.Notification{
		ID:        uuid.New().String(),
		UserID:    t.AssigneeID,
		TaskID:    t.ID,
		TaskName:  t.Name,
		Message:   fmt.Sprintf("New Assignment: %s", t.Name),
		CreatedAt: now,
		Type:      model.NotificationAssignment,
	}
}

// NewReassignment builds the notification targeted at the new assignee when
// a task changes hands.
func NewReassignment(t model.Task, now time.Time) model.Notification {
	return model.Notification{
		ID:        uuid.New().String(),
		UserID:    t.AssigneeID,
		TaskID:    t.ID,
		TaskName:  t.Name,
		Message:   fmt.Sprintf("Task reassigned to you: %s", t.Name),
		CreatedAt: now,
		Type:      model.NotificationAssignment,
	}
}
