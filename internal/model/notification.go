package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidNotificationType = errors.New("model: invalid notification type")

type NotificationType string

const (
	NotificationReminder   NotificationType = "Reminder"
	NotificationOverdue    NotificationType = "Overdue"
	NotificationCompleted  NotificationType = "Completed"
	NotificationAssignment NotificationType = "Assignment"
)

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationReminder, NotificationOverdue, NotificationCompleted, NotificationAssignment:
		return true
	default:
		return false
	}
}

// Notification is an immutable event record surfaced to a user. TaskName is
// denormalized so the record stays readable after its task is deleted. Only
// the Read flag ever changes, and only from false to true.
type Notification struct {
	ID        string
	UserID    string
	TaskID    string
	TaskName  string
	Message   string
	CreatedAt time.Time
	Read      bool
	Type      NotificationType
}

func (n Notification) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return errors.New("model: notification id is required")
	}
	if strings.TrimSpace(n.UserID) == "" {
		return errors.New("model: notification user_id is required")
	}
	if strings.TrimSpace(n.Message) == "" {
		return errors.New("model: notification message is required")
	}
	if n.CreatedAt.IsZero() {
		return errors.New("model: notification created_at is required")
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidNotificationType, n.Type)
	}
	return nil
}
