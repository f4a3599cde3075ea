// Package session holds the in-memory application state for one dashboard
// run: the read-only user directory, the task collection, the notification
// feed, and the authenticated user. All state is rebuilt from the generator
// on construction; nothing survives the process.
//
// Mutations follow copy-on-write: each command builds a replacement
// collection rather than editing shared slices in place, so a reader holding
// a snapshot never observes a half-applied change. Operations on unknown ids
// are silent no-ops; precondition failures come back as error values with a
// human-readable reason for the UI to show inline.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/complymate/complymate/internal/compliance"
	"github.com/complymate/complymate/internal/model"
)

var (
	ErrNotAuthenticated  = errors.New("session: sign in before completing tasks")
	ErrUnknownUser       = errors.New("session: unknown user")
	ErrPasswordRequired  = errors.New("session: password is required for Admin")
	ErrInvalidCredential = errors.New("session: invalid password")
)

type Session struct {
	users         []model.User
	tasks         []model.Task
	notifications []model.Notification
	current       *model.User
	now           func() time.Time
}

// New builds a session over the given directory: the generator synthesizes
// the obligation calendar, statuses are derived once against the current
// date, and an initial notification scan seeds the feed.
func New(users []model.User) *Session {
	return NewWithClock(users, time.Now)
}

// NewWithClock is New with an injectable clock for tests.
func NewWithClock(users []model.User, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{
		users: append([]model.User(nil), users...),
		now:   now,
	}
	t := now().UTC()
	s.tasks = compliance.DeriveStatuses(compliance.Generate(s.users, t), t)
	s.notifications = compliance.Scan(s.tasks, t)
	return s
}

// Users returns the directory. The slice is a copy; the directory itself is
// never mutated through the session.
func (s *Session) Users() []model.User {
	return append([]model.User(nil), s.users...)
}

func (s *Session) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

func (s *Session) Notifications() []model.Notification {
	return append([]model.Notification(nil), s.notifications...)
}

// CurrentUser returns the authenticated user, if any.
func (s *Session) CurrentUser() (model.User, bool) {
	if s.current == nil {
		return model.User{}, false
	}
	return *s.current, true
}

// UserByID resolves a directory reference. Dangling task references are
// tolerated; callers render an unresolved assignee as unknown.
func (s *Session) UserByID(id string) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Login authenticates a directory user. Admin-role entries must present the
// configured password; User-role entries sign in without one. Failures are
// rejections with a reason, never faults.
func (s *Session) Login(userID, password string) error {
	user, ok := s.UserByID(userID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUser, userID)
	}
	if user.Role == model.RoleAdmin {
		if strings.TrimSpace(password) == "" {
			return ErrPasswordRequired
		}
		if password != user.Password {
			return ErrInvalidCredential
		}
	}
	s.current = &user
	return nil
}

func (s *Session) Logout() {
	s.current = nil
}

// AddTask appends a task to the collection and notifies the assignee. A
// fresh id is always assigned; the caller's input shape is otherwise
// trusted, garbage in propagates.
func (s *Session) AddTask(t model.Task) model.Task {
	t.ID = uuid.New().String()
	s.tasks = append(s.Tasks(), t)
	s.prependNotification(compliance.NewAssignment(t, s.now().UTC()))
	return t
}

// UpdateTask replaces the stored task with the same id wholesale. When the
// assignee changed, the new assignee gets a reassignment notification.
// Unknown ids are ignored.
func (s *Session) UpdateTask(updated model.Task) {
	next := s.Tasks()
	for i, t := range next {
		if t.ID != updated.ID {
			continue
		}
		if t.AssigneeID != updated.AssigneeID {
			s.prependNotification(compliance.NewReassignment(updated, s.now().UTC()))
		}
		next[i] = updated
		s.tasks = next
		return
	}
}

// DeleteTask removes the task with the given id. Notifications referencing
// it are kept; they carry a denormalized task name for exactly this reason.
func (s *Session) DeleteTask(taskID string) {
	next := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != taskID {
			next = append(next, t)
		}
	}
	s.tasks = next
}

// CompleteTask marks a task Completed on behalf of the authenticated user.
// Completion is terminal: completing an already-Completed task is a no-op.
// Without an authenticated user the operation is rejected.
func (s *Session) CompleteTask(taskID string) error {
	if s.current == nil {
		return ErrNotAuthenticated
	}
	next := s.Tasks()
	for i, t := range next {
		if t.ID != taskID {
			continue
		}
		if t.Status == model.StatusCompleted {
			return nil
		}
		done := s.now().UTC()
		next[i].Status = model.StatusCompleted
		next[i].CompletedBy = s.current.ID
		next[i].CompletedAt = &done
		s.tasks = next
		return nil
	}
	return nil
}

// MarkNotificationRead flips the read flag. Idempotent; the flag never goes
// back to unread.
func (s *Session) MarkNotificationRead(notificationID string) {
	next := s.Notifications()
	for i, n := range next {
		if n.ID == notificationID {
			next[i].Read = true
			s.notifications = next
			return
		}
	}
}

// AttachFile records a single-slot attachment on a task, replacing any prior
// one. The retrieval location is a process-local handle valid only for this
// session.
func (s *Session) AttachFile(taskID, fileName, mediaType string) {
	next := s.Tasks()
	for i, t := range next {
		if t.ID != taskID {
			continue
		}
		next[i].Attachment = &model.Attachment{
			Name:       fileName,
			Location:   fmt.Sprintf("mem://attachments/%s/%s", uuid.New().String(), fileName),
			MediaType:  mediaType,
			UploadedAt: s.now().UTC(),
		}
		s.tasks = next
		return
	}
}

// UnreadCount reports how many notifications targeting the user are unread.
func (s *Session) UnreadCount(userID string) int {
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}

func (s *Session) prependNotification(n model.Notification) {
	next := make([]model.Notification, 0, len(s.notifications)+1)
	next = append(next, n)
	next = append(next, s.notifications...)
	s.notifications = next
}
