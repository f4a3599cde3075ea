package session

import (
	"errors"
	"testing"
	"time"

	"github.com/complymate/complymate/internal/model"
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2024, 7, 10, 11, 0, 0, 0, time.UTC) }
}

func testDirectory() []model.User {
	return []model.User{
		{ID: "u1", Name: "System Admin", Email: "admin@comply.com", Role: model.RoleAdmin, Department: model.DepartmentFinance, Password: "admin"},
		{ID: "u2", Name: "Finance Staff", Email: "staff@comply.com", Role: model.RoleUser, Department: model.DepartmentFinance},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewWithClock(testDirectory(), fixedClock())
}

func pendingTask() model.Task {
	return model.Task{
		Name:       "ESI Payment",
		Department: model.DepartmentHR,
		Category:   model.CategoryMonthly,
		DueDate:    time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		Period:     "July 2024",
		Amount:     18000,
		AssigneeID: "u2",
		Status:     model.StatusPending,
	}
}

func TestNewSeedsTasksAndNotifications(t *testing.T) {
	s := newTestSession(t)
	if got := len(s.Tasks()); got != 21 {
		t.Fatalf("expected 21 generated tasks, got %d", got)
	}
	for _, task := range s.Tasks() {
		if task.Status == model.StatusPending && task.DueDate.Before(time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("task %q past due but still Pending after load", task.Name)
		}
	}
	if _, ok := s.CurrentUser(); ok {
		t.Fatal("expected no authenticated user on a fresh session")
	}
}

func TestLoginRules(t *testing.T) {
	s := newTestSession(t)

	if err := s.Login("u1", ""); !errors.Is(err, ErrPasswordRequired) {
		t.Fatalf("expected ErrPasswordRequired, got %v", err)
	}
	if err := s.Login("u1", "wrong"); !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if err := s.Login("ghost", "x"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}

	if err := s.Login("u1", "admin"); err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if u, ok := s.CurrentUser(); !ok || u.ID != "u1" {
		t.Fatalf("expected current user u1, got %+v ok=%v", u, ok)
	}

	s.Logout()
	if _, ok := s.CurrentUser(); ok {
		t.Fatal("expected logout to clear current user")
	}

	// User-role entries need no password.
	if err := s.Login("u2", ""); err != nil {
		t.Fatalf("staff login failed: %v", err)
	}
}

func TestAddTaskEmitsAssignmentNotification(t *testing.T) {
	s := newTestSession(t)
	before := len(s.Notifications())

	created := s.AddTask(pendingTask())
	if created.ID == "" {
		t.Fatal("expected a fresh id on create")
	}

	notifs := s.Notifications()
	if len(notifs) != before+1 {
		t.Fatalf("expected exactly one new notification, got %d", len(notifs)-before)
	}
	n := notifs[0]
	if n.Type != model.NotificationAssignment || n.UserID != "u2" || n.TaskID != created.ID {
		t.Fatalf("unexpected assignment notification: %+v", n)
	}
}

func TestUpdateTaskReassignmentNotifiesNewAssignee(t *testing.T) {
	s := newTestSession(t)
	created := s.AddTask(pendingTask())
	before := len(s.Notifications())

	// Unchanged assignee: no notification.
	created.Description = "updated description"
	s.UpdateTask(created)
	if got := len(s.Notifications()); got != before {
		t.Fatalf("expected no notification for unchanged assignee, got %d new", got-before)
	}

	// Reassignment: exactly one, targeted at the new assignee.
	created.AssigneeID = "u1"
	s.UpdateTask(created)
	notifs := s.Notifications()
	if len(notifs) != before+1 {
		t.Fatalf("expected exactly one reassignment notification, got %d", len(notifs)-before)
	}
	if notifs[0].UserID != "u1" || notifs[0].Type != model.NotificationAssignment {
		t.Fatalf("unexpected reassignment notification: %+v", notifs[0])
	}

	for _, task := range s.Tasks() {
		if task.ID == created.ID && task.AssigneeID != "u1" {
			t.Fatalf("update not applied: %+v", task)
		}
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	s := newTestSession(t)
	before := s.Tasks()

	ghost := pendingTask()
	ghost.ID = "no-such-task"
	s.UpdateTask(ghost)

	if got := s.Tasks(); len(got) != len(before) {
		t.Fatalf("task count changed: %d -> %d", len(before), len(got))
	}
}

func TestDeleteTaskKeepsNotifications(t *testing.T) {
	s := newTestSession(t)
	created := s.AddTask(pendingTask())
	withTask := len(s.Tasks())

	s.DeleteTask(created.ID)
	if got := len(s.Tasks()); got != withTask-1 {
		t.Fatalf("expected %d tasks after delete, got %d", withTask-1, got)
	}

	found := false
	for _, n := range s.Notifications() {
		if n.TaskID == created.ID {
			found = true
			if n.TaskName != created.Name {
				t.Fatalf("denormalized name lost: %+v", n)
			}
		}
	}
	if !found {
		t.Fatal("expected notification referencing deleted task to survive")
	}

	// Deleting again is a silent no-op.
	s.DeleteTask(created.ID)
}

func TestCompleteTaskRequiresActorAndIsTerminal(t *testing.T) {
	s := newTestSession(t)
	created := s.AddTask(pendingTask())

	if err := s.CompleteTask(created.ID); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	if err := s.Login("u1", "admin"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := s.CompleteTask(created.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	var done model.Task
	for _, task := range s.Tasks() {
		if task.ID == created.ID {
			done = task
		}
	}
	if done.Status != model.StatusCompleted || done.CompletedBy != "u1" || done.CompletedAt == nil {
		t.Fatalf("unexpected completed task: %+v", done)
	}
	firstCompletedAt := *done.CompletedAt

	// Second completion by another actor must not rewrite the metadata.
	s.Logout()
	if err := s.Login("u2", ""); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := s.CompleteTask(created.ID); err != nil {
		t.Fatalf("repeat complete errored: %v", err)
	}
	for _, task := range s.Tasks() {
		if task.ID == created.ID {
			if task.CompletedBy != "u1" || !task.CompletedAt.Equal(firstCompletedAt) {
				t.Fatalf("terminal completion rewritten: %+v", task)
			}
		}
	}

	// Unknown id: silent no-op.
	if err := s.CompleteTask("no-such-task"); err != nil {
		t.Fatalf("unknown id should be a no-op, got %v", err)
	}
}

func TestMarkNotificationReadIsIdempotent(t *testing.T) {
	s := newTestSession(t)
	created := s.AddTask(pendingTask())
	target := s.Notifications()[0]

	if got := s.UnreadCount("u2"); got == 0 {
		t.Fatal("expected unread notifications for u2")
	}
	before := s.UnreadCount("u2")

	s.MarkNotificationRead(target.ID)
	s.MarkNotificationRead(target.ID)

	if got := s.UnreadCount("u2"); got != before-1 {
		t.Fatalf("unread count = %d, want %d", got, before-1)
	}
	for _, n := range s.Notifications() {
		if n.ID == target.ID && !n.Read {
			t.Fatal("notification not marked read")
		}
		if n.TaskID == created.ID && n.ID != target.ID && n.Read {
			t.Fatalf("unrelated notification flipped: %+v", n)
		}
	}

	// Unknown id: no-op.
	s.MarkNotificationRead("no-such-notification")
}

func TestAttachFileReplacesPriorAttachment(t *testing.T) {
	s := newTestSession(t)
	created := s.AddTask(pendingTask())

	s.AttachFile(created.ID, "challan-june.pdf", "application/pdf")
	s.AttachFile(created.ID, "challan-july.pdf", "application/pdf")

	var got model.Task
	for _, task := range s.Tasks() {
		if task.ID == created.ID {
			got = task
		}
	}
	if got.Attachment == nil {
		t.Fatal("expected attachment")
	}
	if got.Attachment.Name != "challan-july.pdf" {
		t.Fatalf("expected last write to win, got %q", got.Attachment.Name)
	}
	if got.Attachment.Location == "" || got.Attachment.UploadedAt.IsZero() {
		t.Fatalf("incomplete attachment metadata: %+v", got.Attachment)
	}

	// Unknown id: no-op.
	s.AttachFile("no-such-task", "x.pdf", "application/pdf")
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestSession(t)
	snapshot := s.Tasks()
	snapshot[0].Name = "mutated"

	if s.Tasks()[0].Name == "mutated" {
		t.Fatal("session state mutated through a snapshot")
	}
}
