package update

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/complymate/complymate/internal/model"
	"github.com/complymate/complymate/internal/session"
)

func fixedClock() time.Time {
	return time.Date(2024, time.July, 10, 11, 0, 0, 0, time.UTC)
}

func testUsers() []model.User {
	return []model.User{
		{ID: "u1", Name: "System Admin", Email: "admin@comply.com", Role: model.RoleAdmin, Department: model.DepartmentFinance, Password: "admin"},
		{ID: "u2", Name: "Finance Staff", Email: "staff@comply.com", Role: model.RoleUser, Department: model.DepartmentFinance},
	}
}

func testModel(t *testing.T) Model {
	t.Helper()
	sess := session.NewWithClock(testUsers(), fixedClock)
	return NewModelWithConfig(sess, DefaultRuntimeConfig(), fixedClock)
}

func loggedInModel(t *testing.T) Model {
	t.Helper()
	m := testModel(t)
	if err := m.Session.Login("u2", ""); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	m.CurrentView = ViewDashboard
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestNewModelDefaults(t *testing.T) {
	m := testModel(t)
	if m.CurrentView != ViewLogin {
		t.Fatalf("expected default view %q, got %q", ViewLogin, m.CurrentView)
	}
	if m.Keys.Quit != "q" {
		t.Fatalf("expected quit key q, got %q", m.Keys.Quit)
	}
	if m.Calendar.Month != time.July || m.Calendar.Year != 2024 {
		t.Fatalf("calendar anchored to %v %d", m.Calendar.Month, m.Calendar.Year)
	}
}

func TestLoginUserRoleNeedsNoPassword(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(keyRunes("j"))
	next := updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)

	if next.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard after login, got %q", next.CurrentView)
	}
	user, ok := next.Session.CurrentUser()
	if !ok || user.ID != "u2" {
		t.Fatalf("current user = %+v, ok = %v", user, ok)
	}
}

func TestLoginAdminPasswordFlow(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(keyEnter())
	next := updated.(Model)
	if !next.Login.PasswordMode {
		t.Fatalf("expected password prompt for Admin")
	}

	updated, _ = next.Update(keyRunes("wrong"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)
	if next.CurrentView != ViewLogin {
		t.Fatalf("wrong password should stay on login, got %q", next.CurrentView)
	}
	if next.Login.ErrorText == "" || !next.Status.IsError {
		t.Fatalf("expected inline rejection, got %+v", next.Status)
	}

	next.passwordInput.SetValue("")
	updated, _ = next.Update(keyRunes("admin"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)
	if next.CurrentView != ViewDashboard {
		t.Fatalf("expected dashboard after admin login, got %q", next.CurrentView)
	}
}

func TestUpdateKeySwitchesView(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("3"))
	next := updated.(Model)
	if next.CurrentView != ViewCalendar {
		t.Fatalf("expected calendar view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(keyRunes("4"))
	next = updated.(Model)
	if next.CurrentView != ViewNotifications {
		t.Fatalf("expected notifications view, got %q", next.CurrentView)
	}
}

func TestUpdateSwitchViewMsg(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewReports})
	next := updated.(Model)
	if next.CurrentView != ViewReports {
		t.Fatalf("expected reports view, got %q", next.CurrentView)
	}

	updated, _ = next.Update(SwitchViewMsg{View: View("Unknown")})
	next = updated.(Model)
	if next.CurrentView != ViewReports {
		t.Fatalf("expected view unchanged for unknown view, got %q", next.CurrentView)
	}
}

func TestLogoutKeyReturnsToLogin(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("L"))
	next := updated.(Model)
	if next.CurrentView != ViewLogin {
		t.Fatalf("expected login view after logout, got %q", next.CurrentView)
	}
	if _, ok := next.Session.CurrentUser(); ok {
		t.Fatalf("expected no current user after logout")
	}
}

func TestCompleteSelectedTaskKey(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)

	target := next.visibleTasks()[0]
	updated, _ = next.Update(keyRunes("c"))
	next = updated.(Model)

	for _, task := range next.Session.Tasks() {
		if task.ID == target.ID {
			if task.Status != model.StatusCompleted {
				t.Fatalf("status = %q, want Completed", task.Status)
			}
			if task.CompletedBy != "u2" {
				t.Fatalf("CompletedBy = %q, want u2", task.CompletedBy)
			}
			return
		}
	}
	t.Fatalf("target task %s not found", target.ID)
}

func TestDeleteSelectedTaskKey(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("2"))
	next := updated.(Model)

	before := len(next.Session.Tasks())
	target := next.visibleTasks()[0]
	updated, _ = next.Update(keyRunes("d"))
	next = updated.(Model)

	if got := len(next.Session.Tasks()); got != before-1 {
		t.Fatalf("task count = %d, want %d", got, before-1)
	}
	for _, task := range next.Session.Tasks() {
		if task.ID == target.ID {
			t.Fatalf("deleted task still present")
		}
	}
}

func TestPaletteShowFilter(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	if !next.Palette.Active {
		t.Fatalf("expected palette active")
	}

	updated, _ = next.Update(keyRunes("show tasks status:Pending"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)

	if next.Palette.Active {
		t.Fatalf("palette should close after execute")
	}
	if next.CurrentView != ViewTasks {
		t.Fatalf("expected tasks view, got %q", next.CurrentView)
	}
	if next.Tasks.Filter.Status != "Pending" {
		t.Fatalf("filter = %+v", next.Tasks.Filter)
	}
	for _, task := range next.visibleTasks() {
		if task.Status != model.StatusPending {
			t.Fatalf("filtered view leaked status %q", task.Status)
		}
	}
}

func TestPaletteAssignCommand(t *testing.T) {
	m := loggedInModel(t)
	target := m.Session.Tasks()[0]

	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("assign " + target.ID + " System Admin"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)

	if next.Status.IsError {
		t.Fatalf("assign failed: %s", next.Status.Text)
	}
	for _, task := range next.Session.Tasks() {
		if task.ID == target.ID && task.AssigneeID != "u1" {
			t.Fatalf("AssigneeID = %q, want u1", task.AssigneeID)
		}
	}
}

func TestPaletteUnknownCommandSetsErrorStatus(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)

	if !next.Status.IsError {
		t.Fatalf("expected error status, got %+v", next.Status)
	}
}

func TestCalendarMonthPaging(t *testing.T) {
	m := loggedInModel(t)
	m.CurrentView = ViewCalendar

	updated, _ := m.Update(keyRunes("l"))
	next := updated.(Model)
	if next.Calendar.Month != time.August {
		t.Fatalf("month = %v, want August", next.Calendar.Month)
	}

	for i := 0; i < 8; i++ {
		updated, _ = next.Update(keyRunes("h"))
		next = updated.(Model)
	}
	if next.Calendar.Year != 2023 || next.Calendar.Month != time.December {
		t.Fatalf("expected December 2023 after paging back, got %v %d", next.Calendar.Month, next.Calendar.Year)
	}
}

func TestNotificationsMarkReadKey(t *testing.T) {
	m := loggedInModel(t)
	m.Session.AddTask(model.Task{
		Name:       "ESI Payment",
		Department: model.DepartmentHR,
		Category:   model.CategoryMonthly,
		DueDate:    time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC),
		AssigneeID: "u2",
		Status:     model.StatusPending,
	})
	m.CurrentView = ViewNotifications
	m.syncBubbleData()

	feed := m.visibleNotifications()
	if len(feed) == 0 {
		t.Fatalf("expected an assignment notification for u2")
	}
	target := feed[0]
	if target.Read {
		t.Fatalf("expected unread notification first")
	}

	updated, _ := m.Update(keyEnter())
	next := updated.(Model)
	for _, n := range next.Session.Notifications() {
		if n.ID == target.ID && !n.Read {
			t.Fatalf("notification %s still unread", n.ID)
		}
	}
}

func TestDashboardProgressBarTracksCompletionRate(t *testing.T) {
	m := loggedInModel(t)
	for _, task := range m.Session.Tasks() {
		if err := m.Session.CompleteTask(task.ID); err != nil {
			t.Fatalf("CompleteTask(%s): %v", task.ID, err)
		}
	}
	m.syncBubbleData()

	out := m.renderDashboardView()
	if full := m.rateProgress.ViewAs(1.0); !strings.Contains(out, full) {
		t.Fatalf("expected a full progress bar at 100%% completion:\n%s", out)
	}
	if empty := m.rateProgress.ViewAs(0); strings.Contains(out, empty) {
		t.Fatalf("progress bar still empty at 100%% completion:\n%s", out)
	}
}

func TestPaletteCommandRaisesToast(t *testing.T) {
	m := loggedInModel(t)
	updated, _ := m.Update(keyRunes("/"))
	next := updated.(Model)
	updated, _ = next.Update(keyRunes("show reports"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)

	if len(next.Toasts) == 0 {
		t.Fatalf("expected a toast after command execution")
	}
	last := next.Toasts[len(next.Toasts)-1]
	if last.Level != "info" || last.Body != "showing reports" {
		t.Fatalf("toast = %+v", last)
	}
	if out := next.View(); !strings.Contains(out, "notification: [INFO] showing reports") {
		t.Fatalf("toast missing from rendered view:\n%s", out)
	}

	updated, _ = next.Update(keyRunes("/"))
	next = updated.(Model)
	updated, _ = next.Update(keyRunes("frobnicate"))
	next = updated.(Model)
	updated, _ = next.Update(keyEnter())
	next = updated.(Model)
	if last := next.Toasts[len(next.Toasts)-1]; last.Level != "error" {
		t.Fatalf("expected error toast, got %+v", last)
	}
}

func TestAdminPasswordPromptReturnsFocusCmd(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.Update(keyEnter())
	next := updated.(Model)
	if !next.Login.PasswordMode {
		t.Fatalf("expected password prompt for Admin")
	}
	if cmd == nil {
		t.Fatalf("expected cursor blink command from the password prompt")
	}
}

func TestViewContainsHeaderAndFooter(t *testing.T) {
	m := loggedInModel(t)
	out := m.View()
	if !strings.Contains(out, "complymate | view: Dashboard") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "Finance Staff (User)") {
		t.Fatalf("signed-in user missing from header:\n%s", out)
	}
}

func TestFormCreateAddsTask(t *testing.T) {
	m := loggedInModel(t)
	before := len(m.Session.Tasks())

	saved := TaskSavedMsg{Task: model.Task{
		Name:       "Board Resolution Filing",
		Department: model.DepartmentFinance,
		Category:   model.CategoryAnnual,
		DueDate:    time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		AssigneeID: "u2",
		Status:     model.StatusPending,
	}}
	m.Form = NewTaskForm(m.Session.Users(), fixedClock)
	updated, _ := m.Update(saved)
	next := updated.(Model)

	if next.Form != nil {
		t.Fatalf("form should close after save")
	}
	if got := len(next.Session.Tasks()); got != before+1 {
		t.Fatalf("task count = %d, want %d", got, before+1)
	}
}
