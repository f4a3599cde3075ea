package compliance

import (
	"time"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
)

// DeriveStatuses returns a new task set where every non-Completed task whose
// due date is strictly before today is marked Overdue. The comparison is
// date-only. Completed tasks and tasks due today or later are unchanged, and
// the pass is idempotent. It runs once at session load; status is otherwise
// only changed by explicit completion.
func DeriveStatuses(tasks []model.Task, now time.Time) []model.Task {
	today := dates.Day(now)
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		if t.Status != model.StatusCompleted && dates.Day(t.DueDate).Before(today) {
			t.Status = model.StatusOverdue
		}
		out[i] = t
	}
	return out
}
