package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/complymate/complymate/internal/dates"
	"github.com/complymate/complymate/internal/model"
)

// CSVHeaders are the columns of the task export, in order.
var CSVHeaders = []string{"Task Name", "Department", "Category", "Due Date", "Status", "Assigned To"}

// WriteCSV streams the task collection as a comma-separated table. The
// assignee column carries the resolved display name; a dangling assignee
// reference renders as empty.
func WriteCSV(w io.Writer, tasks []model.Task, users []model.User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeaders); err != nil {
		return fmt.Errorf("report: write csv header: %w", err)
	}
	names := nameIndex(users)
	for _, t := range tasks {
		record := []string{
			t.Name,
			string(t.Department),
			string(t.Category),
			dates.ISO(t.DueDate),
			string(t.Status),
			names[t.AssigneeID],
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("report: write csv row for %s: %w", t.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: flush csv: %w", err)
	}
	return nil
}

// ExportFileName names a dated export, e.g. "compliance_report_2024-07-10.csv".
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("compliance_report_%s.csv", now.Format(dates.ISOLayout))
}
