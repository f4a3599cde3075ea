package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidStatus     = errors.New("model: invalid task status")
	ErrInvalidCategory   = errors.New("model: invalid task category")
	ErrInvalidDepartment = errors.New("model: invalid department")
	ErrNegativeAmount    = errors.New("model: task amount must not be negative")
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
	StatusOverdue   Status = "Overdue"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusOverdue:
		return true
	default:
		return false
	}
}

type Category string

const (
	CategoryMonthly    Category = "Monthly"
	CategoryQuarterly  Category = "Quarterly"
	CategoryHalfYearly Category = "Half-Yearly"
	CategoryAnnual     Category = "Annual"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryMonthly, CategoryQuarterly, CategoryHalfYearly, CategoryAnnual:
		return true
	default:
		return false
	}
}

type Department string

const (
	DepartmentFinance Department = "Finance"
	DepartmentHR      Department = "HR"
)

func (d Department) IsValid() bool {
	switch d {
	case DepartmentFinance, DepartmentHR:
		return true
	default:
		return false
	}
}

// Attachment is the single file slot on a task. Location is a process-local
// handle and does not survive a session restart.
type Attachment struct {
	Name       string
	Location   string
	MediaType  string
	UploadedAt time.Time
}

// Task is a compliance obligation: a filing, payment, or reconciliation owed
// for a specific period. Amount zero means a pure filing with no financial
// liability attached.
type Task struct {
	ID          string
	Name        string
	Department  Department
	Category    Category
	DueDate     time.Time // date only, midnight UTC
	Period      string
	Description string
	Amount      float64
	AssigneeID  string
	Status      Status
	CompletedBy string
	CompletedAt *time.Time
	Attachment  *Attachment
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if !t.Department.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidDepartment, t.Department)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, t.Category)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if t.DueDate.IsZero() {
		return errors.New("model: task due date is required")
	}
	if t.Amount < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeAmount, t.Amount)
	}
	if t.Status == StatusCompleted && (t.CompletedAt == nil || strings.TrimSpace(t.CompletedBy) == "") {
		return errors.New("model: completion metadata is required when task status is Completed")
	}
	if t.Status != StatusCompleted && t.CompletedAt != nil {
		return errors.New("model: completed_at must be nil when task status is not Completed")
	}
	return nil
}
