package model

import (
	"time"

	"github.com/google/uuid"
)

// TaskType is the production phase of a task. Each phase carries its own
// assignment-role constraint and weekend rule (see RequiredRole and
// WeekendRestricted) instead of scattering type switches around the codebase.
type TaskType string

const (
	TypePreparation TaskType = "preparation"
	TypeFilming     TaskType = "filming"
	TypeEditing     TaskType = "editing"
)

func (t TaskType) Valid() bool {
	return t == TypePreparation || t == TypeFilming || t == TypeEditing
}

// Label is the human-readable phase name, also used as the title suffix of
// composed and auto-derived tasks: "Summer Campaign (Filming)".
func (t TaskType) Label() string {
	switch t {
	case TypePreparation:
		return "Preparation"
	case TypeFilming:
		return "Filming"
	case TypeEditing:
		return "Editing"
	}
	return string(t)
}

// RequiredRole is the role an assignee of this phase must have.
// Preparation and filming belong to the shooting crew, editing to post.
func (t TaskType) RequiredRole() PersonRole {
	if t == TypeEditing {
		return RolePostProduction
	}
	return RoleDirectorShooter
}

// WeekendRestricted reports whether tasks of this phase may not start or end
// on a Saturday or Sunday. Filming follows the shoot schedule and is exempt.
func (t TaskType) WeekendRestricted() bool {
	return t != TypeFilming
}

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	return s == StatusPending || s == StatusInProgress || s == StatusDone
}

// ChecklistItem — пункт чек-листа подготовки к съёмке
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task is a single calendar entry. Date is required; Deadline turns the task
// into a multi-day range [Date, Deadline]. Both are YYYY-MM-DD strings and
// compare lexicographically, which is safe for the fixed-width format.
type Task struct {
	ID        uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Date      string          `gorm:"type:varchar(10);not null" json:"date"`
	Deadline  string          `gorm:"type:varchar(10)" json:"deadline,omitempty"`
	Title     string          `gorm:"not null" json:"title"`
	PersonID  *uuid.UUID      `gorm:"type:uuid" json:"person_id,omitempty"`
	ProjectID uuid.UUID       `gorm:"type:uuid;not null;index" json:"project_id"`
	Type      TaskType        `gorm:"not null;check:type IN ('preparation', 'filming', 'editing')" json:"type"`
	Status    TaskStatus      `gorm:"not null;check:status IN ('pending', 'in_progress', 'done')" json:"status"`
	Progress  int             `json:"progress"`
	Checklist []ChecklistItem `gorm:"serializer:json" json:"checklist,omitempty"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"-"`

	Person  *Person `gorm:"foreignKey:PersonID" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}

// EndDate is the inclusive end of the task's date range: the deadline when
// present, otherwise the start date itself.
func (t Task) EndDate() string {
	if t.Deadline != "" {
		return t.Deadline
	}
	return t.Date
}

// Overlaps reports whether two tasks' date ranges intersect
// (closed-interval comparison).
func (t Task) Overlaps(other Task) bool {
	return t.Date <= other.EndDate() && other.Date <= t.EndDate()
}
