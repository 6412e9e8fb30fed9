package schedule

import (
	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/dateutil"
)

// personLookup resolves a person id against the directory. The bool is
// false for a dangling reference, which validation treats as "unassigned"
// rather than an error.
type personLookup func(uuid.UUID) (model.Person, bool)

// ValidateTask applies the save-time rules. It never mutates anything: a
// non-nil result is always a *ValidationError with a user-facing message.
func ValidateTask(task model.Task, personByID personLookup) error {
	if task.Title == "" || task.Date == "" || task.ProjectID == uuid.Nil {
		return validationf("title, date and project are required")
	}
	if !task.Type.Valid() {
		return validationf("unknown task type %q", string(task.Type))
	}
	if !task.Status.Valid() {
		return validationf("unknown task status %q", string(task.Status))
	}
	if !dateutil.Valid(task.Date) {
		return validationf("date must be a YYYY-MM-DD calendar date")
	}
	if task.Deadline != "" {
		if !dateutil.Valid(task.Deadline) {
			return validationf("deadline must be a YYYY-MM-DD calendar date")
		}
		if task.Deadline < task.Date {
			return validationf("deadline must not precede the start date")
		}
	}

	if task.Type == model.TypeFilming && task.PersonID == nil {
		return validationf("filming tasks require an assignee")
	}

	if task.Type.WeekendRestricted() {
		if dateutil.IsWeekend(task.Date) {
			return validationf("%s tasks cannot start on a weekend", task.Type.Label())
		}
		if task.Deadline != "" && dateutil.IsWeekend(task.Deadline) {
			return validationf("%s tasks cannot end on a weekend", task.Type.Label())
		}
	}

	// Dangling person references are tolerated; a resolvable one must
	// match the phase's role.
	if task.PersonID != nil && personByID != nil {
		if person, ok := personByID(*task.PersonID); ok {
			if required := task.Type.RequiredRole(); person.Role != required {
				return validationf("%s tasks must be assigned to a %s", task.Type.Label(), required.Label())
			}
		}
	}

	return nil
}
