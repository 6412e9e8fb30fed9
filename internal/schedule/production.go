package schedule

import (
	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/dateutil"
)

// PhaseSpec describes one phase of a production request. Disabled phases
// produce no task; empty dates are filled by the cascade defaults.
type PhaseSpec struct {
	Enabled  bool       `json:"enabled"`
	Date     string     `json:"date"`
	Deadline string     `json:"deadline"`
	PersonID *uuid.UUID `json:"person_id"`
}

// EndDate is the phase's effective end: the deadline when set, otherwise
// the start date.
func (p PhaseSpec) EndDate() string {
	if p.Deadline != "" {
		return p.Deadline
	}
	return p.Date
}

// ProductionSpec bundles up to three linked tasks created together for one
// project. BaseDate anchors the cascade when phase dates are left empty.
type ProductionSpec struct {
	Title       string    `json:"title"`
	ProjectID   uuid.UUID `json:"project_id"`
	BaseDate    string    `json:"base_date"`
	Preparation PhaseSpec `json:"preparation"`
	Filming     PhaseSpec `json:"filming"`
	Editing     PhaseSpec `json:"editing"`
}

// CascadeDates fills empty phase dates with the advisory defaults: the
// preparation phase starts at the base date, filming follows the day after
// preparation ends, and editing follows the day after filming. Explicit
// dates supplied by the caller are left untouched.
func CascadeDates(spec ProductionSpec) ProductionSpec {
	base := spec.BaseDate

	if spec.Preparation.Enabled && spec.Preparation.Date == "" {
		spec.Preparation.Date = base
	}
	if spec.Filming.Enabled && spec.Filming.Date == "" {
		if spec.Preparation.Enabled {
			spec.Filming.Date = dateutil.NextDay(spec.Preparation.EndDate())
		} else {
			spec.Filming.Date = base
		}
	}
	if spec.Editing.Enabled && spec.Editing.Date == "" {
		if spec.Filming.Enabled {
			spec.Editing.Date = dateutil.NextDay(spec.Filming.Date)
		} else if spec.Preparation.Enabled {
			spec.Editing.Date = dateutil.NextDay(spec.Preparation.EndDate())
		} else {
			spec.Editing.Date = base
		}
	}
	return spec
}

// ComposeProduction validates the request and expands it into one task per
// enabled phase, each titled "{title} ({phase})", pending, progress zero.
// Cascade defaults are applied first. Nothing is committed here; the
// planner appends the returned batch in one store commit.
func ComposeProduction(spec ProductionSpec, personByID personLookup) ([]model.Task, error) {
	if spec.Title == "" || spec.ProjectID == uuid.Nil {
		return nil, validationf("production title and project are required")
	}
	spec = CascadeDates(spec)

	phases := []struct {
		typ  model.TaskType
		spec PhaseSpec
	}{
		{model.TypePreparation, spec.Preparation},
		{model.TypeFilming, spec.Filming},
		{model.TypeEditing, spec.Editing},
	}

	var tasks []model.Task
	for _, phase := range phases {
		if !phase.spec.Enabled {
			continue
		}
		task := model.Task{
			ID:        uuid.New(),
			Date:      phase.spec.Date,
			Deadline:  phase.spec.Deadline,
			Title:     spec.Title + " (" + phase.typ.Label() + ")",
			PersonID:  phase.spec.PersonID,
			ProjectID: spec.ProjectID,
			Type:      phase.typ,
			Status:    model.StatusPending,
			Progress:  0,
		}
		// Filming is exempt from both the weekend rule and the assignee
		// requirement on this path, matching the single-task editor only
		// in the former: a production may be sketched before the crew is
		// locked in.
		if task.Date == "" {
			return nil, validationf("%s phase requires a date", phase.typ.Label())
		}
		if err := validatePhaseTask(task, personByID); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if len(tasks) == 0 {
		return nil, validationf("at least one phase must be enabled")
	}
	return tasks, nil
}

// validatePhaseTask mirrors ValidateTask minus the filming-assignee
// requirement, which the composer does not impose.
func validatePhaseTask(task model.Task, personByID personLookup) error {
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
	if task.Type.WeekendRestricted() {
		if dateutil.IsWeekend(task.Date) {
			return validationf("%s tasks cannot start on a weekend", task.Type.Label())
		}
		if task.Deadline != "" && dateutil.IsWeekend(task.Deadline) {
			return validationf("%s tasks cannot end on a weekend", task.Type.Label())
		}
	}
	if task.PersonID != nil && personByID != nil {
		if person, ok := personByID(*task.PersonID); ok {
			if required := task.Type.RequiredRole(); person.Role != required {
				return validationf("%s tasks must be assigned to a %s", task.Type.Label(), required.Label())
			}
		}
	}
	return nil
}
