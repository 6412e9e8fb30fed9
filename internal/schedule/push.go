package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/dateutil"
)

// Conflict is the descriptor handed to the caller when a save is suspended.
// It carries everything the confirmation step needs to present the choice
// and everything ResolveConflict needs to finish it.
type Conflict struct {
	TaskToSave      model.Task   `json:"task_to_save"`
	ConflictingTask model.Task   `json:"conflicting_task"`
	Person          model.Person `json:"person"`
}

// ComputePush calculates the shifted copies of every task of the conflicting
// person from the overlap window onward, excluding the task being saved.
// The window starts at the earlier of the two conflicting start dates, so
// resolving against an already-running task pushes that task too.
//
// Nothing is committed here; the caller decides after seeing the warnings.
// A warning is emitted for each shifted task whose new deadline crosses its
// project's absolute deadline.
func ComputePush(c Conflict, tasks []model.Task, projects []model.Project, daysToPush int) ([]model.Task, []string) {
	start := c.TaskToSave.Date
	if c.ConflictingTask.Date < start {
		start = c.ConflictingTask.Date
	}

	deadlines := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		deadlines[p.ID] = p.AbsoluteDeadline
	}

	var updated []model.Task
	var warnings []string
	for _, task := range tasks {
		if task.PersonID == nil || *task.PersonID != c.Person.ID {
			continue
		}
		if task.ID == c.TaskToSave.ID || task.Date < start {
			continue
		}

		task.Date = dateutil.AddDays(task.Date, daysToPush)
		if task.Deadline != "" {
			task.Deadline = dateutil.AddDays(task.Deadline, daysToPush)
		}

		if abs := deadlines[task.ProjectID]; abs != "" && task.Deadline != "" && task.Deadline > abs {
			warnings = append(warnings, fmt.Sprintf("'%s' would exceed the project absolute deadline (%s)", task.Title, abs))
		}
		updated = append(updated, task)
	}
	return updated, warnings
}
