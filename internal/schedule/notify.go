package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/dateutil"
)

// GenerateReminders runs the point-in-time notification scan: a deadline
// reminder for every unfinished editing task due today and a preparation
// reminder for every filming task scheduled tomorrow. Tasks with dangling
// project or client references are skipped silently.
//
// IDs are deterministic per task, so re-running the scan over an unchanged
// task set produces no duplicates once merged.
func GenerateReminders(tasks []model.Task, projects []model.Project, clients []model.Client, clock Clock) []model.Notification {
	today := dateutil.Format(clock.Now())
	tomorrow := dateutil.AddDays(today, 1)

	projectByID := make(map[uuid.UUID]model.Project, len(projects))
	for _, p := range projects {
		projectByID[p.ID] = p
	}
	clientByID := make(map[uuid.UUID]model.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}

	var out []model.Notification
	for _, task := range tasks {
		project, ok := projectByID[task.ProjectID]
		if !ok {
			continue
		}
		client, ok := clientByID[project.ClientID]
		if !ok {
			continue
		}

		if task.Type == model.TypeEditing && task.Deadline == today && task.Status != model.StatusDone {
			out = append(out, model.Notification{
				ID:      "deadline-" + task.ID.String(),
				Message: fmt.Sprintf("[Deadline] %s - %s editing is due today.", client.Name, project.Name),
				TaskID:  task.ID,
			})
		}

		if task.Type == model.TypeFilming && task.Date == tomorrow {
			out = append(out, model.Notification{
				ID:      "prep-" + task.ID.String(),
				Message: fmt.Sprintf("[Prep] %s - %s films tomorrow. Review the checklist.", client.Name, project.Name),
				TaskID:  task.ID,
			})
		}
	}
	return out
}

// AssignmentNotification announces that a task was handed to a person. The
// id carries a nanosecond suffix: unlike scan reminders, every assignment
// is its own event.
func AssignmentNotification(task model.Task, assignee model.Person, clock Clock) model.Notification {
	return model.Notification{
		ID:      fmt.Sprintf("assign-%s-%d", task.ID, clock.Now().UnixNano()),
		Message: fmt.Sprintf("%s was assigned '%s (%s)'.", assignee.Name, task.Title, task.Type.Label()),
		TaskID:  task.ID,
	}
}
