package schedule_test

import (
	"testing"
	"time"

	"prodcal/internal/model"
	"prodcal/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func reminderWorld() ([]model.Project, []model.Client, uuid.UUID) {
	client := model.Client{ID: uuid.New(), Name: "Acme"}
	project := model.Project{ID: uuid.New(), Name: "Launch", ClientID: client.ID}
	return []model.Project{project}, []model.Client{client}, project.ID
}

func july10() schedule.Clock {
	return schedule.FixedClock{T: time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)}
}

func TestGenerateReminders_EditingDueToday(t *testing.T) {
	projects, clients, projectID := reminderWorld()
	task := model.Task{
		ID:        uuid.New(),
		Date:      "2024-07-08",
		Deadline:  "2024-07-10",
		Title:     "Final cut",
		ProjectID: projectID,
		Type:      model.TypeEditing,
		Status:    model.StatusInProgress,
	}

	out := schedule.GenerateReminders([]model.Task{task}, projects, clients, july10())

	assert.Len(t, out, 1)
	assert.Equal(t, "deadline-"+task.ID.String(), out[0].ID)
	assert.Equal(t, "[Deadline] Acme - Launch editing is due today.", out[0].Message)
	assert.Equal(t, task.ID, out[0].TaskID)
}

func TestGenerateReminders_DoneEditingSkipped(t *testing.T) {
	projects, clients, projectID := reminderWorld()
	task := model.Task{
		ID:        uuid.New(),
		Date:      "2024-07-08",
		Deadline:  "2024-07-10",
		Title:     "Final cut",
		ProjectID: projectID,
		Type:      model.TypeEditing,
		Status:    model.StatusDone,
	}

	assert.Empty(t, schedule.GenerateReminders([]model.Task{task}, projects, clients, july10()))
}

func TestGenerateReminders_FilmingTomorrow(t *testing.T) {
	projects, clients, projectID := reminderWorld()
	personID := uuid.New()
	task := model.Task{
		ID:        uuid.New(),
		Date:      "2024-07-11",
		Title:     "Main shoot",
		PersonID:  &personID,
		ProjectID: projectID,
		Type:      model.TypeFilming,
		Status:    model.StatusPending,
	}

	out := schedule.GenerateReminders([]model.Task{task}, projects, clients, july10())

	assert.Len(t, out, 1)
	assert.Equal(t, "prep-"+task.ID.String(), out[0].ID)
	assert.Equal(t, "[Prep] Acme - Launch films tomorrow. Review the checklist.", out[0].Message)
}

func TestGenerateReminders_OutsideWindows(t *testing.T) {
	projects, clients, projectID := reminderWorld()
	tasks := []model.Task{
		{ID: uuid.New(), Date: "2024-07-08", Deadline: "2024-07-11", Title: "Cut", ProjectID: projectID, Type: model.TypeEditing, Status: model.StatusPending},
		{ID: uuid.New(), Date: "2024-07-10", Title: "Shoot today", ProjectID: projectID, Type: model.TypeFilming, Status: model.StatusPending},
		{ID: uuid.New(), Date: "2024-07-12", Title: "Shoot later", ProjectID: projectID, Type: model.TypeFilming, Status: model.StatusPending},
	}

	assert.Empty(t, schedule.GenerateReminders(tasks, projects, clients, july10()))
}

func TestGenerateReminders_DanglingReferencesSkipped(t *testing.T) {
	projects, clients, _ := reminderWorld()

	orphanProject := model.Task{
		ID:        uuid.New(),
		Date:      "2024-07-08",
		Deadline:  "2024-07-10",
		Title:     "Cut",
		ProjectID: uuid.New(),
		Type:      model.TypeEditing,
		Status:    model.StatusPending,
	}
	orphanClient := model.Project{ID: uuid.New(), Name: "Ghost", ClientID: uuid.New()}
	taskOfOrphan := orphanProject
	taskOfOrphan.ID = uuid.New()
	taskOfOrphan.ProjectID = orphanClient.ID

	out := schedule.GenerateReminders(
		[]model.Task{orphanProject, taskOfOrphan},
		append(projects, orphanClient),
		clients,
		july10(),
	)
	assert.Empty(t, out)
}

func TestGenerateReminders_DeterministicIDs(t *testing.T) {
	// Повторный запуск даёт те же идентификаторы
	projects, clients, projectID := reminderWorld()
	task := model.Task{
		ID:        uuid.New(),
		Date:      "2024-07-08",
		Deadline:  "2024-07-10",
		Title:     "Cut",
		ProjectID: projectID,
		Type:      model.TypeEditing,
		Status:    model.StatusPending,
	}

	first := schedule.GenerateReminders([]model.Task{task}, projects, clients, july10())
	second := schedule.GenerateReminders([]model.Task{task}, projects, clients, july10())

	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestAssignmentNotification(t *testing.T) {
	person := model.Person{ID: uuid.New(), Name: "Lee", Role: model.RolePostProduction}
	task := model.Task{ID: uuid.New(), Title: "Final cut", Type: model.TypeEditing}

	n := schedule.AssignmentNotification(task, person, july10())

	assert.Equal(t, "Lee was assigned 'Final cut (Editing)'.", n.Message)
	assert.Equal(t, task.ID, n.TaskID)
	assert.Contains(t, n.ID, "assign-"+task.ID.String())
}
