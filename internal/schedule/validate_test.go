package schedule_test

import (
	"testing"

	"prodcal/internal/model"
	"prodcal/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func directory(people ...model.Person) func(uuid.UUID) (model.Person, bool) {
	byID := make(map[uuid.UUID]model.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	return func(id uuid.UUID) (model.Person, bool) {
		p, ok := byID[id]
		return p, ok
	}
}

func validEditing() model.Task {
	return model.Task{
		ID:        uuid.New(),
		Date:      "2024-07-15",
		Deadline:  "2024-07-17",
		Title:     "Edit",
		ProjectID: uuid.New(),
		Type:      model.TypeEditing,
		Status:    model.StatusPending,
	}
}

func TestValidateTask_OK(t *testing.T) {
	assert.NoError(t, schedule.ValidateTask(validEditing(), nil))
}

func TestValidateTask_RequiredFields(t *testing.T) {
	missingTitle := validEditing()
	missingTitle.Title = ""
	assert.Error(t, schedule.ValidateTask(missingTitle, nil))

	missingDate := validEditing()
	missingDate.Date = ""
	assert.Error(t, schedule.ValidateTask(missingDate, nil))

	missingProject := validEditing()
	missingProject.ProjectID = uuid.Nil
	assert.Error(t, schedule.ValidateTask(missingProject, nil))
}

func TestValidateTask_UnknownTypeAndStatus(t *testing.T) {
	badType := validEditing()
	badType.Type = "mixing"
	assert.Error(t, schedule.ValidateTask(badType, nil))

	badStatus := validEditing()
	badStatus.Status = "paused"
	assert.Error(t, schedule.ValidateTask(badStatus, nil))
}

func TestValidateTask_MalformedDates(t *testing.T) {
	badDate := validEditing()
	badDate.Date = "15.07.2024"
	assert.Error(t, schedule.ValidateTask(badDate, nil))

	badDeadline := validEditing()
	badDeadline.Deadline = "soon"
	assert.Error(t, schedule.ValidateTask(badDeadline, nil))
}

func TestValidateTask_DeadlineBeforeDate(t *testing.T) {
	task := validEditing()
	task.Date = "2024-07-17"
	task.Deadline = "2024-07-15"

	err := schedule.ValidateTask(task, nil)
	assert.Error(t, err)

	var verr *schedule.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidateTask_FilmingRequiresAssignee(t *testing.T) {
	task := validEditing()
	task.Type = model.TypeFilming
	task.PersonID = nil
	task.Deadline = ""

	assert.Error(t, schedule.ValidateTask(task, nil))

	personID := uuid.New()
	task.PersonID = &personID
	assert.NoError(t, schedule.ValidateTask(task, nil))
}

func TestValidateTask_WeekendRules(t *testing.T) {
	// 2024-07-13 — суббота
	weekendStart := validEditing()
	weekendStart.Date = "2024-07-13"
	weekendStart.Deadline = ""
	assert.Error(t, schedule.ValidateTask(weekendStart, nil))

	weekendEnd := validEditing()
	weekendEnd.Date = "2024-07-11"
	weekendEnd.Deadline = "2024-07-14"
	assert.Error(t, schedule.ValidateTask(weekendEnd, nil))

	// Съёмка — исключение
	personID := uuid.New()
	filming := validEditing()
	filming.Type = model.TypeFilming
	filming.PersonID = &personID
	filming.Date = "2024-07-13"
	filming.Deadline = "2024-07-14"
	assert.NoError(t, schedule.ValidateTask(filming, nil))
}

func TestValidateTask_RoleConstraints(t *testing.T) {
	shooter := model.Person{ID: uuid.New(), Name: "Kim", Role: model.RoleDirectorShooter}
	editor := model.Person{ID: uuid.New(), Name: "Lee", Role: model.RolePostProduction}
	lookup := directory(shooter, editor)

	editing := validEditing()
	editing.PersonID = &shooter.ID
	assert.Error(t, schedule.ValidateTask(editing, lookup))

	editing.PersonID = &editor.ID
	assert.NoError(t, schedule.ValidateTask(editing, lookup))

	filming := validEditing()
	filming.Type = model.TypeFilming
	filming.PersonID = &editor.ID
	assert.Error(t, schedule.ValidateTask(filming, lookup))

	filming.PersonID = &shooter.ID
	assert.NoError(t, schedule.ValidateTask(filming, lookup))
}

func TestValidateTask_DanglingAssigneeTolerated(t *testing.T) {
	lookup := directory() // пустой справочник
	task := validEditing()
	ghost := uuid.New()
	task.PersonID = &ghost

	assert.NoError(t, schedule.ValidateTask(task, lookup))
}
