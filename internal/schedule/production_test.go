package schedule_test

import (
	"testing"

	"prodcal/internal/model"
	"prodcal/internal/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func allPhases(base string) schedule.ProductionSpec {
	return schedule.ProductionSpec{
		Title:       "Summer Campaign",
		ProjectID:   uuid.New(),
		BaseDate:    base,
		Preparation: schedule.PhaseSpec{Enabled: true},
		Filming:     schedule.PhaseSpec{Enabled: true},
		Editing:     schedule.PhaseSpec{Enabled: true},
	}
}

func TestCascadeDates_AllPhasesOneDayApart(t *testing.T) {
	spec := schedule.CascadeDates(allPhases("2024-07-15"))

	assert.Equal(t, "2024-07-15", spec.Preparation.Date)
	assert.Equal(t, "2024-07-16", spec.Filming.Date)
	assert.Equal(t, "2024-07-17", spec.Editing.Date)
}

func TestCascadeDates_PreparationDeadlineDelaysFilming(t *testing.T) {
	spec := allPhases("2024-07-15")
	spec.Preparation.Deadline = "2024-07-17"

	spec = schedule.CascadeDates(spec)

	assert.Equal(t, "2024-07-18", spec.Filming.Date)
	assert.Equal(t, "2024-07-19", spec.Editing.Date)
}

func TestCascadeDates_ExplicitDatesUntouched(t *testing.T) {
	spec := allPhases("2024-07-15")
	spec.Filming.Date = "2024-07-22"

	spec = schedule.CascadeDates(spec)

	assert.Equal(t, "2024-07-15", spec.Preparation.Date)
	assert.Equal(t, "2024-07-22", spec.Filming.Date)
	assert.Equal(t, "2024-07-23", spec.Editing.Date)
}

func TestCascadeDates_DisabledPhasesSkipped(t *testing.T) {
	spec := allPhases("2024-07-15")
	spec.Preparation.Enabled = false
	spec.Filming.Enabled = false

	spec = schedule.CascadeDates(spec)

	assert.Equal(t, "", spec.Preparation.Date)
	assert.Equal(t, "", spec.Filming.Date)
	assert.Equal(t, "2024-07-15", spec.Editing.Date)
}

func TestComposeProduction_TitlesAndDefaults(t *testing.T) {
	tasks, err := schedule.ComposeProduction(allPhases("2024-07-15"), nil)

	assert.NoError(t, err)
	assert.Len(t, tasks, 3)

	assert.Equal(t, "Summer Campaign (Preparation)", tasks[0].Title)
	assert.Equal(t, model.TypePreparation, tasks[0].Type)
	assert.Equal(t, "Summer Campaign (Filming)", tasks[1].Title)
	assert.Equal(t, model.TypeFilming, tasks[1].Type)
	assert.Equal(t, "Summer Campaign (Editing)", tasks[2].Title)
	assert.Equal(t, model.TypeEditing, tasks[2].Type)

	for _, task := range tasks {
		assert.Equal(t, model.StatusPending, task.Status)
		assert.Equal(t, 0, task.Progress)
		assert.NotEqual(t, uuid.Nil, task.ID)
	}
}

func TestComposeProduction_FilmingMayBeUnassigned(t *testing.T) {
	spec := allPhases("2024-07-15")
	spec.Preparation.Enabled = false
	spec.Editing.Enabled = false

	tasks, err := schedule.ComposeProduction(spec, nil)

	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Nil(t, tasks[0].PersonID)
}

func TestComposeProduction_WeekendPhaseRejected(t *testing.T) {
	// Каскад от пятницы кладёт подготовку на будни, монтаж — на воскресенье
	spec := allPhases("2024-07-12")

	_, err := schedule.ComposeProduction(spec, nil)

	var verr *schedule.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestComposeProduction_RoleMismatchRejected(t *testing.T) {
	editor := model.Person{ID: uuid.New(), Name: "Lee", Role: model.RolePostProduction}
	lookup := directory(editor)

	spec := allPhases("2024-07-15")
	spec.Filming.PersonID = &editor.ID

	_, err := schedule.ComposeProduction(spec, lookup)
	assert.Error(t, err)
}

func TestComposeProduction_NoPhasesEnabled(t *testing.T) {
	spec := allPhases("2024-07-15")
	spec.Preparation.Enabled = false
	spec.Filming.Enabled = false
	spec.Editing.Enabled = false

	_, err := schedule.ComposeProduction(spec, nil)
	assert.Error(t, err)
}

func TestComposeProduction_MissingTitleOrProject(t *testing.T) {
	spec := allPhases("2024-07-15")
	spec.Title = ""
	_, err := schedule.ComposeProduction(spec, nil)
	assert.Error(t, err)

	spec = allPhases("2024-07-15")
	spec.ProjectID = uuid.Nil
	_, err = schedule.ComposeProduction(spec, nil)
	assert.Error(t, err)
}
