package repository_test

import (
	"context"
	"testing"

	"prodcal/internal/model"
	"prodcal/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func TestTaskRepository_Upsert(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	task := &model.Task{
		ID:        taskID,
		Date:      "2024-07-10",
		Deadline:  "2024-07-17",
		Title:     "Final cut",
		ProjectID: uuid.New(),
		Type:      model.TypeEditing,
		Status:    model.StatusPending,
	}

	// Ожидаем INSERT с ON CONFLICT по id
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks" .* ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(taskID.String()))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Upsert(context.Background(), task)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpsertBatch_SingleTransaction(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	tasks := []model.Task{
		{ID: uuid.New(), Date: "2024-07-10", Title: "A", ProjectID: uuid.New(), Type: model.TypeEditing, Status: model.StatusPending},
		{ID: uuid.New(), Date: "2024-07-11", Title: "B", ProjectID: uuid.New(), Type: model.TypeEditing, Status: model.StatusPending},
	}

	// Один BEGIN на весь батч
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "tasks" .* ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(tasks[0].ID.String()))
	mock.ExpectQuery(`INSERT INTO "tasks" .* ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(tasks[1].ID.String()))
	mock.ExpectCommit()

	// Act
	err := taskRepo.UpsertBatch(context.Background(), tasks)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpsertBatch_Empty(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Пустой батч не трогает базу
	err := taskRepo.UpsertBatch(context.Background(), nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	projectID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* LIMIT 1`).
		WithArgs(taskID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "deadline", "title", "project_id", "type", "status", "progress"}).
			AddRow(taskID.String(), "2024-07-10", "2024-07-17", "Final cut", projectID.String(), "editing", "pending", 0))

	// Act
	task, err := taskRepo.GetByID(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, task)
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, "Final cut", task.Title)
	assert.Equal(t, model.TypeEditing, task.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE id = .* LIMIT 1`).
		WithArgs(taskID).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	task, err := taskRepo.GetByID(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetAll_OrderedByDate(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "tasks" ORDER BY date`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "title", "project_id", "type", "status"}).
			AddRow(uuid.New().String(), "2024-07-10", "A", uuid.New().String(), "editing", "pending").
			AddRow(uuid.New().String(), "2024-07-12", "B", uuid.New().String(), "filming", "pending"))

	// Act
	tasks, err := taskRepo.GetAll(context.Background())

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, "2024-07-10", tasks[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetByPersonID(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	personID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE person_id = .* ORDER BY date`).
		WithArgs(personID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "date", "title", "person_id", "project_id", "type", "status"}).
			AddRow(uuid.New().String(), "2024-07-10", "A", personID.String(), uuid.New().String(), "editing", "in_progress"))

	// Act
	tasks, err := taskRepo.GetByPersonID(context.Background(), personID)

	// Assert
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, personID, *tasks[0].PersonID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .*`).
		WithArgs(taskID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), taskID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	taskRepo := repository.NewTaskRepository(gormDB)

	taskID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tasks" WHERE id = .*`).
		WithArgs(taskID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	// Act
	err := taskRepo.Delete(context.Background(), taskID)

	// Assert
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
