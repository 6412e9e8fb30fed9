package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/schedule"
	"prodcal/internal/store"
)

type TaskHandler struct {
	planner *schedule.Planner
	store   *store.Store
}

func NewTaskHandler(planner *schedule.Planner, st *store.Store) *TaskHandler {
	return &TaskHandler{planner: planner, store: st}
}

// TaskRequest представляет запрос на создание или обновление задачи
type TaskRequest struct {
	Title     string                `json:"title" binding:"required"`
	Date      string                `json:"date" binding:"required"`
	Deadline  string                `json:"deadline"`
	PersonID  *string               `json:"person_id"`
	ProjectID string                `json:"project_id" binding:"required,uuid"`
	Type      model.TaskType        `json:"type" binding:"required"`
	Status    model.TaskStatus      `json:"status"`
	Progress  int                   `json:"progress"`
	Checklist []model.ChecklistItem `json:"checklist"`
	Force     bool                  `json:"force"`
}

// TaskResponse представляет ответ с данными задачи
type TaskResponse struct {
	ID           string                `json:"id"`
	Date         string                `json:"date"`
	Deadline     string                `json:"deadline,omitempty"`
	Title        string                `json:"title"`
	PersonID     *string               `json:"person_id,omitempty"`
	AssigneeName *string               `json:"assignee_name,omitempty"`
	ProjectID    string                `json:"project_id"`
	ProjectName  string                `json:"project_name,omitempty"`
	ClientName   string                `json:"client_name,omitempty"`
	Type         model.TaskType        `json:"type"`
	Status       model.TaskStatus      `json:"status"`
	Progress     int                   `json:"progress"`
	Checklist    []model.ChecklistItem `json:"checklist,omitempty"`
}

// ConflictResponse возвращается со статусом 409, когда сохранение
// приостановлено до решения о сдвиге расписания
type ConflictResponse struct {
	Error    string             `json:"error"`
	Conflict *schedule.Conflict `json:"conflict"`
}

func (h *TaskHandler) toResponse(task model.Task) TaskResponse {
	resp := TaskResponse{
		ID:        task.ID.String(),
		Date:      task.Date,
		Deadline:  task.Deadline,
		Title:     task.Title,
		ProjectID: task.ProjectID.String(),
		Type:      task.Type,
		Status:    task.Status,
		Progress:  task.Progress,
		Checklist: task.Checklist,
	}
	// Висячие ссылки не ошибка: задача отображается как "не назначено"
	if task.PersonID != nil {
		id := task.PersonID.String()
		resp.PersonID = &id
		if person, ok := h.store.PersonByID(*task.PersonID); ok {
			resp.AssigneeName = &person.Name
		}
	}
	if project, ok := h.store.ProjectByID(task.ProjectID); ok {
		resp.ProjectName = project.Name
		if client, ok := h.store.ClientByID(project.ClientID); ok {
			resp.ClientName = client.Name
		}
	}
	return resp
}

func (h *TaskHandler) requestToTask(req TaskRequest, id uuid.UUID) (model.Task, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return model.Task{}, err
	}
	task := model.Task{
		ID:        id,
		Date:      req.Date,
		Deadline:  req.Deadline,
		Title:     req.Title,
		ProjectID: projectID,
		Type:      req.Type,
		Status:    req.Status,
		Progress:  req.Progress,
		Checklist: req.Checklist,
	}
	if task.Status == "" {
		task.Status = model.StatusPending
	}
	if req.PersonID != nil && *req.PersonID != "" {
		personID, err := uuid.Parse(*req.PersonID)
		if err != nil {
			return model.Task{}, err
		}
		task.PersonID = &personID
	}
	return task, nil
}

// List возвращает задачи с опциональными фильтрами по роли, исполнителю,
// клиенту и проекту. Фильтры объединяются по И.
func (h *TaskHandler) List(c *gin.Context) {
	var filter schedule.TaskFilter

	if role := c.Query("role"); role != "" && role != "all" {
		r := model.PersonRole(role)
		if !r.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role filter"})
			return
		}
		filter.Role = r
	}
	for param, target := range map[string]**uuid.UUID{
		"person_id":  &filter.PersonID,
		"client_id":  &filter.ClientID,
		"project_id": &filter.ProjectID,
	} {
		if raw := c.Query(param); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + " format"})
				return
			}
			*target = &id
		}
	}

	tasks := h.planner.ListTasks(filter)
	response := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = h.toResponse(task)
	}
	c.JSON(http.StatusOK, response)
}

// Create создает новую задачу
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.requestToTask(req, uuid.Nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	h.save(c, task, req.Force, http.StatusCreated)
}

// Update обновляет задачу целиком по ID
func (h *TaskHandler) Update(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	task, err := h.requestToTask(req, taskID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	h.save(c, task, req.Force, http.StatusOK)
}

func (h *TaskHandler) save(c *gin.Context, task model.Task, force bool, okStatus int) {
	outcome, err := h.planner.SaveTask(c.Request.Context(), task, force)
	if err != nil {
		var verr *schedule.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.Is(err, schedule.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save task"})
		}
		return
	}

	// Сохранение приостановлено: нужно решение о сдвиге расписания
	if outcome.Conflict != nil {
		c.JSON(http.StatusConflict, ConflictResponse{
			Error:    "Schedule conflict detected",
			Conflict: outcome.Conflict,
		})
		return
	}

	response := gin.H{"task": h.toResponse(*outcome.Task)}
	if outcome.Derived != nil {
		response["derived_task"] = h.toResponse(*outcome.Derived)
	}
	c.JSON(okStatus, response)
}

// Delete удаляет задачу
func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
		return
	}

	if err := h.planner.DeleteTask(c.Request.Context(), taskID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
