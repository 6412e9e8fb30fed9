package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prodcal/internal/schedule"
	"prodcal/internal/store"
)

type ProductionHandler struct {
	planner *schedule.Planner
	tasks   *TaskHandler
}

func NewProductionHandler(planner *schedule.Planner, st *store.Store) *ProductionHandler {
	return &ProductionHandler{planner: planner, tasks: NewTaskHandler(planner, st)}
}

// PhaseRequest представляет одну фазу продакшена
type PhaseRequest struct {
	Enabled  bool    `json:"enabled"`
	Date     string  `json:"date"`
	Deadline string  `json:"deadline"`
	PersonID *string `json:"person_id"`
}

// ProductionRequest представляет запрос на создание связки задач
type ProductionRequest struct {
	Title       string       `json:"title" binding:"required"`
	ProjectID   string       `json:"project_id" binding:"required"`
	BaseDate    string       `json:"base_date" binding:"required"`
	Preparation PhaseRequest `json:"preparation"`
	Filming     PhaseRequest `json:"filming"`
	Editing     PhaseRequest `json:"editing"`
}

func phaseToSpec(req PhaseRequest) (schedule.PhaseSpec, error) {
	spec := schedule.PhaseSpec{
		Enabled:  req.Enabled,
		Date:     req.Date,
		Deadline: req.Deadline,
	}
	if req.PersonID != nil && *req.PersonID != "" {
		id, err := uuid.Parse(*req.PersonID)
		if err != nil {
			return spec, err
		}
		spec.PersonID = &id
	}
	return spec, nil
}

// Create создаёт до трёх связанных задач одним коммитом
func (h *ProductionHandler) Create(c *gin.Context) {
	// Парсим запрос
	var req ProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	spec := schedule.ProductionSpec{
		Title:     req.Title,
		ProjectID: projectID,
		BaseDate:  req.BaseDate,
	}
	if spec.Preparation, err = phaseToSpec(req.Preparation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid preparation assignee ID"})
		return
	}
	if spec.Filming, err = phaseToSpec(req.Filming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filming assignee ID"})
		return
	}
	if spec.Editing, err = phaseToSpec(req.Editing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid editing assignee ID"})
		return
	}

	created, err := h.planner.ComposeProduction(c.Request.Context(), spec)
	if err != nil {
		var verr *schedule.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create production"})
		return
	}

	// Формируем ответ
	tasks := make([]TaskResponse, len(created))
	for i, task := range created {
		tasks[i] = h.tasks.toResponse(task)
	}
	c.JSON(http.StatusCreated, gin.H{"tasks": tasks})
}
