package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prodcal/internal/dateutil"
	"prodcal/internal/model"
	"prodcal/internal/store"
)

type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(st *store.Store) *ProjectHandler {
	return &ProjectHandler{store: st}
}

// ProjectRequest представляет запрос на создание или обновление проекта
type ProjectRequest struct {
	Name             string `json:"name" binding:"required"`
	ClientID         string `json:"client_id" binding:"required"`
	AbsoluteDeadline string `json:"absolute_deadline"`
}

// List возвращает все проекты
func (h *ProjectHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": h.store.Projects()})
}

func (h *ProjectHandler) bind(c *gin.Context) (model.Project, bool) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return model.Project{}, false
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return model.Project{}, false
	}
	if _, ok := h.store.ClientByID(clientID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return model.Project{}, false
	}
	if req.AbsoluteDeadline != "" && !dateutil.Valid(req.AbsoluteDeadline) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Absolute deadline must be a YYYY-MM-DD date"})
		return model.Project{}, false
	}
	return model.Project{
		Name:             req.Name,
		ClientID:         clientID,
		AbsoluteDeadline: req.AbsoluteDeadline,
	}, true
}

// Create добавляет проект
func (h *ProjectHandler) Create(c *gin.Context) {
	project, ok := h.bind(c)
	if !ok {
		return
	}
	project.ID = uuid.New()
	if err := h.store.UpsertProject(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update меняет имя, клиента и жёсткий дедлайн проекта
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	if _, ok := h.store.ProjectByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	project, ok := h.bind(c)
	if !ok {
		return
	}
	project.ID = id
	if err := h.store.UpsertProject(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete удаляет проект; задачи проекта остаются в календаре
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}
	if _, ok := h.store.ProjectByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err := h.store.DeleteProject(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
