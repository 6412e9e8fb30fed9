package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/store"
)

type ClientHandler struct {
	store  *store.Store
	policy store.ClientDeletePolicy
}

func NewClientHandler(st *store.Store, policy store.ClientDeletePolicy) *ClientHandler {
	return &ClientHandler{store: st, policy: policy}
}

// ClientRequest представляет запрос на создание или обновление клиента
type ClientRequest struct {
	Name string `json:"name" binding:"required"`
}

// List возвращает всех клиентов
func (h *ClientHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": h.store.Clients()})
}

// Create добавляет клиента, цвет бейджа выбирается из палитры
func (h *ClientHandler) Create(c *gin.Context) {
	// Парсим запрос
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	color := randomColor()
	client := model.Client{
		ID:        uuid.New(),
		Name:      req.Name,
		Color:     color.Color,
		TextColor: color.TextColor,
	}
	if err := h.store.UpsertClient(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// Update меняет имя клиента, цвет сохраняется
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}
	client, ok := h.store.ClientByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	client.Name = req.Name
	if err := h.store.UpsertClient(c.Request.Context(), client); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// Delete удаляет клиента вместе с его проектами; судьба задач этих
// проектов определяется политикой
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}
	if _, ok := h.store.ClientByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err := h.store.DeleteClient(c.Request.Context(), id, h.policy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// ListProjects возвращает проекты одного клиента
func (h *ClientHandler) ListProjects(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid client ID"})
		return
	}
	if _, ok := h.store.ClientByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": h.store.ProjectsByClient(id)})
}
