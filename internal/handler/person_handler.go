package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prodcal/internal/model"
	"prodcal/internal/store"
)

type PersonHandler struct {
	store  *store.Store
	policy store.PersonDeletePolicy
}

func NewPersonHandler(st *store.Store, policy store.PersonDeletePolicy) *PersonHandler {
	return &PersonHandler{store: st, policy: policy}
}

// PersonRequest представляет запрос на создание или обновление участника
type PersonRequest struct {
	Name string           `json:"name" binding:"required"`
	Role model.PersonRole `json:"role" binding:"required"`
}

// List возвращает всех участников команды
func (h *PersonHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"people": h.store.People()})
}

// Create добавляет участника, цвет бейджа выбирается из палитры
func (h *PersonHandler) Create(c *gin.Context) {
	// Парсим запрос
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be director_shooter or post_production"})
		return
	}

	color := randomColor()
	person := model.Person{
		ID:        uuid.New(),
		Name:      req.Name,
		Role:      req.Role,
		Color:     color.Color,
		TextColor: color.TextColor,
	}
	if err := h.store.UpsertPerson(c.Request.Context(), person); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create person"})
		return
	}
	c.JSON(http.StatusCreated, person)
}

// Update меняет имя и роль, цвет сохраняется
func (h *PersonHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return
	}
	person, ok := h.store.PersonByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}

	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if !req.Role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be director_shooter or post_production"})
		return
	}

	person.Name = req.Name
	person.Role = req.Role
	if err := h.store.UpsertPerson(c.Request.Context(), person); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update person"})
		return
	}
	c.JSON(http.StatusOK, person)
}

// Delete удаляет участника; судьба его задач определяется политикой
func (h *PersonHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid person ID"})
		return
	}
	if _, ok := h.store.PersonByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Person not found"})
		return
	}
	if err := h.store.DeletePerson(c.Request.Context(), id, h.policy); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete person"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Person deleted successfully"})
}
