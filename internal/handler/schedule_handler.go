package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"prodcal/internal/schedule"
	"prodcal/internal/store"
)

type ScheduleHandler struct {
	planner *schedule.Planner
	tasks   *TaskHandler
}

func NewScheduleHandler(planner *schedule.Planner, st *store.Store) *ScheduleHandler {
	return &ScheduleHandler{planner: planner, tasks: NewTaskHandler(planner, st)}
}

// PushRequest представляет решение о сдвиге расписания. AcceptOverrun —
// заранее данный ответ на предупреждения о превышении дедлайна проекта.
type PushRequest struct {
	DaysToPush    int  `json:"days_to_push" binding:"required,min=1"`
	AcceptOverrun bool `json:"accept_overrun"`
}

// PushResponse представляет результат сдвига
type PushResponse struct {
	Shifted     []TaskResponse `json:"shifted"`
	Warnings    []string       `json:"warnings,omitempty"`
	Task        *TaskResponse  `json:"task,omitempty"`
	DerivedTask *TaskResponse  `json:"derived_task,omitempty"`
}

// GetConflict возвращает отложенный конфликт, если он есть
func (h *ScheduleHandler) GetConflict(c *gin.Context) {
	conflict := h.planner.PendingConflict()
	if conflict == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending schedule conflict"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflict": conflict})
}

// Push разрешает отложенный конфликт: сдвигает расписание и досохраняет
// исходную задачу. Без accept_overrun предупреждения отменяют весь сдвиг.
func (h *ScheduleHandler) Push(c *gin.Context) {
	var req PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	confirm := func(warnings []string) bool { return req.AcceptOverrun }
	outcome, err := h.planner.ResolveConflict(c.Request.Context(), req.DaysToPush, confirm)
	if err != nil {
		var verr *schedule.ValidationError
		switch {
		case errors.Is(err, schedule.ErrNoPendingConflict):
			c.JSON(http.StatusNotFound, gin.H{"error": "No pending schedule conflict"})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to push schedule"})
		}
		return
	}

	if outcome.Aborted {
		// Ничего не закоммичено, конфликт сброшен
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Push aborted: project absolute deadline would be exceeded",
			"warnings": outcome.Warnings,
		})
		return
	}

	resp := PushResponse{Warnings: outcome.Warnings}
	resp.Shifted = make([]TaskResponse, len(outcome.Shifted))
	for i, task := range outcome.Shifted {
		resp.Shifted[i] = h.tasks.toResponse(task)
	}
	if outcome.Saved != nil && outcome.Saved.Task != nil {
		saved := h.tasks.toResponse(*outcome.Saved.Task)
		resp.Task = &saved
		if outcome.Saved.Derived != nil {
			derived := h.tasks.toResponse(*outcome.Saved.Derived)
			resp.DerivedTask = &derived
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel сбрасывает отложенный конфликт; приостановленное сохранение
// отбрасывается без побочных эффектов
func (h *ScheduleHandler) Cancel(c *gin.Context) {
	if err := h.planner.CancelConflict(); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending schedule conflict"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conflict cancelled, nothing was saved"})
}
