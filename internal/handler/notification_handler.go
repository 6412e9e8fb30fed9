package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prodcal/internal/schedule"
	"prodcal/internal/store"
)

type NotificationHandler struct {
	planner *schedule.Planner
	store   *store.Store
}

func NewNotificationHandler(planner *schedule.Planner, st *store.Store) *NotificationHandler {
	return &NotificationHandler{planner: planner, store: st}
}

// List возвращает ленту уведомлений, новые первыми
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.store.Notifications()})
}

// Refresh запускает сканирование дедлайнов и съёмок вручную
func (h *NotificationHandler) Refresh(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.planner.RefreshNotifications()})
}

// ReadAll помечает все уведомления прочитанными
func (h *NotificationHandler) ReadAll(c *gin.Context) {
	h.planner.MarkAllNotificationsRead()
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
