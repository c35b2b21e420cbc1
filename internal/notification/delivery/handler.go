package delivery

import (
	"errors"
	"net/http"

	"taskboard-backend/internal/notification/domain"
	"taskboard-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles notification inbox HTTP requests
type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// List returns the authenticated user's notifications, newest first
// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, err := h.notificationUsecase.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if notifications == nil {
		notifications = []*domain.Notification{}
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkRead marks one notification read
// POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetString("userID")
	notificationID := c.Param("id")

	if err := h.notificationUsecase.MarkRead(userID, notificationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// MarkAllRead marks all unread notifications read
// POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.notificationUsecase.MarkAllRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
