package repository

import "taskboard-backend/internal/notification/domain"

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// Create stores a new notification, assigning an ID
	Create(notification *domain.Notification) error
	// FindByUser lists a user's notifications newest first
	FindByUser(userID string) ([]*domain.Notification, error)
	// FindByID finds a notification, nil if absent
	FindByID(id string) (*domain.Notification, error)
	// MarkRead sets the read flag on one notification
	MarkRead(id string) error
	// MarkAllRead sets the read flag on all of a user's unread notifications
	MarkAllRead(userID string) error
}
