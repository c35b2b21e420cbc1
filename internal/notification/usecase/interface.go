package usecase

import "taskboard-backend/internal/notification/domain"

// NotificationUsecase defines the inbox operations exposed to delivery
type NotificationUsecase interface {
	// List returns the user's notifications newest first
	List(userID string) ([]*domain.Notification, error)
	// MarkRead marks one of the user's notifications read
	MarkRead(userID, notificationID string) error
	// MarkAllRead marks all of the user's unread notifications read
	MarkAllRead(userID string) error
}
