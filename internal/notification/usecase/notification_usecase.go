package usecase

import (
	"taskboard-backend/internal/notification/domain"
	"taskboard-backend/internal/notification/repository"
)

// notificationUsecase implements NotificationUsecase interface
type notificationUsecase struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationUsecase creates a new instance of notificationUsecase
func NewNotificationUsecase(notificationRepo repository.NotificationRepository) NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) List(userID string) ([]*domain.Notification, error) {
	return u.notificationRepo.FindByUser(userID)
}

// MarkRead reports another user's notification as absent rather than
// forbidden, so its existence is never confirmed to the wrong user.
func (u *notificationUsecase) MarkRead(userID, notificationID string) error {
	notification, err := u.notificationRepo.FindByID(notificationID)
	if err != nil {
		return err
	}
	if notification == nil || notification.UserID != userID {
		return domain.ErrNotFound
	}
	return u.notificationRepo.MarkRead(notificationID)
}

func (u *notificationUsecase) MarkAllRead(userID string) error {
	return u.notificationRepo.MarkAllRead(userID)
}
