package repository

import (
	authdomain "taskboard-backend/internal/auth/domain"
	"taskboard-backend/internal/board/domain"
	notifdomain "taskboard-backend/internal/notification/domain"
)

// BoardRepository defines the interface for board operations
type BoardRepository interface {
	// Create stores a new board, assigning an ID
	Create(board *domain.Board) error
	// FindByID finds a board with owner and members loaded, nil if absent
	FindByID(id string) (*domain.Board, error)
	// FindDetail finds a board with members plus ordered columns and tasks
	FindDetail(id string) (*domain.Board, error)
	// FindByUser lists boards the user owns or is a member of
	FindByUser(userID string) ([]*domain.Board, error)
	// Update persists changes to an existing board
	Update(board *domain.Board) error
	// Delete removes the board, its columns, tasks and membership rows in one transaction
	Delete(id string) error
	// IsMember reports whether a membership row exists (ownership not included)
	IsMember(boardID, userID string) (bool, error)
	// Invite records the notification and, when grantMembership is set, the
	// membership row in the same transaction
	Invite(boardID string, invitee *authdomain.User, notif *notifdomain.Notification, grantMembership bool) error
}
