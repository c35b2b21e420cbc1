package usecase

import (
	"taskboard-backend/internal/board/domain"
	"taskboard-backend/internal/board/dto"
)

// InviteSelector identifies an invitee by exactly one of email or user ID
type InviteSelector interface {
	isInviteSelector()
}

// EmailSelector selects the invitee by email
type EmailSelector string

func (EmailSelector) isInviteSelector() {}

// UserIDSelector selects the invitee by user ID
type UserIDSelector string

func (UserIDSelector) isInviteSelector() {}

// BoardUsecase defines the board, column and task operations exposed to delivery
type BoardUsecase interface {
	ListBoards(userID string) ([]*domain.Board, error)
	CreateBoard(userID, name string) (*domain.Board, error)
	GetBoard(userID, boardID string) (*domain.Board, error)
	RenameBoard(userID, boardID, name string) (*domain.Board, error)
	DeleteBoard(userID, boardID string) error
	// InviteMember resolves the invitee, grants membership idempotently and
	// always records an INVITE notification
	InviteMember(userID, boardID string, selector InviteSelector) error

	CreateColumn(userID, boardID, title string) (*domain.Column, error)
	RenameColumn(userID, columnID, title string) (*domain.Column, error)
	DeleteColumn(userID, columnID string) error

	CreateTask(userID, columnID string, req *dto.CreateTaskRequest) (*domain.Task, error)
	UpdateTask(userID, taskID string, req *dto.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(userID, taskID string) error
	// MoveTask reorders a task within its column or moves it across columns,
	// reindexing every affected scope to 0..n-1 in one transaction
	MoveTask(userID string, req *dto.MoveTaskRequest) error
}
