package repository

import "taskboard-backend/internal/board/domain"

// ColumnRepository defines the interface for column operations
type ColumnRepository interface {
	// Create stores a new column, assigning an ID
	Create(column *domain.Column) error
	// FindByID finds a column with its board and members loaded, nil if absent
	FindByID(id string) (*domain.Column, error)
	// FindByBoard lists a board's columns ordered by display order ascending
	FindByBoard(boardID string) ([]*domain.Column, error)
	// Update persists changes to an existing column
	Update(column *domain.Column) error
	// Delete removes the column and its tasks in one transaction
	Delete(id string) error
}
