package repository

import "taskboard-backend/internal/board/domain"

// TaskRepository defines the interface for task operations
type TaskRepository interface {
	// Create stores a new task, assigning an ID
	Create(task *domain.Task) error
	// FindByID finds a task with its column, board and members loaded, nil if absent
	FindByID(id string) (*domain.Task, error)
	// FindByColumn lists a column's tasks ordered by display order ascending
	FindByColumn(columnID string) ([]*domain.Task, error)
	// Update persists changes to an existing task, replacing assignees when set
	Update(task *domain.Task) error
	// Delete removes the task and its assignee rows
	Delete(id string) error
	// ApplyMove writes the recomputed order for every task in the orders map
	// and points the moved task at toColumnID, all in one transaction. The
	// moved task's row is written exactly once.
	ApplyMove(taskID, toColumnID string, orders map[string]int) error
}
