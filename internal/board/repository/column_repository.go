package repository

import (
	"errors"
	"time"

	"taskboard-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// columnRepository implements ColumnRepository interface
type columnRepository struct {
	db *gorm.DB
}

// NewColumnRepository creates a new instance of columnRepository
func NewColumnRepository(db *gorm.DB) ColumnRepository {
	return &columnRepository{
		db: db,
	}
}

func (r *columnRepository) Create(column *domain.Column) error {
	if column.ID == "" {
		column.ID = uuid.New().String()
	}
	column.CreatedAt = time.Now()
	column.UpdatedAt = time.Now()
	return r.db.Create(column).Error
}

// FindByID loads the parent board and its members so callers can authorize
// without a second round-trip.
func (r *columnRepository) FindByID(id string) (*domain.Column, error) {
	var column domain.Column
	err := r.db.Preload("Board.Members").Where("id = ?", id).First(&column).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

func (r *columnRepository) FindByBoard(boardID string) ([]*domain.Column, error) {
	var columns []*domain.Column
	err := r.db.Where("board_id = ?", boardID).Order("display_order ASC").Find(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

func (r *columnRepository) Update(column *domain.Column) error {
	column.UpdatedAt = time.Now()
	return r.db.Omit("Board", "Tasks").Save(column).Error
}

// Delete removes the column's tasks before the column itself. Remaining
// sibling columns keep their orders; gaps are recomputed on the next append.
func (r *columnRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taskIDs []string
		if err := tx.Model(&domain.Task{}).Where("column_id = ?", id).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if len(taskIDs) > 0 {
			if err := tx.Exec("DELETE FROM task_assignees WHERE task_id IN ?", taskIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("column_id = ?", id).Delete(&domain.Task{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&domain.Column{}).Error
	})
}
