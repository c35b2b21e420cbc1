package repository

import (
	"errors"
	"time"

	"taskboard-backend/internal/board/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// taskRepository implements TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new instance of taskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{
		db: db,
	}
}

func (r *taskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Tags == nil {
		task.Tags = domain.StringArray{}
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Omit("Column").Create(task).Error
}

// FindByID loads the column, board and members chain so callers can resolve
// the owning board and authorize without further queries.
func (r *taskRepository) FindByID(id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Preload("Column.Board.Members").Preload("Assignees").
		Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) FindByColumn(columnID string) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Preload("Assignees").
		Where("column_id = ?", columnID).Order("display_order ASC").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if task.Tags == nil {
			task.Tags = domain.StringArray{}
		}
	}
	return tasks, nil
}

func (r *taskRepository) Update(task *domain.Task) error {
	task.UpdatedAt = time.Now()
	if task.Tags == nil {
		task.Tags = domain.StringArray{}
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Column", "Assignees").Save(task).Error; err != nil {
			return err
		}
		if task.Assignees != nil {
			return tx.Model(task).Association("Assignees").Replace(task.Assignees)
		}
		return nil
	})
}

func (r *taskRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_assignees WHERE task_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Task{}).Error
	})
}

func (r *taskRepository) ApplyMove(taskID, toColumnID string, orders map[string]int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for id, order := range orders {
			if id == taskID {
				// Column and final order land in a single write
				err := tx.Model(&domain.Task{}).Where("id = ?", id).
					Updates(map[string]interface{}{
						"column_id":     toColumnID,
						"display_order": order,
						"updated_at":    time.Now(),
					}).Error
				if err != nil {
					return err
				}
				continue
			}
			err := tx.Model(&domain.Task{}).Where("id = ?", id).
				Update("display_order", order).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
