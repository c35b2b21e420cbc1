package repository

import (
	"errors"
	"time"

	authdomain "taskboard-backend/internal/auth/domain"
	"taskboard-backend/internal/board/domain"
	notifdomain "taskboard-backend/internal/notification/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// boardRepository implements BoardRepository interface
type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of boardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{
		db: db,
	}
}

func (r *boardRepository) Create(board *domain.Board) error {
	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	board.CreatedAt = time.Now()
	board.UpdatedAt = time.Now()
	return r.db.Create(board).Error
}

func (r *boardRepository) FindByID(id string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.Preload("Members").Where("id = ?", id).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindDetail(id string) (*domain.Board, error) {
	var board domain.Board
	err := r.db.
		Preload("Members").
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Columns.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Columns.Tasks.Assignees").
		Where("id = ?", id).First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindByUser(userID string) ([]*domain.Board, error) {
	var boards []*domain.Board
	err := r.db.Preload("Members").
		Where("owner_id = ? OR id IN (?)",
			userID,
			r.db.Table("board_members").Select("board_id").Where("user_id = ?", userID),
		).
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepository) Update(board *domain.Board) error {
	board.UpdatedAt = time.Now()
	return r.db.Omit("Members", "Columns").Save(board).Error
}

// Delete removes tasks before columns to satisfy referential constraints,
// plus the weak-reference rows (assignees, membership) that have no cascade.
func (r *boardRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var columnIDs []string
		if err := tx.Model(&domain.Column{}).Where("board_id = ?", id).Pluck("id", &columnIDs).Error; err != nil {
			return err
		}
		if len(columnIDs) > 0 {
			var taskIDs []string
			if err := tx.Model(&domain.Task{}).Where("column_id IN ?", columnIDs).Pluck("id", &taskIDs).Error; err != nil {
				return err
			}
			if len(taskIDs) > 0 {
				if err := tx.Exec("DELETE FROM task_assignees WHERE task_id IN ?", taskIDs).Error; err != nil {
					return err
				}
				if err := tx.Where("column_id IN ?", columnIDs).Delete(&domain.Task{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("board_id = ?", id).Delete(&domain.Column{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM board_members WHERE board_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&domain.Board{}).Error
	})
}

func (r *boardRepository) IsMember(boardID, userID string) (bool, error) {
	var count int64
	err := r.db.Table("board_members").
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *boardRepository) Invite(boardID string, invitee *authdomain.User, notif *notifdomain.Notification, grantMembership bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if grantMembership {
			board := domain.Board{ID: boardID}
			if err := tx.Model(&board).Association("Members").Append(invitee); err != nil {
				return err
			}
		}
		if notif.ID == "" {
			notif.ID = uuid.New().String()
		}
		notif.CreatedAt = time.Now()
		return tx.Create(notif).Error
	})
}
