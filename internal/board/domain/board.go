package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	authdomain "taskboard-backend/internal/auth/domain"
)

// StringArray is a custom type to handle JSON array in GORM
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*a = []string{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Board is a shared workspace owned by one user and accessible to its members
type Board struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	Name      string            `json:"name" gorm:"not null"`
	OwnerID   string            `json:"owner_id" gorm:"index;not null"`
	Members   []authdomain.User `json:"members" gorm:"many2many:board_members"`
	Columns   []*Column         `json:"columns,omitempty" gorm:"foreignKey:BoardID"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// HasMember reports whether userID may read or mutate the board.
// The owner counts as a member even when absent from the members set.
func (b *Board) HasMember(userID string) bool {
	if b.OwnerID == userID {
		return true
	}
	for i := range b.Members {
		if b.Members[i].ID == userID {
			return true
		}
	}
	return false
}

// Column is an ordered lane within a board
type Column struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:display_order;not null;default:0"`
	BoardID   string    `json:"board_id" gorm:"index;not null"`
	Board     *Board    `json:"-" gorm:"foreignKey:BoardID"`
	Tasks     []*Task   `json:"tasks,omitempty" gorm:"foreignKey:ColumnID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Task is a unit of work within a column
type Task struct {
	ID          string            `json:"id" gorm:"primaryKey"`
	Title       string            `json:"title" gorm:"not null"`
	Description string            `json:"description,omitempty"`
	Order       int               `json:"order" gorm:"column:display_order;not null;default:0"`
	ColumnID    string            `json:"column_id" gorm:"index;not null"`
	Column      *Column           `json:"-" gorm:"foreignKey:ColumnID"`
	Tags        StringArray       `json:"tags" gorm:"type:text"`
	Assignees   []authdomain.User `json:"assignees,omitempty" gorm:"many2many:task_assignees"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
