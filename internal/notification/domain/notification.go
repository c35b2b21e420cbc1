package domain

import (
	"errors"
	"time"
)

// ErrNotFound covers both a missing notification and one belonging to another
// user, so a caller cannot probe for the existence of someone else's inbox rows.
var ErrNotFound = errors.New("notification not found")

// Type discriminates notification kinds
type Type string

const (
	TypeInvite Type = "INVITE"
)

// Notification is an inbox entry for a user. Immutable after creation except
// for the Read flag.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Type      Type      `json:"type" gorm:"not null"`
	Message   string    `json:"message" gorm:"not null"`
	BoardID   string    `json:"board_id,omitempty"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
