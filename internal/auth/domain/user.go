package domain

import "time"

type User struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-"` // Never return password in JSON; empty for OAuth users
	Name       string    `json:"name" gorm:"not null"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Provider   string    `json:"provider"` // "email" or "google"
	ExternalID string    `json:"-"`        // OAuth subject identifier, empty for email accounts
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
