package repository

import authdomain "taskboard-backend/internal/auth/domain"

// UserRepository defines the interface for user and refresh token persistence
type UserRepository interface {
	// Create stores a new user, assigning an ID
	Create(user *authdomain.User) error
	// FindByEmail finds a user by email, nil if absent
	FindByEmail(email string) (*authdomain.User, error)
	// FindByID finds a user by ID, nil if absent
	FindByID(id string) (*authdomain.User, error)
	// Update persists changes to an existing user
	Update(user *authdomain.User) error
	// SaveRefreshToken stores a refresh token
	SaveRefreshToken(token *authdomain.RefreshToken) error
	// FindRefreshToken finds a stored refresh token, nil if absent
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	// DeleteRefreshToken removes a refresh token
	DeleteRefreshToken(token string) error
}
