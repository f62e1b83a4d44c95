package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
type User struct {
	ID        int64     `json:"id"`         // Unique identifier
	Name      string    `json:"name"`       // Display name
	Username  string    `json:"username"`   // Login username (unique)
	CreatedAt time.Time `json:"created_at"` // Account creation timestamp
	UpdatedAt time.Time `json:"updated_at"` // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	GetByIDs(ctx context.Context, userIDs []int64) ([]User, error)
}

// UserUsecase covers the profile operations this service owns.
type UserUsecase interface {
	GetByID(ctx context.Context, id int64) (User, error)
	// Rename changes the display name; the cached copy is invalidated.
	Rename(ctx context.Context, id int64, name string) (User, error)
}
