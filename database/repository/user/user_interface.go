package userRepo

import "lenslink/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(email string) (*models.User, error)
	// GetByEmailOrUsername retrieves a user matching either field.
	GetByEmailOrUsername(email, username string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateFields applies a partial field update to a user record.
	UpdateFields(id string, fields map[string]any) error
	// Delete removes a user record by its ID.
	Delete(id string) error
}
