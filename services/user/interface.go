package user

import (
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
)

// RegisterInput carries a new account registration.
type RegisterInput struct {
	Username string
	FullName string
	Email    string
	Password string
}

// AuthResponse contains the authenticated user and its token pair.
type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// UserService manages accounts and credentials.
type UserService interface {
	// Register creates a new account; email and username must be unused.
	Register(in RegisterInput) (*models.User, error)
	// Authenticate verifies credentials and issues a token pair.
	Authenticate(email, password string) (*AuthResponse, error)
	// Logout clears the stored refresh token and any cached auth session.
	Logout(userID string) error
	// GetUserByID retrieves an account by ID.
	GetUserByID(userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
