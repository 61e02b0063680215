package photographer

import (
	photographerRepo "lenslink/database/repository/photographer"
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
)

// CreateProfileInput carries a new photographer profile.
type CreateProfileInput struct {
	UserID      string
	Username    string
	Bio         string
	Location    string
	Specialties []string
	PriceFrom   float64
}

// UpdateProfileInput carries a patch-style profile update. Nil fields are
// left unchanged.
type UpdateProfileInput struct {
	Bio         *string
	Location    *string
	Specialties []string
	PriceFrom   *float64
}

// PhotographerService manages photographer profile publishing.
type PhotographerService interface {
	// CreateProfile publishes a profile for a user account.
	CreateProfile(in CreateProfileInput) (*models.Photographer, error)
	// GetProfileByUserID retrieves the caller's own profile.
	GetProfileByUserID(userID string) (*models.Photographer, error)
	// GetProfileByUsername retrieves a public profile with owner fields joined.
	GetProfileByUsername(username string) (*models.PhotographerSummary, error)
	// UpdateProfile applies a patch update to the caller's profile.
	UpdateProfile(userID string, in UpdateProfileInput) (*models.Photographer, error)
	// Browse lists public profiles with filters and pagination.
	Browse(filter photographerRepo.BrowseFilter, opts photographerRepo.BrowseOptions) (*models.PhotographerPage, error)
}

// DefaultPhotographerService is the production implementation.
type DefaultPhotographerService struct {
	Repo     photographerRepo.PhotographerRepository
	UserRepo userRepo.UserRepository
}
