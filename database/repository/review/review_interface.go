package reviewRepo

import "lenslink/models"

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByUserAndPhotographer retrieves a user's review of a photographer.
	GetByUserAndPhotographer(userID, photographerID string) (*models.Review, error)
	// ListByPhotographer lists a profile's reviews, newest first.
	ListByPhotographer(photographerID string) ([]models.Review, error)
	// ListByUser lists reviews written by a user, newest first.
	ListByUser(userID string) ([]models.Review, error)
}
