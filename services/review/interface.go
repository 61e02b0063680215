package review

import (
	bookingRepo "lenslink/database/repository/booking"
	photographerRepo "lenslink/database/repository/photographer"
	reviewRepo "lenslink/database/repository/review"
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
)

// CreateReviewInput carries a customer's review submission.
type CreateReviewInput struct {
	UserID         string
	PhotographerID string
	Rating         int
	Comment        string
}

// ReviewService manages post-booking feedback.
type ReviewService interface {
	// CreateReview files a review; requires a completed booking with the
	// photographer and at most one review per pair.
	CreateReview(in CreateReviewInput) (*models.Review, error)
	// GetPhotographerReviews lists a profile's reviews with the average rating.
	GetPhotographerReviews(username string) (*models.ReviewListing, error)
	// GetMyReviews lists reviews written by the caller, newest first.
	GetMyReviews(userID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo             reviewRepo.ReviewRepository
	PhotographerRepo photographerRepo.PhotographerRepository
	BookingRepo      bookingRepo.BookingRepository
	UserRepo         userRepo.UserRepository
}
