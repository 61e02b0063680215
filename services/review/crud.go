package review

import (
	"fmt"
	"math"

	"lenslink/models"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReview files a review. The customer must have a completed booking
// with the photographer, may not review themselves, and may review each
// photographer only once.
func (s *DefaultReviewService) CreateReview(in CreateReviewInput) (*models.Review, error) {
	logger := utils.GetLogger()

	photographer, err := s.PhotographerRepo.GetByID(in.PhotographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer: %w", err)
	}
	if photographer == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}

	if photographer.UserID == in.UserID {
		return nil, utils.ForbiddenError(utils.MsgCannotReviewSelf)
	}

	completed, err := s.BookingRepo.FindCompleted(in.UserID, in.PhotographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check completed bookings: %w", err)
	}
	if completed == nil {
		return nil, utils.ForbiddenError(utils.MsgReviewRequiresBooked)
	}

	existing, err := s.Repo.GetByUserAndPhotographer(in.UserID, in.PhotographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError(utils.MsgReviewExists)
	}

	review := &models.Review{
		ID:             uuid.NewString(),
		PhotographerID: in.PhotographerID,
		UserID:         in.UserID,
		Rating:         in.Rating,
		Comment:        in.Comment,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	logger.Info("Review submitted",
		zap.String("reviewID", review.ID),
		zap.String("photographerID", review.PhotographerID))
	return review, nil
}

// GetPhotographerReviews lists a profile's reviews with the average rating
// rounded to one decimal.
func (s *DefaultReviewService) GetPhotographerReviews(username string) (*models.ReviewListing, error) {
	photographer, err := s.PhotographerRepo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer: %w", err)
	}
	if photographer == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}

	reviews, err := s.Repo.ListByPhotographer(photographer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	views := make([]models.ReviewView, 0, len(reviews))
	total := 0
	for _, rev := range reviews {
		view := models.ReviewView{Review: rev}
		if author, err := s.UserRepo.GetByID(rev.UserID); err == nil && author != nil {
			summary := author.Summary(false)
			view.Author = &summary
		}
		views = append(views, view)
		total += rev.Rating
	}

	average := 0.0
	if len(reviews) > 0 {
		average = math.Round(float64(total)/float64(len(reviews))*10) / 10
	}

	return &models.ReviewListing{
		Reviews:       views,
		AverageRating: average,
		TotalReviews:  len(reviews),
	}, nil
}

// GetMyReviews lists reviews written by the caller, newest first.
func (s *DefaultReviewService) GetMyReviews(userID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
