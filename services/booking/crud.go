package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "lenslink/database/repository/booking"
	"lenslink/models"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking files a new pending booking for a customer.
func (s *DefaultBookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	photographer, err := s.PhotographerRepo.GetByID(in.PhotographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer: %w", err)
	}
	if photographer == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}

	// A customer may not book the profile backed by their own account.
	if photographer.UserID == in.UserID {
		return nil, utils.ForbiddenError(utils.MsgCannotBookSelf)
	}

	if !in.EventDate.After(time.Now()) {
		return nil, utils.ValidationError("Event date must be in the future", nil)
	}

	existing, err := s.Repo.FindActive(in.UserID, in.PhotographerID, in.EventDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check active bookings: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError(utils.MsgBookingExists)
	}

	b := &models.Booking{
		ID:             uuid.NewString(),
		PhotographerID: in.PhotographerID,
		UserID:         in.UserID,
		EventDate:      in.EventDate,
		Message:        in.Message,
		Status:         models.BookingStatusPending,
	}
	if err := s.Repo.Create(b); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	logger.Info("Booking created",
		zap.String("bookingID", b.ID),
		zap.String("userID", b.UserID),
		zap.String("photographerID", b.PhotographerID))
	return b, nil
}

// GetMyBookings lists the caller's bookings as a customer, newest first.
func (s *DefaultBookingService) GetMyBookings(userID string) ([]models.BookingView, error) {
	bookings, err := s.Repo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if summary, err := s.photographerSummary(b.PhotographerID); err == nil {
			view.Photographer = summary
		}
		views = append(views, view)
	}
	return views, nil
}

// GetBookingRequests lists bookings targeting the caller's photographer
// profile, newest first.
func (s *DefaultBookingService) GetBookingRequests(userID string) ([]models.BookingView, error) {
	photographer, err := s.PhotographerRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer profile: %w", err)
	}
	if photographer == nil {
		return nil, utils.ForbiddenError(utils.MsgPhotographerOnly)
	}

	bookings, err := s.Repo.ListByPhotographer(photographer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list booking requests: %w", err)
	}

	views := make([]models.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.BookingView{Booking: b}
		if customer, err := s.UserRepo.GetByID(b.UserID); err == nil && customer != nil {
			summary := customer.Summary(true)
			view.Customer = &summary
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateBookingStatus applies a photographer's status transition. Existence
// and ownership are checked together: a booking that does not target the
// caller's profile is reported as not found, never as someone else's.
func (s *DefaultBookingService) UpdateBookingStatus(userID, bookingID, newStatus string) (*models.Booking, error) {
	logger := utils.GetLogger()

	photographer, err := s.PhotographerRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer profile: %w", err)
	}
	if photographer == nil {
		return nil, utils.ForbiddenError(utils.MsgPhotographerOnly)
	}

	b, err := s.Repo.GetForPhotographer(bookingID, photographer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundError(utils.MsgBookingNotFound)
	}

	if !s.Transitions.CanTransition(b.Status, newStatus) {
		return nil, &InvalidTransitionError{
			From:    b.Status,
			To:      newStatus,
			Allowed: s.Transitions.Allowed(b.Status),
		}
	}

	updated, err := s.Repo.UpdateStatus(bookingID, photographer.ID, b.Status, newStatus)
	if errors.Is(err, bookingRepo.ErrStatusPrecondition) {
		// Lost the read-check-write race to a concurrent transition.
		return nil, utils.ConflictError(utils.MsgBookingStatusConflict)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	if updated == nil {
		return nil, utils.NotFoundError(utils.MsgBookingNotFound)
	}

	logger.Info("Booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("from", b.Status),
		zap.String("to", newStatus))
	return updated, nil
}

// UpdateBooking edits eventDate/message on the caller's pending booking.
// Ownership and the pending state live in the store filter, so a wrong-owner
// or wrong-state request is rejected exactly like a missing booking.
func (s *DefaultBookingService) UpdateBooking(userID, bookingID string, in UpdateBookingInput) (*models.Booking, error) {
	fields := map[string]any{}
	if in.EventDate != nil {
		if !in.EventDate.After(time.Now()) {
			return nil, utils.ValidationError("Event date must be in the future", nil)
		}
		fields["eventDate"] = *in.EventDate
	}
	if in.Message != nil {
		fields["message"] = *in.Message
	}

	updated, err := s.Repo.UpdatePendingContent(bookingID, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	if updated == nil {
		return nil, utils.NotFoundError(utils.MsgBookingCannotModify)
	}
	return updated, nil
}

// CancelBooking hard-deletes the caller's pending booking.
func (s *DefaultBookingService) CancelBooking(userID, bookingID string) error {
	deleted, err := s.Repo.DeletePending(bookingID, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if !deleted {
		return utils.NotFoundError(utils.MsgBookingCannotCancel)
	}

	utils.GetLogger().Info("Booking cancelled", zap.String("bookingID", bookingID))
	return nil
}

// GetBookingByID returns a booking visible to either participant; everyone
// else gets not found.
func (s *DefaultBookingService) GetBookingByID(userID, bookingID string) (*models.BookingView, error) {
	var photographerID string
	if photographer, err := s.PhotographerRepo.GetByUserID(userID); err == nil && photographer != nil {
		photographerID = photographer.ID
	}

	b, err := s.Repo.GetForParticipant(bookingID, userID, photographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, utils.NotFoundError(utils.MsgBookingNotFound)
	}

	view := models.BookingView{Booking: *b}
	if summary, err := s.photographerSummary(b.PhotographerID); err == nil {
		view.Photographer = summary
	}
	if customer, err := s.UserRepo.GetByID(b.UserID); err == nil && customer != nil {
		summary := customer.Summary(true)
		view.Customer = &summary
	}
	return &view, nil
}

// photographerSummary joins the profile and owner display fields.
func (s *DefaultBookingService) photographerSummary(photographerID string) (*models.PhotographerSummary, error) {
	photographer, err := s.PhotographerRepo.GetByID(photographerID)
	if err != nil || photographer == nil {
		return nil, err
	}

	var owner *models.UserSummary
	if account, err := s.UserRepo.GetByID(photographer.UserID); err == nil && account != nil {
		summary := account.Summary(false)
		owner = &summary
	}
	result := photographer.Summary(owner)
	return &result, nil
}
