package booking

import (
	"time"

	bookingRepo "lenslink/database/repository/booking"
	photographerRepo "lenslink/database/repository/photographer"
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
)

// CreateBookingInput carries a customer's booking request.
type CreateBookingInput struct {
	UserID         string
	PhotographerID string
	EventDate      time.Time
	Message        string
}

// UpdateBookingInput carries a customer's content edit. Nil fields are left
// unchanged.
type UpdateBookingInput struct {
	EventDate *time.Time
	Message   *string
}

// BookingService orchestrates the booking lifecycle: actor authorization,
// existence and uniqueness checks, and status transitions.
type BookingService interface {
	// CreateBooking files a new pending booking for a customer.
	CreateBooking(in CreateBookingInput) (*models.Booking, error)
	// GetMyBookings lists the caller's bookings as a customer, newest first,
	// with photographer display fields joined in.
	GetMyBookings(userID string) ([]models.BookingView, error)
	// GetBookingRequests lists bookings targeting the caller's photographer
	// profile, newest first, with customer contact fields joined in.
	GetBookingRequests(userID string) ([]models.BookingView, error)
	// UpdateBookingStatus applies a photographer's status transition.
	UpdateBookingStatus(userID, bookingID, newStatus string) (*models.Booking, error)
	// UpdateBooking edits eventDate/message on the caller's pending booking.
	UpdateBooking(userID, bookingID string, in UpdateBookingInput) (*models.Booking, error)
	// CancelBooking hard-deletes the caller's pending booking.
	CancelBooking(userID, bookingID string) error
	// GetBookingByID returns a booking visible to either participant.
	GetBookingByID(userID, bookingID string) (*models.BookingView, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo             bookingRepo.BookingRepository
	PhotographerRepo photographerRepo.PhotographerRepository
	UserRepo         userRepo.UserRepository
	Transitions      TransitionTable
}
