package bookingRepo

import (
	"errors"
	"time"

	"lenslink/models"
)

// ErrStatusPrecondition is returned when a conditional status update finds
// the booking no longer in the expected previous status.
var ErrStatusPrecondition = errors.New("booking status precondition failed")

// BookingRepository defines methods for booking data access.
//
// Authorization is deliberately folded into the query filters for the
// customer-side mutations: an update or delete that does not match
// (id, userId, status=pending) is indistinguishable from a missing booking.
type BookingRepository interface {
	// GetForParticipant retrieves a booking visible to the given customer or
	// photographer profile. Returns nil when absent or not a participant.
	GetForParticipant(id, userID, photographerID string) (*models.Booking, error)
	// GetForPhotographer retrieves a booking targeting the given profile.
	GetForPhotographer(id, photographerID string) (*models.Booking, error)
	// FindActive retrieves a pending or accepted booking for the
	// (customer, photographer, eventDate) triple.
	FindActive(userID, photographerID string, eventDate time.Time) (*models.Booking, error)
	// FindCompleted retrieves any completed booking between the pair.
	FindCompleted(userID, photographerID string) (*models.Booking, error)
	// ListByUser lists a customer's bookings, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// ListByPhotographer lists bookings targeting a profile, newest first.
	ListByPhotographer(photographerID string) ([]models.Booking, error)
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// UpdateStatus persists a status change conditional on the previous
	// status still holding. Returns ErrStatusPrecondition when the booking
	// exists for the profile but the previous status no longer matches.
	UpdateStatus(id, photographerID, from, to string) (*models.Booking, error)
	// UpdatePendingContent updates eventDate/message on a booking only while
	// it is pending and owned by the given customer. Returns nil on no match.
	UpdatePendingContent(id, userID string, fields map[string]any) (*models.Booking, error)
	// DeletePending removes a pending booking owned by the given customer.
	// Reports whether a record was deleted.
	DeletePending(id, userID string) (bool, error)
}
