package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// Booking is a time-bound service request from a customer to a photographer.
// Status drives all lifecycle invariants; timestamps are store-set.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	PhotographerID string    `bson:"photographerId" json:"photographerId"`
	UserID         string    `bson:"userId" json:"userId"`
	EventDate      time.Time `bson:"eventDate" json:"eventDate"`
	Message        string    `bson:"message,omitempty" json:"message,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsActive reports whether the booking counts toward the one-active-booking
// uniqueness constraint.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusAccepted
}

// BookingView is a booking with counterpart display fields joined in.
type BookingView struct {
	Booking
	Photographer *PhotographerSummary `json:"photographer,omitempty"`
	Customer     *UserSummary         `json:"customer,omitempty"`
}
