package handlers

import (
	"errors"
	"net/http"
	"time"

	"lenslink/services/booking"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// parseEventDate accepts RFC 3339 timestamps or plain calendar dates.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

type createBookingRequest struct {
	PhotographerID string `json:"photographerId" binding:"required"`
	EventDate      string `json:"eventDate" binding:"required"`
	Message        string `json:"message"`
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid booking payload", err.Error()))
		return
	}

	eventDate, err := parseEventDate(req.EventDate)
	if err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid date format", nil))
		return
	}

	b, err := h.Service.CreateBooking(booking.CreateBookingInput{
		UserID:         userID,
		PhotographerID: req.PhotographerID,
		EventDate:      eventDate,
		Message:        req.Message,
	})
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, b, "Booking request sent successfully")
}

// GetMyBookingsHandler handles GET /bookings/me.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	views, err := h.Service.GetMyBookings(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, views, "Bookings fetched successfully")
}

// GetBookingRequestsHandler handles GET /bookings/requests.
func (h *BookingHandler) GetBookingRequestsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	views, err := h.Service.GetBookingRequests(userID)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, views, "Booking requests fetched successfully")
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected completed"`
}

// UpdateBookingStatusHandler handles PATCH /bookings/:bookingId/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Status must be 'accepted', 'rejected', or 'completed'", err.Error()))
		return
	}

	b, err := h.Service.UpdateBookingStatus(userID, c.Param("bookingId"), req.Status)
	if err != nil {
		var transitionErr *booking.InvalidTransitionError
		if errors.As(err, &transitionErr) {
			utils.JSONError(c, &utils.ApiError{
				StatusCode: http.StatusBadRequest,
				Message:    transitionErr.Error(),
				Errs:       gin.H{"allowed": transitionErr.Allowed},
			})
			return
		}
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, b, "Booking "+req.Status+" successfully")
}

type updateBookingRequest struct {
	EventDate *string `json:"eventDate"`
	Message   *string `json:"message"`
}

// UpdateBookingHandler handles PATCH /bookings/:bookingId.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ValidationError("Invalid booking payload", err.Error()))
		return
	}

	in := booking.UpdateBookingInput{Message: req.Message}
	if req.EventDate != nil {
		eventDate, err := parseEventDate(*req.EventDate)
		if err != nil {
			utils.JSONError(c, utils.ValidationError("Invalid date format", nil))
			return
		}
		in.EventDate = &eventDate
	}

	b, err := h.Service.UpdateBooking(userID, c.Param("bookingId"), in)
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, b, "Booking updated successfully")
}

// CancelBookingHandler handles DELETE /bookings/:bookingId.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Service.CancelBooking(userID, c.Param("bookingId")); err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, gin.H{}, "Booking cancelled successfully")
}

// GetBookingByIDHandler handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	view, err := h.Service.GetBookingByID(userID, c.Param("bookingId"))
	if err != nil {
		utils.JSONError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, view, "Booking fetched successfully")
}
