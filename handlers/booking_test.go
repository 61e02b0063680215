package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lenslink/models"
	"lenslink/services/booking"
	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned responses per method.
type stubBookingService struct {
	createErr error
	created   *models.Booking
	statusErr error
	updated   *models.Booking
}

func (s *stubBookingService) CreateBooking(in booking.CreateBookingInput) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubBookingService) GetMyBookings(userID string) ([]models.BookingView, error) {
	return nil, nil
}

func (s *stubBookingService) GetBookingRequests(userID string) ([]models.BookingView, error) {
	return nil, nil
}

func (s *stubBookingService) UpdateBookingStatus(userID, bookingID, newStatus string) (*models.Booking, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return s.updated, nil
}

func (s *stubBookingService) UpdateBooking(userID, bookingID string, in booking.UpdateBookingInput) (*models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) CancelBooking(userID, bookingID string) error { return nil }

func (s *stubBookingService) GetBookingByID(userID, bookingID string) (*models.BookingView, error) {
	return nil, nil
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	// Stand-in for the auth middleware.
	r.Use(func(c *gin.Context) { c.Set("userID", "cust1") })
	r.POST("/bookings", h.CreateBookingHandler)
	r.PATCH("/bookings/:bookingId/status", h.UpdateBookingStatusHandler)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Errors     json.RawMessage `json:"errors"`
}

func TestCreateBookingHandler(t *testing.T) {
	svc := &stubBookingService{created: &models.Booking{
		ID:     "b1",
		Status: models.BookingStatusPending,
	}}
	r := newBookingRouter(svc)

	date := time.Now().Add(48 * time.Hour).Format(time.RFC3339)
	w := doJSON(t, r, http.MethodPost, "/bookings",
		`{"photographerId":"p1","eventDate":"`+date+`","message":"hi"}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Booking request sent successfully", resp.Message)
}

func TestCreateBookingHandlerMissingFields(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := doJSON(t, r, http.MethodPost, "/bookings", `{"message":"no target"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestCreateBookingHandlerBadDate(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := doJSON(t, r, http.MethodPost, "/bookings",
		`{"photographerId":"p1","eventDate":"next tuesday"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid date format", resp.Message)
}

func TestCreateBookingHandlerPlainDateAccepted(t *testing.T) {
	svc := &stubBookingService{created: &models.Booking{ID: "b1"}}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/bookings",
		`{"photographerId":"p1","eventDate":"2030-06-15"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateBookingHandlerConflict(t *testing.T) {
	svc := &stubBookingService{createErr: utils.ConflictError(utils.MsgBookingExists)}
	r := newBookingRouter(svc)

	date := time.Now().Add(48 * time.Hour).Format(time.RFC3339)
	w := doJSON(t, r, http.MethodPost, "/bookings",
		`{"photographerId":"p1","eventDate":"`+date+`"}`)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, utils.MsgBookingExists, resp.Message)
}

func TestUpdateBookingStatusHandlerInvalidTransition(t *testing.T) {
	svc := &stubBookingService{statusErr: &booking.InvalidTransitionError{
		From:    models.BookingStatusPending,
		To:      models.BookingStatusCompleted,
		Allowed: []string{models.BookingStatusAccepted, models.BookingStatusRejected},
	}}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodPatch, "/bookings/b1/status", `{"status":"completed"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Invalid status transition")

	var errs struct {
		Allowed []string `json:"allowed"`
	}
	require.NoError(t, json.Unmarshal(resp.Errors, &errs))
	assert.ElementsMatch(t, []string{"accepted", "rejected"}, errs.Allowed)
}

func TestUpdateBookingStatusHandlerUnknownStatusRejected(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := doJSON(t, r, http.MethodPatch, "/bookings/b1/status", `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBookingStatusHandlerSuccessMessage(t *testing.T) {
	svc := &stubBookingService{updated: &models.Booking{
		ID:     "b1",
		Status: models.BookingStatusAccepted,
	}}
	r := newBookingRouter(svc)

	w := doJSON(t, r, http.MethodPatch, "/bookings/b1/status", `{"status":"accepted"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Booking accepted successfully", resp.Message)
}
