package booking

import (
	"testing"
	"time"

	bookingRepo "lenslink/database/repository/booking"
	photographerRepo "lenslink/database/repository/photographer"
	"lenslink/models"
	"lenslink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory stand-in honoring the repository contract,
// including the conditional status update.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) GetForParticipant(id, userID, photographerID string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	if b.UserID != userID && (photographerID == "" || b.PhotographerID != photographerID) {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetForPhotographer(id, photographerID string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.PhotographerID != photographerID {
		return nil, nil
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) FindActive(userID, photographerID string, eventDate time.Time) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.UserID == userID && b.PhotographerID == photographerID &&
			b.EventDate.Equal(eventDate) && b.IsActive() {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindCompleted(userID, photographerID string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.UserID == userID && b.PhotographerID == photographerID &&
			b.Status == models.BookingStatusCompleted {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByPhotographer(photographerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.PhotographerID == photographerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(id, photographerID, from, to string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.PhotographerID != photographerID {
		return nil, nil
	}
	if b.Status != from {
		return nil, bookingRepo.ErrStatusPrecondition
	}
	b.Status = to
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) UpdatePendingContent(id, userID string, fields map[string]any) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID || b.Status != models.BookingStatusPending {
		return nil, nil
	}
	if d, ok := fields["eventDate"].(time.Time); ok {
		b.EventDate = d
	}
	if m, ok := fields["message"].(string); ok {
		b.Message = m
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) DeletePending(id, userID string) (bool, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID || b.Status != models.BookingStatusPending {
		return false, nil
	}
	delete(r.bookings, id)
	return true, nil
}

type fakePhotographerRepo struct {
	profiles map[string]*models.Photographer
}

func newFakePhotographerRepo(profiles ...*models.Photographer) *fakePhotographerRepo {
	r := &fakePhotographerRepo{profiles: make(map[string]*models.Photographer)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakePhotographerRepo) GetByID(id string) (*models.Photographer, error) {
	return r.profiles[id], nil
}

func (r *fakePhotographerRepo) GetByUserID(userID string) (*models.Photographer, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePhotographerRepo) GetByUsername(username string) (*models.Photographer, error) {
	for _, p := range r.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePhotographerRepo) Create(p *models.Photographer) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *fakePhotographerRepo) UpdateFields(id string, fields map[string]any) error {
	return nil
}

func (r *fakePhotographerRepo) Browse(filter photographerRepo.BrowseFilter, opts photographerRepo.BrowseOptions) ([]models.Photographer, int64, error) {
	return nil, 0, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) { return r.users[id], nil }

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmailOrUsername(email, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdateFields(id string, fields map[string]any) error { return nil }

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	photographers := newFakePhotographerRepo(
		&models.Photographer{ID: "p1", UserID: "owner1", Username: "alice-lens"},
	)
	users := newFakeUserRepo(
		&models.User{ID: "owner1", FullName: "Alice", Email: "alice@example.com"},
		&models.User{ID: "cust1", FullName: "Bob", Email: "bob@example.com"},
	)
	svc := &DefaultBookingService{
		Repo:             repo,
		PhotographerRepo: photographers,
		UserRepo:         users,
		Transitions:      DefaultTransitions(),
	}
	return svc, repo
}

func futureDate() time.Time {
	return time.Now().Add(72 * time.Hour).Truncate(time.Second)
}

func TestCreateBooking(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID:         "cust1",
		PhotographerID: "p1",
		EventDate:      futureDate(),
		Message:        "Wedding shoot",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.Equal(t, "cust1", b.UserID)
	assert.Equal(t, "p1", b.PhotographerID)
}

func TestCreateBookingPhotographerNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:         "cust1",
		PhotographerID: "nope",
		EventDate:      futureDate(),
	})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, utils.MsgPhotographerNotFound, apiErr.Message)
}

func TestCreateBookingSelfBookForbidden(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:         "owner1",
		PhotographerID: "p1",
		EventDate:      futureDate(),
	})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, utils.MsgCannotBookSelf, apiErr.Message)
}

func TestCreateBookingPastDateRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID:         "cust1",
		PhotographerID: "p1",
		EventDate:      time.Now().Add(-time.Hour),
	})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestCreateBookingDuplicateActiveConflict(t *testing.T) {
	svc, _ := newTestService()
	date := futureDate()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: date,
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: date,
	})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, utils.MsgBookingExists, apiErr.Message)

	// A different date is a different slot.
	_, err = svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: date.Add(24 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestCreateBookingAfterRejectionAllowed(t *testing.T) {
	svc, repo := newTestService()
	date := futureDate()

	first, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: date,
	})
	require.NoError(t, err)

	// A rejected booking no longer blocks the (customer, photographer, date) slot.
	repo.bookings[first.ID].Status = models.BookingStatusRejected

	_, err = svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: date,
	})
	assert.NoError(t, err)
}

func TestUpdateBookingStatusFullLifecycle(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	accepted, err := svc.UpdateBookingStatus("owner1", b.ID, models.BookingStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusAccepted, accepted.Status)

	// pending is no longer reachable.
	_, err = svc.UpdateBookingStatus("owner1", b.ID, models.BookingStatusPending)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.ElementsMatch(t,
		[]string{models.BookingStatusCompleted, models.BookingStatusRejected},
		transitionErr.Allowed)

	completed, err := svc.UpdateBookingStatus("owner1", b.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, completed.Status)

	// completed is terminal.
	_, err = svc.UpdateBookingStatus("owner1", b.ID, models.BookingStatusRejected)
	require.ErrorAs(t, err, &transitionErr)
	assert.Empty(t, transitionErr.Allowed)
}

func TestUpdateBookingStatusRequiresProfile(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus("cust1", b.ID, models.BookingStatusAccepted)

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, utils.MsgPhotographerOnly, apiErr.Message)
}

func TestUpdateBookingStatusWrongProfileNotFound(t *testing.T) {
	svc, _ := newTestService()
	svc.PhotographerRepo.(*fakePhotographerRepo).profiles["p2"] = &models.Photographer{
		ID: "p2", UserID: "owner2", Username: "carol-lens",
	}

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	// Another photographer sees someone else's booking as missing.
	_, err = svc.UpdateBookingStatus("owner2", b.ID, models.BookingStatusAccepted)

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, utils.MsgBookingNotFound, apiErr.Message)
}

func TestUpdateBookingStatusConcurrentChangeConflict(t *testing.T) {
	svc, repo := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	// Another request wins the race between the read and the conditional write.
	stale := &DefaultBookingService{
		Repo:             &racingBookingRepo{fakeBookingRepo: repo},
		PhotographerRepo: svc.PhotographerRepo,
		UserRepo:         svc.UserRepo,
		Transitions:      svc.Transitions,
	}

	_, err = stale.UpdateBookingStatus("owner1", b.ID, models.BookingStatusAccepted)

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 409, apiErr.StatusCode)
	assert.Equal(t, utils.MsgBookingStatusConflict, apiErr.Message)
}

// racingBookingRepo flips the booking to rejected after the service has read
// it but before the conditional write lands.
type racingBookingRepo struct {
	*fakeBookingRepo
}

func (r *racingBookingRepo) GetForPhotographer(id, photographerID string) (*models.Booking, error) {
	b, err := r.fakeBookingRepo.GetForPhotographer(id, photographerID)
	if b != nil {
		r.bookings[id].Status = models.BookingStatusRejected
	}
	return b, err
}

func TestUpdateBookingPendingOnly(t *testing.T) {
	svc, repo := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(), Message: "old",
	})
	require.NoError(t, err)

	newDate := futureDate().Add(24 * time.Hour)
	newMsg := "new message"
	updated, err := svc.UpdateBooking("cust1", b.ID, UpdateBookingInput{
		EventDate: &newDate,
		Message:   &newMsg,
	})
	require.NoError(t, err)
	assert.True(t, updated.EventDate.Equal(newDate))
	assert.Equal(t, "new message", updated.Message)

	// Once accepted, content edits report the booking as unmodifiable.
	repo.bookings[b.ID].Status = models.BookingStatusAccepted
	_, err = svc.UpdateBooking("cust1", b.ID, UpdateBookingInput{Message: &newMsg})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, utils.MsgBookingCannotModify, apiErr.Message)
}

func TestUpdateBookingWrongOwnerNotFound(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	msg := "hijack"
	_, err = svc.UpdateBooking("someone-else", b.ID, UpdateBookingInput{Message: &msg})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestUpdateBookingPastDateRejected(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = svc.UpdateBooking("cust1", b.ID, UpdateBookingInput{EventDate: &past})

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestCancelBookingPendingOnly(t *testing.T) {
	svc, repo := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.CancelBooking("cust1", b.ID))
	assert.Empty(t, repo.bookings)

	// A cancelled booking is gone for good.
	_, err = svc.GetBookingByID("cust1", b.ID)
	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)

	// An accepted booking cannot be cancelled.
	b2, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)
	repo.bookings[b2.ID].Status = models.BookingStatusAccepted

	err = svc.CancelBooking("cust1", b2.ID)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, utils.MsgBookingCannotCancel, apiErr.Message)
	assert.Contains(t, repo.bookings, b2.ID, "record persists unchanged")
}

func TestGetBookingByIDParticipantsOnly(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	// Customer sees it with the photographer joined in.
	view, err := svc.GetBookingByID("cust1", b.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Photographer)
	assert.Equal(t, "alice-lens", view.Photographer.Username)

	// Photographer sees it too.
	view, err = svc.GetBookingByID("owner1", b.ID)
	require.NoError(t, err)
	require.NotNil(t, view.Customer)
	assert.Equal(t, "Bob", view.Customer.FullName)

	// A third party gets not found.
	_, err = svc.GetBookingByID("stranger", b.ID)
	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestGetBookingRequestsRequiresProfile(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetBookingRequests("cust1")

	var apiErr *utils.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 403, apiErr.StatusCode)
	assert.Equal(t, utils.MsgPhotographerOnly, apiErr.Message)
}

func TestGetBookingRequestsJoinsCustomerContact(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateBooking(CreateBookingInput{
		UserID: "cust1", PhotographerID: "p1", EventDate: futureDate(),
	})
	require.NoError(t, err)

	views, err := svc.GetBookingRequests("owner1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.NotNil(t, views[0].Customer)
	assert.Equal(t, "bob@example.com", views[0].Customer.Email)
}
