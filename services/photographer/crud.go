package photographer

import (
	"fmt"
	"strings"

	photographerRepo "lenslink/database/repository/photographer"
	"lenslink/models"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxBrowseLimit = 50

// CreateProfile publishes a profile for a user account. One profile per
// account; the username is globally unique and stored lowercase.
func (s *DefaultPhotographerService) CreateProfile(in CreateProfileInput) (*models.Photographer, error) {
	logger := utils.GetLogger()

	account, err := s.UserRepo.GetByID(in.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}
	if account == nil {
		return nil, utils.NotFoundError(utils.MsgUserNotFound)
	}

	existing, err := s.Repo.GetByUserID(in.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, utils.ConflictError(utils.MsgProfileExists)
	}

	username := strings.ToLower(in.Username)
	taken, err := s.Repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken != nil {
		return nil, utils.ConflictError(utils.MsgUsernameTaken)
	}

	p := &models.Photographer{
		ID:          uuid.NewString(),
		UserID:      in.UserID,
		Username:    username,
		Bio:         in.Bio,
		Location:    in.Location,
		Specialties: in.Specialties,
		PriceFrom:   in.PriceFrom,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, fmt.Errorf("failed to create photographer profile: %w", err)
	}

	logger.Info("Photographer profile created",
		zap.String("photographerID", p.ID),
		zap.String("username", p.Username))
	return p, nil
}

// GetProfileByUserID retrieves the caller's own profile.
func (s *DefaultPhotographerService) GetProfileByUserID(userID string) (*models.Photographer, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photographer profile: %w", err)
	}
	if p == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}
	return p, nil
}

// GetProfileByUsername retrieves a public profile with owner display fields.
func (s *DefaultPhotographerService) GetProfileByUsername(username string) (*models.PhotographerSummary, error) {
	p, err := s.Repo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photographer profile: %w", err)
	}
	if p == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}

	var owner *models.UserSummary
	if account, err := s.UserRepo.GetByID(p.UserID); err == nil && account != nil {
		summary := account.Summary(true)
		owner = &summary
	}
	result := p.Summary(owner)
	return &result, nil
}

// UpdateProfile applies a patch update to the caller's profile.
func (s *DefaultPhotographerService) UpdateProfile(userID string, in UpdateProfileInput) (*models.Photographer, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photographer profile: %w", err)
	}
	if p == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}

	fields := map[string]any{}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Location != nil {
		fields["location"] = *in.Location
	}
	if in.Specialties != nil {
		fields["specialties"] = in.Specialties
	}
	if in.PriceFrom != nil {
		fields["priceFrom"] = *in.PriceFrom
	}
	if len(fields) == 0 {
		return p, nil
	}

	if err := s.Repo.UpdateFields(p.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update photographer profile: %w", err)
	}
	return s.Repo.GetByID(p.ID)
}

// Browse lists public profiles with filters and pagination.
func (s *DefaultPhotographerService) Browse(filter photographerRepo.BrowseFilter, opts photographerRepo.BrowseOptions) (*models.PhotographerPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 15
	}
	if opts.Limit > maxBrowseLimit {
		opts.Limit = maxBrowseLimit
	}

	photographers, total, err := s.Repo.Browse(filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to browse photographers: %w", err)
	}

	totalPages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return &models.PhotographerPage{
		Photographers: photographers,
		Pagination: models.Pagination{
			CurrentPage: opts.Page,
			TotalPages:  totalPages,
			TotalCount:  total,
			PerPage:     opts.Limit,
			HasNextPage: opts.Page < totalPages,
			HasPrevPage: opts.Page > 1,
		},
	}, nil
}
