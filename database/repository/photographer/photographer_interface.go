package photographerRepo

import "lenslink/models"

// BrowseFilter narrows a public photographer listing.
type BrowseFilter struct {
	Location  string
	Specialty string
	MinPrice  float64
	MaxPrice  float64
	Search    string
}

// BrowseOptions controls pagination and ordering of a browse query.
type BrowseOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" or "desc"
}

// PhotographerRepository defines methods for photographer profile data access.
type PhotographerRepository interface {
	// GetByID retrieves a profile by its unique ID.
	GetByID(id string) (*models.Photographer, error)
	// GetByUserID retrieves the profile owned by the given user account.
	GetByUserID(userID string) (*models.Photographer, error)
	// GetByUsername retrieves a profile by its public handle.
	GetByUsername(username string) (*models.Photographer, error)
	// Create inserts a new profile record.
	Create(p *models.Photographer) error
	// UpdateFields applies a partial field update to a profile record.
	UpdateFields(id string, fields map[string]any) error
	// Browse lists profiles matching the filter, paginated, with the total count.
	Browse(filter BrowseFilter, opts BrowseOptions) ([]models.Photographer, int64, error)
}
