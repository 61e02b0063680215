package models

import "time"

// Photographer is a publishable photographer profile owned by a user account.
// One profile per account; the username is the public handle.
type Photographer struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	Username    string    `bson:"username" json:"username"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	Specialties []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	PriceFrom   float64   `bson:"priceFrom,omitempty" json:"priceFrom,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PhotographerSummary is the display slice joined into bookings and reviews.
type PhotographerSummary struct {
	ID        string       `bson:"id" json:"id"`
	Username  string       `bson:"username" json:"username"`
	Bio       string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Location  string       `bson:"location,omitempty" json:"location,omitempty"`
	PriceFrom float64      `bson:"priceFrom,omitempty" json:"priceFrom,omitempty"`
	Owner     *UserSummary `bson:"owner,omitempty" json:"owner,omitempty"`
}

// Summary projects the display fields of a profile.
func (p *Photographer) Summary(owner *UserSummary) PhotographerSummary {
	return PhotographerSummary{
		ID:        p.ID,
		Username:  p.Username,
		Bio:       p.Bio,
		Location:  p.Location,
		PriceFrom: p.PriceFrom,
		Owner:     owner,
	}
}

// PhotographerPage is a paginated browse result.
type PhotographerPage struct {
	Photographers []Photographer `json:"photographers"`
	Pagination    Pagination     `json:"pagination"`
}

// Pagination describes the position of a page within a filtered result set.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	PerPage     int   `json:"perPage"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}
