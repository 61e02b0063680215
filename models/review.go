package models

import "time"

// Review is post-booking feedback from a customer about a photographer.
// One review per (user, photographer) pair.
type Review struct {
	ID             string    `bson:"id" json:"id"`
	PhotographerID string    `bson:"photographerId" json:"photographerId"`
	UserID         string    `bson:"userId" json:"userId"`
	Rating         int       `bson:"rating" json:"rating"`
	Comment        string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewView is a review with author display fields joined in.
type ReviewView struct {
	Review
	Author *UserSummary `json:"author,omitempty"`
}

// ReviewListing aggregates a photographer's reviews for display.
type ReviewListing struct {
	Reviews       []ReviewView `json:"reviews"`
	AverageRating float64      `json:"averageRating"`
	TotalReviews  int          `json:"totalReviews"`
}
