package models

import "time"

// Portfolio media types.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// PortfolioItem is a single published media entry on a photographer profile.
type PortfolioItem struct {
	ID             string    `bson:"id" json:"id"`
	PhotographerID string    `bson:"photographerId" json:"photographerId"`
	MediaURL       string    `bson:"mediaUrl" json:"mediaUrl"`
	MediaType      string    `bson:"mediaType" json:"mediaType"`
	Category       string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}
