package portfolio

import (
	photographerRepo "lenslink/database/repository/photographer"
	portfolioRepo "lenslink/database/repository/portfolio"
	"lenslink/models"
)

// ItemInput carries a single portfolio media entry.
type ItemInput struct {
	MediaURL  string
	MediaType string
	Category  string
}

// PortfolioService manages a photographer's published media.
type PortfolioService interface {
	// AddItem publishes a single media entry on the caller's profile.
	AddItem(userID string, in ItemInput) (*models.PortfolioItem, error)
	// AddItems publishes a batch of media entries.
	AddItems(userID string, items []ItemInput) ([]models.PortfolioItem, error)
	// GetMyPortfolio lists the caller's items, newest first.
	GetMyPortfolio(userID string) ([]models.PortfolioItem, error)
	// GetPortfolioByUsername lists a public profile's items, newest first.
	GetPortfolioByUsername(username string) ([]models.PortfolioItem, error)
	// UpdateItem changes the category of an owned item.
	UpdateItem(userID, itemID, category string) (*models.PortfolioItem, error)
	// DeleteItem removes an owned item.
	DeleteItem(userID, itemID string) error
	// DeleteItems removes a set of owned items and returns the deleted count.
	DeleteItems(userID string, itemIDs []string) (int64, error)
}

// DefaultPortfolioService is the production implementation.
type DefaultPortfolioService struct {
	Repo             portfolioRepo.PortfolioRepository
	PhotographerRepo photographerRepo.PhotographerRepository
}
