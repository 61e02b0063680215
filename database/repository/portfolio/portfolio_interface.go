package portfolioRepo

import "lenslink/models"

// PortfolioRepository defines methods for portfolio media data access.
// Mutations are ownership-scoped: the photographer ID lives in the filter.
type PortfolioRepository interface {
	// Create inserts a single portfolio item.
	Create(item *models.PortfolioItem) error
	// CreateMany inserts a batch of portfolio items.
	CreateMany(items []models.PortfolioItem) error
	// ListByPhotographer lists a profile's items, newest first.
	ListByPhotographer(photographerID string) ([]models.PortfolioItem, error)
	// UpdateCategory changes the category of an owned item. Returns nil on no match.
	UpdateCategory(id, photographerID, category string) (*models.PortfolioItem, error)
	// Delete removes an owned item. Reports whether a record was deleted.
	Delete(id, photographerID string) (bool, error)
	// DeleteMany removes a set of owned items and returns the deleted count.
	DeleteMany(ids []string, photographerID string) (int64, error)
}
