package portfolio

import (
	"fmt"

	"lenslink/models"
	"lenslink/utils"

	"github.com/google/uuid"
)

// requireProfile resolves the caller's photographer profile; portfolio
// management is photographer-only.
func (s *DefaultPortfolioService) requireProfile(userID string) (*models.Photographer, error) {
	p, err := s.PhotographerRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer profile: %w", err)
	}
	if p == nil {
		return nil, utils.ForbiddenError(utils.MsgPhotographerOnly)
	}
	return p, nil
}

// AddItem publishes a single media entry on the caller's profile.
func (s *DefaultPortfolioService) AddItem(userID string, in ItemInput) (*models.PortfolioItem, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return nil, err
	}

	item := &models.PortfolioItem{
		ID:             uuid.NewString(),
		PhotographerID: p.ID,
		MediaURL:       in.MediaURL,
		MediaType:      in.MediaType,
		Category:       in.Category,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to add portfolio item: %w", err)
	}
	return item, nil
}

// AddItems publishes a batch of media entries.
func (s *DefaultPortfolioService) AddItems(userID string, inputs []ItemInput) ([]models.PortfolioItem, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.PortfolioItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, models.PortfolioItem{
			ID:             uuid.NewString(),
			PhotographerID: p.ID,
			MediaURL:       in.MediaURL,
			MediaType:      in.MediaType,
			Category:       in.Category,
		})
	}
	if err := s.Repo.CreateMany(items); err != nil {
		return nil, fmt.Errorf("failed to add portfolio items: %w", err)
	}
	return items, nil
}

// GetMyPortfolio lists the caller's items, newest first.
func (s *DefaultPortfolioService) GetMyPortfolio(userID string) ([]models.PortfolioItem, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListByPhotographer(p.ID)
}

// GetPortfolioByUsername lists a public profile's items, newest first.
func (s *DefaultPortfolioService) GetPortfolioByUsername(username string) ([]models.PortfolioItem, error) {
	p, err := s.PhotographerRepo.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve photographer: %w", err)
	}
	if p == nil {
		return nil, utils.NotFoundError(utils.MsgPhotographerNotFound)
	}
	return s.Repo.ListByPhotographer(p.ID)
}

// UpdateItem changes the category of an owned item.
func (s *DefaultPortfolioService) UpdateItem(userID, itemID, category string) (*models.PortfolioItem, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateCategory(itemID, p.ID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to update portfolio item: %w", err)
	}
	if updated == nil {
		return nil, utils.NotFoundError(utils.MsgPortfolioItemNotFound)
	}
	return updated, nil
}

// DeleteItem removes an owned item.
func (s *DefaultPortfolioService) DeleteItem(userID, itemID string) error {
	p, err := s.requireProfile(userID)
	if err != nil {
		return err
	}

	deleted, err := s.Repo.Delete(itemID, p.ID)
	if err != nil {
		return fmt.Errorf("failed to delete portfolio item: %w", err)
	}
	if !deleted {
		return utils.NotFoundError(utils.MsgPortfolioItemNotFound)
	}
	return nil
}

// DeleteItems removes a set of owned items and returns the deleted count.
func (s *DefaultPortfolioService) DeleteItems(userID string, itemIDs []string) (int64, error) {
	p, err := s.requireProfile(userID)
	if err != nil {
		return 0, err
	}
	return s.Repo.DeleteMany(itemIDs, p.ID)
}
