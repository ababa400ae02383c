package service

import (
	"context"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/repository"
)

// MenuService handles the read side of the menu catalog
type MenuService struct {
	repo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository) *MenuService {
	return &MenuService{
		repo: repo,
	}
}

// ListByCategory returns all persisted items for one menu type
func (s *MenuService) ListByCategory(ctx context.Context, category models.MenuType) ([]models.MenuItem, error) {
	return s.repo.ListByCategory(ctx, category)
}

// GetItem returns a single persisted item by ID
func (s *MenuService) GetItem(ctx context.Context, id string) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}
