package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
)

// MenuRepository defines the interface for menu item storage.
// BulkUpsert is atomic per call: either the whole batch is written or none
// of it is.
type MenuRepository interface {
	BulkUpsert(ctx context.Context, items []models.DraftMenuItem) ([]models.MenuItem, error)
	ListByCategory(ctx context.Context, category models.MenuType) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
}

// InMemoryMenuRepository implements MenuRepository with in-memory storage.
// Used in tests and when no database is configured.
type InMemoryMenuRepository struct {
	mu    sync.RWMutex
	items map[string]models.MenuItem
}

// NewInMemoryMenuRepository creates an empty in-memory menu repository
func NewInMemoryMenuRepository() *InMemoryMenuRepository {
	return &InMemoryMenuRepository{
		items: make(map[string]models.MenuItem),
	}
}

// BulkUpsert writes the batch under a single lock and stamps timestamps
func (r *InMemoryMenuRepository) BulkUpsert(ctx context.Context, drafts []models.DraftMenuItem) ([]models.MenuItem, error) {
	now := time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := make([]models.MenuItem, 0, len(drafts))
	for _, d := range drafts {
		item := models.MenuItem{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       d.Price,
			Category:    d.Category,
			Subcategory: d.Subcategory,
			Tags:        d.Tags,
			Available:   d.Available,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if existing, ok := r.items[d.ID]; ok {
			item.CreatedAt = existing.CreatedAt
		}
		r.items[d.ID] = item
		saved = append(saved, item)
	}

	return saved, nil
}

// ListByCategory returns all items in a category, oldest first
func (r *InMemoryMenuRepository) ListByCategory(ctx context.Context, category models.MenuType) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.MenuItem, 0)
	for _, item := range r.items {
		if item.Category == category {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

// GetByID returns a single item by its identifier
func (r *InMemoryMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}
