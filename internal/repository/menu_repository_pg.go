package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMenuRepository implements MenuRepository on a pgx connection pool
type PostgresMenuRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMenuRepository creates a Postgres-backed menu repository
func NewPostgresMenuRepository(pool *pgxpool.Pool) *PostgresMenuRepository {
	return &PostgresMenuRepository{pool: pool}
}

const upsertItemSQL = `
	INSERT INTO menu_items (id, name, description, price, category, subcategory, tags, available, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
	ON CONFLICT (id) DO UPDATE SET
		name        = EXCLUDED.name,
		description = EXCLUDED.description,
		price       = EXCLUDED.price,
		category    = EXCLUDED.category,
		subcategory = EXCLUDED.subcategory,
		tags        = EXCLUDED.tags,
		available   = EXCLUDED.available,
		updated_at  = now()
	RETURNING created_at, updated_at`

// BulkUpsert writes the whole batch inside one transaction so a failing
// row aborts the batch rather than leaving partial state
func (r *PostgresMenuRepository) BulkUpsert(ctx context.Context, drafts []models.DraftMenuItem) ([]models.MenuItem, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, d := range drafts {
		batch.Queue(upsertItemSQL,
			d.ID, d.Name, d.Description, d.Price, d.Category, d.Subcategory, d.Tags, d.Available,
		)
	}

	results := tx.SendBatch(ctx, batch)

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
		}
		if err := results.QueryRow().Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
			results.Close()
			return nil, fmt.Errorf("upsert item %s: %w", d.ID, err)
		}
		saved = append(saved, item)
	}

	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("close batch: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return saved, nil
}

// ListByCategory returns all items in a category, oldest first
func (r *PostgresMenuRepository) ListByCategory(ctx context.Context, category models.MenuType) ([]models.MenuItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, price, category, subcategory, tags, available, created_at, updated_at
		FROM menu_items
		WHERE category = $1
		ORDER BY created_at, id`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price,
			&item.Category, &item.Subcategory, &item.Tags, &item.Available,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID returns a single item by its identifier
func (r *PostgresMenuRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, price, category, subcategory, tags, available, created_at, updated_at
		FROM menu_items
		WHERE id = $1`,
		id,
	).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.Subcategory, &item.Tags, &item.Available,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}
