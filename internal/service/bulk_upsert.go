package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/oklog/ulid/v2"
)

// MenuStore is the storage collaborator. BulkUpsert is atomic per call by
// contract; the coordinator assumes no partial batch state on failure.
type MenuStore interface {
	BulkUpsert(ctx context.Context, items []models.DraftMenuItem) ([]models.MenuItem, error)
}

// AuditSink records ingestion batches. Best-effort by contract: a Record
// failure must never fail the persistence call it describes.
type AuditSink interface {
	Record(ctx context.Context, entry models.AuditEntry) error
}

// BulkUpsertCoordinator persists a validated batch as a single atomic
// write and records one audit entry per batch.
type BulkUpsertCoordinator struct {
	store MenuStore
	audit AuditSink
	log   *slog.Logger
}

// NewBulkUpsertCoordinator creates a coordinator
func NewBulkUpsertCoordinator(store MenuStore, audit AuditSink, log *slog.Logger) *BulkUpsertCoordinator {
	return &BulkUpsertCoordinator{
		store: store,
		audit: audit,
		log:   log,
	}
}

// Persist writes the batch and then attempts the audit record. The audit
// write happens for every successful persistence call; its failure is
// logged and swallowed, leaving the returned items untouched.
func (c *BulkUpsertCoordinator) Persist(ctx context.Context, drafts []models.DraftMenuItem, actorID string, menuType models.MenuType) ([]models.MenuItem, error) {
	saved, err := c.store.BulkUpsert(ctx, drafts)
	if err != nil {
		return nil, fmt.Errorf("bulk upsert: %w", err)
	}

	ids := make([]string, 0, len(saved))
	for _, item := range saved {
		ids = append(ids, item.ID)
	}

	entry := models.AuditEntry{
		ID:        ulid.Make().String(),
		ActorID:   actorID,
		MenuType:  menuType,
		Operation: models.OperationBulkUpdate,
		Changes: models.AuditChanges{
			ItemCount: len(ids),
			ItemIDs:   ids,
		},
		Timestamp: time.Now().UTC(),
	}

	if err := c.audit.Record(ctx, entry); err != nil {
		c.log.Warn("audit write failed",
			"error", err,
			"menu_type", menuType,
			"actor_id", actorID,
			"item_count", len(ids),
		)
	}

	return saved, nil
}
