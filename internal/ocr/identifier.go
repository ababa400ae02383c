package ocr

import (
	"fmt"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/google/uuid"
)

// Allocator produces item identifiers scoped to a single ingestion batch:
// category, batch timestamp and position within the batch. Identifiers are
// unique within the batch only; re-ingesting the same menu image produces
// entirely new identifiers.
type Allocator struct {
	category models.MenuType
	batchMs  int64
}

// NewAllocator creates an allocator for one ingestion batch
func NewAllocator(category models.MenuType, batch time.Time) *Allocator {
	return &Allocator{
		category: category,
		batchMs:  batch.UnixMilli(),
	}
}

// ItemID returns the identifier for the item at the given batch position
func (a *Allocator) ItemID(position int) string {
	return fmt.Sprintf("%s-%d-%d", a.category, a.batchMs, position)
}

// StructuredItemID is ItemID plus a short random suffix. Structured batches
// carry upstream-assigned positions, so the suffix guards against collision
// with a simultaneous batch sharing the same millisecond timestamp.
func (a *Allocator) StructuredItemID(position int) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%d-%d-%s", a.category, a.batchMs, position, suffix)
}
