package repository

import (
	"context"
	"sync"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository records ingestion batches. Callers treat Record as
// best-effort: failures are logged, never propagated to the write they
// describe.
type AuditRepository interface {
	Record(ctx context.Context, entry models.AuditEntry) error
}

// InMemoryAuditRepository keeps audit entries in memory
type InMemoryAuditRepository struct {
	mu      sync.Mutex
	entries []models.AuditEntry
}

// NewInMemoryAuditRepository creates an empty in-memory audit log
func NewInMemoryAuditRepository() *InMemoryAuditRepository {
	return &InMemoryAuditRepository{}
}

// Record appends the entry
func (r *InMemoryAuditRepository) Record(ctx context.Context, entry models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// Entries returns a copy of everything recorded so far
func (r *InMemoryAuditRepository) Entries() []models.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AuditEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// PostgresAuditRepository writes audit entries to the menu_audit_log table
type PostgresAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditRepository creates a Postgres-backed audit log
func NewPostgresAuditRepository(pool *pgxpool.Pool) *PostgresAuditRepository {
	return &PostgresAuditRepository{pool: pool}
}

// Record inserts one audit row
func (r *PostgresAuditRepository) Record(ctx context.Context, entry models.AuditEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO menu_audit_log (id, actor_id, menu_type, operation, item_count, item_ids, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.ActorID, entry.MenuType, entry.Operation,
		entry.Changes.ItemCount, entry.Changes.ItemIDs, entry.Timestamp,
	)
	return err
}
