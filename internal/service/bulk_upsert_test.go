package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func draftBatch() []models.DraftMenuItem {
	price := 14.0
	return []models.DraftMenuItem{
		{ID: "tavern_menu-1-0", Name: "Old Fashioned", Price: &price, Category: models.MenuTypeTavernMenu, Available: true},
		{ID: "tavern_menu-1-1", Name: "Tavern Burger", Category: models.MenuTypeTavernMenu, Available: true},
	}
}

func TestBulkUpsertCoordinator_Persist(t *testing.T) {
	store := &stubStore{}
	audit := &stubAudit{}
	coordinator := NewBulkUpsertCoordinator(store, audit, testLogger())

	saved, err := coordinator.Persist(context.Background(), draftBatch(), "tester", models.MenuTypeTavernMenu)
	if err != nil {
		t.Fatalf("Persist() unexpected error = %v", err)
	}

	if len(saved) != 2 {
		t.Errorf("expected 2 saved items, got %d", len(saved))
	}
	if audit.calls != 1 {
		t.Fatalf("expected exactly one audit record, got %d", audit.calls)
	}

	entry := audit.entries[0]
	if entry.Operation != models.OperationBulkUpdate {
		t.Errorf("operation = %q, want %q", entry.Operation, models.OperationBulkUpdate)
	}
	if entry.ActorID != "tester" {
		t.Errorf("actorId = %q, want tester", entry.ActorID)
	}
	if entry.MenuType != models.MenuTypeTavernMenu {
		t.Errorf("menuType = %s, want tavern_menu", entry.MenuType)
	}
	if entry.Changes.ItemCount != 2 || len(entry.Changes.ItemIDs) != 2 {
		t.Errorf("changes = %+v, want count 2 with 2 ids", entry.Changes)
	}
	if entry.ID == "" {
		t.Error("audit entry must carry an identifier")
	}
	if entry.Timestamp.IsZero() {
		t.Error("audit entry must carry a timestamp")
	}
}

func TestBulkUpsertCoordinator_AuditFailureIsSwallowed(t *testing.T) {
	store := &stubStore{}
	audit := &stubAudit{err: errors.New("audit sink unavailable")}
	coordinator := NewBulkUpsertCoordinator(store, audit, testLogger())

	saved, err := coordinator.Persist(context.Background(), draftBatch(), "tester", models.MenuTypeTavernMenu)

	if err != nil {
		t.Errorf("audit failure must not fail the batch, got %v", err)
	}
	if len(saved) != 2 {
		t.Errorf("saved items unaffected by audit failure, got %d", len(saved))
	}
	if audit.calls != 1 {
		t.Errorf("audit still attempted exactly once, got %d", audit.calls)
	}
}

func TestBulkUpsertCoordinator_StoreFailure(t *testing.T) {
	store := &stubStore{err: errors.New("deadlock detected")}
	audit := &stubAudit{}
	coordinator := NewBulkUpsertCoordinator(store, audit, testLogger())

	_, err := coordinator.Persist(context.Background(), draftBatch(), "tester", models.MenuTypeTavernMenu)

	if err == nil {
		t.Fatal("expected error when storage write fails")
	}
	if audit.calls != 0 {
		t.Errorf("no audit record for a failed write, got %d", audit.calls)
	}
}
