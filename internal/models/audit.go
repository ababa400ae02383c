package models

import "time"

// AuditChanges summarizes what a batch wrote
type AuditChanges struct {
	ItemCount int      `json:"itemCount"`
	ItemIDs   []string `json:"itemIds"`
}

// AuditEntry records one ingestion batch. Writing it is best-effort:
// a failed audit write never rolls back the batch it describes.
type AuditEntry struct {
	ID        string       `json:"id"`
	ActorID   string       `json:"actorId"`
	MenuType  MenuType     `json:"menuType"`
	Operation string       `json:"operation"`
	Changes   AuditChanges `json:"changes"`
	Timestamp time.Time    `json:"timestamp"`
}

// OperationBulkUpdate is the operation recorded for ingestion batches
const OperationBulkUpdate = "bulk_update"
