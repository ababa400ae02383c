package models

// IngestItemSummary is the per-item slice of the upload response
type IngestItemSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"`
	Category MenuType `json:"category"`
}

// IngestData is the payload of a successful ingestion
type IngestData struct {
	MenuType         MenuType            `json:"menuType"`
	ItemsProcessed   int                 `json:"itemsProcessed"`
	ItemsSaved       int                 `json:"itemsSaved"`
	ProcessingTimeMs int64               `json:"processingTimeMs"`
	Items            []IngestItemSummary `json:"items"`
}

// IngestResponse is the upload response envelope. A soft failure (zero
// items extracted) sets Success=false and carries Suggestions and, when
// available, the raw ExtractedText; it is a normal outcome, not an error.
type IngestResponse struct {
	Success       bool        `json:"success"`
	Data          *IngestData `json:"data,omitempty"`
	Message       string      `json:"message"`
	Suggestions   []string    `json:"suggestions,omitempty"`
	ExtractedText string      `json:"extractedText,omitempty"`
}
