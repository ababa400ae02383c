package handlers

import (
	"log/slog"
	"net/http"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/metrics"
)

// StatsHandler exposes ingestion timing aggregates
type StatsHandler struct {
	metrics *metrics.IngestionMetrics
	logger  *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(m *metrics.IngestionMetrics, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		metrics: m,
		logger:  logger,
	}
}

// GetStats handles GET /api/menu/ingest/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.metrics.Snapshot(), h.logger)
}
