package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error("failed to encode error response", "error", err)
	}
}

// writeFailureEnvelope writes an error outcome in the upload envelope shape
func writeFailureEnvelope(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, &models.IngestResponse{
		Success: false,
		Message: message,
	}, logger)
}
