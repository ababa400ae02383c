package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/service"
)

// UploadHandler handles menu image uploads
type UploadHandler struct {
	ingestion      *service.IngestionService
	maxUploadBytes int64
	log            *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(ingestion *service.IngestionService, maxUploadBytes int64, log *slog.Logger) *UploadHandler {
	return &UploadHandler{
		ingestion:      ingestion,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// UploadMenu handles POST /api/menu/upload
// Multipart form: "image" file part and a "menuType" field.
// Responses use the ingestion envelope:
// - 200: processed (success or soft failure)
// - 400: validation failure
// - 502: recognition service unavailable
// - 500: persistence or internal failure
func (h *UploadHandler) UploadMenu(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := service.UploadRequest{
		MenuType: r.FormValue("menuType"),
		ActorID:  actorID(r),
	}

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()

		req.FileName = header.Filename
		req.ContentType = header.Header.Get("Content-Type")
		req.Size = header.Size

		// Oversized declarations are rejected on Size alone; skip the read
		if header.Size <= h.maxUploadBytes {
			data, readErr := io.ReadAll(file)
			if readErr != nil {
				h.log.Error("failed to read uploaded file", "error", readErr, "file", header.Filename)
				writeFailureEnvelope(w, http.StatusBadRequest, "Failed to read uploaded file", h.log)
				return
			}
			req.Data = data
		}
	}

	resp, err := h.ingestion.Ingest(ctx, req)
	if err != nil {
		h.handleIngestError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp, h.log)
}

func (h *UploadHandler) handleIngestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNoFile):
		writeFailureEnvelope(w, http.StatusBadRequest, "No image file supplied", h.log)
	case errors.Is(err, service.ErrFileTooLarge):
		writeFailureEnvelope(w, http.StatusBadRequest, "Image exceeds the 10MB upload limit", h.log)
	case errors.Is(err, service.ErrUnsupportedFormat):
		writeFailureEnvelope(w, http.StatusBadRequest, "Unsupported image format: use JPEG, PNG, WebP or TIFF", h.log)
	case errors.Is(err, service.ErrInvalidMenuType):
		writeFailureEnvelope(w, http.StatusBadRequest, "Unknown menu type", h.log)
	case errors.Is(err, service.ErrRecognitionFailed):
		h.log.Error("recognition failed", "error", err)
		writeFailureEnvelope(w, http.StatusBadGateway, "Text recognition service is unavailable", h.log)
	case errors.Is(err, service.ErrPersistenceFailed):
		h.log.Error("persistence failed", "error", err)
		writeFailureEnvelope(w, http.StatusInternalServerError, "Internal server error", h.log)
	default:
		h.log.Error("ingestion failed", "error", err)
		writeFailureEnvelope(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}

// actorID identifies the uploader for the audit trail. The api_key header
// doubles as the actor identity until real user auth lands upstream.
func actorID(r *http.Request) string {
	if key := r.Header.Get("api_key"); key != "" {
		return key
	}
	return "anonymous"
}
