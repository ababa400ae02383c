package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/metrics"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/models"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/ocr"
)

var (
	ErrNoFile            = errors.New("no image file supplied")
	ErrFileTooLarge      = errors.New("image exceeds maximum upload size")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrInvalidMenuType   = errors.New("invalid menu type")
	ErrRecognitionFailed = errors.New("text recognition failed")
	ErrPersistenceFailed = errors.New("failed to save menu items")
)

// allowedContentTypes for menu uploads
var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/tiff": true,
}

// softFailureSuggestions returned when recognition yields no usable items
var softFailureSuggestions = []string{
	"Ensure the menu text is clearly visible and in focus",
	"Check that the image is oriented correctly",
	"Try a higher resolution photo of the menu",
}

// Preprocessor normalizes an image before recognition
type Preprocessor interface {
	Process(ctx context.Context, data []byte) ([]byte, error)
}

// Recognizer is the external text-recognition collaborator
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (*ocr.Result, error)
}

// AlertSink notifies operators of unexpected failures. Best-effort: the
// ingestion outcome never depends on alert delivery.
type AlertSink interface {
	Notify(ctx context.Context, message, severity string) error
}

// UploadRequest carries one menu image upload through validation
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
	MenuType    string
	ActorID     string
}

// IngestionService runs the OCR ingestion pipeline for one upload:
// validation, preprocessing, recognition under a bounded timeout, parsing,
// atomic persistence with audit, and response shaping.
type IngestionService struct {
	preprocessor   Preprocessor
	recognizer     Recognizer
	coordinator    *BulkUpsertCoordinator
	alerts         AlertSink
	metrics        *metrics.IngestionMetrics
	ocrTimeout     time.Duration
	maxUploadBytes int64
	log            *slog.Logger
}

// NewIngestionService creates the ingestion pipeline
func NewIngestionService(
	preprocessor Preprocessor,
	recognizer Recognizer,
	coordinator *BulkUpsertCoordinator,
	alerts AlertSink,
	m *metrics.IngestionMetrics,
	ocrTimeout time.Duration,
	maxUploadBytes int64,
	log *slog.Logger,
) *IngestionService {
	if ocrTimeout <= 0 {
		ocrTimeout = 2 * time.Minute
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &IngestionService{
		preprocessor:   preprocessor,
		recognizer:     recognizer,
		coordinator:    coordinator,
		alerts:         alerts,
		metrics:        m,
		ocrTimeout:     ocrTimeout,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// Ingest processes one uploaded menu image. Validation failures return a
// sentinel error before any external call is made. Zero extracted items is
// a soft failure: a Success=false response with suggestions, not an error.
func (s *IngestionService) Ingest(ctx context.Context, req UploadRequest) (*models.IngestResponse, error) {
	menuType, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	processed, err := s.preprocessor.Process(ctx, req.Data)
	if err != nil {
		return nil, fmt.Errorf("preprocess image: %w", err)
	}

	recCtx, cancel := context.WithTimeout(ctx, s.ocrTimeout)
	defer cancel()

	result, err := s.recognizer.Recognize(recCtx, processed)
	if err != nil {
		s.notifyAlert(fmt.Sprintf("menu recognition failed for %s upload: %v", menuType, err), "critical")
		return nil, fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	drafts := ocr.ParseResult(result, menuType, time.Now())

	if len(drafts) == 0 {
		s.log.Info("no menu items extracted",
			"menu_type", menuType,
			"file", req.FileName,
			"text_length", len(result.Text),
		)
		s.observe(start, 0, true)
		return &models.IngestResponse{
			Success:       false,
			Message:       "No menu items could be extracted from the image",
			Suggestions:   softFailureSuggestions,
			ExtractedText: result.Text,
		}, nil
	}

	saved, err := s.coordinator.Persist(ctx, drafts, req.ActorID, menuType)
	if err != nil {
		s.notifyAlert(fmt.Sprintf("menu persistence failed for %s upload: %v", menuType, err), "critical")
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	items := make([]models.IngestItemSummary, 0, len(saved))
	for _, item := range saved {
		items = append(items, models.IngestItemSummary{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Category: item.Category,
		})
	}

	elapsed := time.Since(start)
	s.observe(start, len(saved), false)

	s.log.Info("menu ingested",
		"menu_type", menuType,
		"items_processed", len(drafts),
		"items_saved", len(saved),
		"duration_ms", elapsed.Milliseconds(),
	)

	return &models.IngestResponse{
		Success: true,
		Message: fmt.Sprintf("Successfully processed %d menu items", len(saved)),
		Data: &models.IngestData{
			MenuType:         menuType,
			ItemsProcessed:   len(drafts),
			ItemsSaved:       len(saved),
			ProcessingTimeMs: elapsed.Milliseconds(),
			Items:            items,
		},
	}, nil
}

// validate checks the upload in order: file present, size, content type,
// menu type. Recognition is never invoked for an invalid request.
func (s *IngestionService) validate(req UploadRequest) (models.MenuType, error) {
	if req.Size == 0 && len(req.Data) == 0 {
		return "", ErrNoFile
	}
	if req.Size > s.maxUploadBytes {
		return "", ErrFileTooLarge
	}
	if !allowedContentTypes[req.ContentType] {
		return "", ErrUnsupportedFormat
	}
	menuType, ok := models.ParseMenuType(req.MenuType)
	if !ok {
		return "", ErrInvalidMenuType
	}
	return menuType, nil
}

// notifyAlert fires an operator alert and swallows delivery failures
func (s *IngestionService) notifyAlert(message, severity string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.alerts.Notify(ctx, message, severity); err != nil {
		s.log.Warn("alert delivery failed", "error", err, "message", message)
	}
}

func (s *IngestionService) observe(start time.Time, saved int, soft bool) {
	if s.metrics != nil {
		s.metrics.Observe(time.Since(start), saved, soft)
	}
}
