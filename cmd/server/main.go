package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BVEnterprisess/table1837-tavern-app/internal/alert"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/config"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/handlers"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/metrics"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/middleware"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/ocr"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/preprocess"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/repository"
	"github.com/BVEnterprisess/table1837-tavern-app/internal/service"
	"github.com/BVEnterprisess/table1837-tavern-app/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting tavern menu api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize storage: Postgres when configured, in-memory otherwise
	var (
		menuRepo  repository.MenuRepository
		auditRepo repository.AuditRepository
	)
	if cfg.Database.URL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.Database.URL)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := repository.ApplyMigrations(context.Background(), pool); err != nil {
			log.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}

		menuRepo = repository.NewPostgresMenuRepository(pool)
		auditRepo = repository.NewPostgresAuditRepository(pool)
		log.Info("using postgres storage")
	} else {
		menuRepo = repository.NewInMemoryMenuRepository()
		auditRepo = repository.NewInMemoryAuditRepository()
		log.Warn("DATABASE_URL not set, using in-memory storage")
	}

	// Initialize pipeline collaborators
	ocrTimeout := time.Duration(cfg.OCR.TimeoutSeconds) * time.Second
	recognizer := ocr.NewClient(cfg.OCR.APIURL, cfg.OCR.APIKey, ocrTimeout, log)
	preprocessor := preprocess.New()
	alerts := alert.NewWebhook(cfg.Alert.WebhookURL, log)
	ingestMetrics := metrics.NewIngestionMetrics()

	// Initialize services
	coordinator := service.NewBulkUpsertCoordinator(menuRepo, auditRepo, log)
	ingestionService := service.NewIngestionService(
		preprocessor,
		recognizer,
		coordinator,
		alerts,
		ingestMetrics,
		ocrTimeout,
		cfg.Upload.MaxBytes,
		log,
	)
	menuService := service.NewMenuService(menuRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	uploadHandler := handlers.NewUploadHandler(ingestionService, cfg.Upload.MaxBytes, log)
	menuHandler := handlers.NewMenuHandler(menuService, log)
	statsHandler := handlers.NewStatsHandler(ingestMetrics, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware. The request timeout must outlive the recognition
	// call, which is bounded at OCR_TIMEOUT.
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(ocrTimeout + 30*time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/menu/ingest/stats", statsHandler.GetStats)
		r.Get("/menu/{menuType}", menuHandler.ListMenu)
		r.Get("/menu/{menuType}/items/{itemId}", menuHandler.GetItem)

		// Uploads mutate the catalog and require an API key
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Post("/menu/upload", uploadHandler.UploadMenu)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
