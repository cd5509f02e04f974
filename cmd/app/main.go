package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/chris/reservation-invoices/pkg/api"
	"github.com/chris/reservation-invoices/pkg/config"
	"github.com/chris/reservation-invoices/pkg/handlers/invoices"
	"github.com/chris/reservation-invoices/pkg/invoice"
	"github.com/chris/reservation-invoices/pkg/middleware"
	s3store "github.com/chris/reservation-invoices/pkg/objectstore/s3"
	"github.com/chris/reservation-invoices/pkg/storage/postgres"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Load environment variables from .env file
	if !config.LoadDotEnv() {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	store, err := postgres.Open(cfg.DatabaseDSN(), cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("unable to open database: %v", err)
	}
	defer store.Close()

	if cfg.DBMigrate {
		if err := store.RunMigrations(ctx); err != nil {
			log.Fatalf("unable to migrate database: %v", err)
		}
		logger.Info("database migrations applied")
	}

	s3Client, err := s3store.NewClient(ctx, s3store.ClientOptions{
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		UsePathStyle:    cfg.S3UsePathStyle,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		log.Fatalf("unable to create S3 client: %v", err)
	}
	objects := s3store.New(s3Client, cfg.S3BucketName)

	// Create our handler
	handler := invoices.NewInvoicesHandler(store, objects, invoice.NewPDFRenderer(), logger)

	// Create a new Chi router
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimw.Recoverer)

	// Use the generated function to mount our handler on the router
	api.HandlerFromMux(handler, router)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", "port", cfg.HTTPPort)

	// Start the server
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
