package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/chris/reservation-invoices/pkg/config"
	"github.com/chris/reservation-invoices/pkg/handlers/invoices"
	"github.com/chris/reservation-invoices/pkg/invoice"
	s3store "github.com/chris/reservation-invoices/pkg/objectstore/s3"
	"github.com/chris/reservation-invoices/pkg/storage/postgres"
)

func main() {
	// Load environment variables from .env file (useful for local testing).
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

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// The pool and the S3 client are built once per execution environment and
	// reused by every invocation it serves.
	store, err := postgres.Open(cfg.DatabaseDSN(), cfg.DBMaxOpenConns)
	if err != nil {
		log.Fatalf("unable to open database: %v", err)
	}

	s3Client, err := s3store.NewClient(context.Background(), s3store.ClientOptions{
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

	handler := invoices.NewInvoicesHandler(store, objects, invoice.NewPDFRenderer(), logger)

	lambda.Start(handler.HandleRequest)
}
