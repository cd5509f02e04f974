package objectstore

import (
	"context"
	"time"
)

//go:generate mockery --name ObjectStore --output mocks --outpkg mocks

// ObjectStore is durable object storage for rendered invoices.
type ObjectStore interface {
	// PutObject stores body under key, replacing any existing object.
	PutObject(ctx context.Context, key string, body []byte, contentType string) error

	// PresignGetURL returns a URL that grants read access to key for the given duration.
	PresignGetURL(ctx context.Context, key string, expires time.Duration) (string, error)
}
