package storage

import (
	"context"

	"github.com/chris/reservation-invoices/pkg/models"
)

//go:generate mockery --name InvoiceReader --output mocks --outpkg mocks

// InvoiceReader defines the read-only access the invoice handler needs to the
// purchase requests database.
type InvoiceReader interface {
	// GetCompletedRequest retrieves the COMPLETED request with the given ID owned by userID.
	// It returns ErrInvoiceNotFound when no such row exists, regardless of whether the
	// request is missing, owned by someone else or not yet completed.
	GetCompletedRequest(ctx context.Context, requestID, userID string) (*models.InvoiceRecord, error)
}
