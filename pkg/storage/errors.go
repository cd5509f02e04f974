package storage

import "errors"

// ErrInvoiceNotFound is returned when no completed request matches the caller and request ID.
var ErrInvoiceNotFound = errors.New("invoice not found")
