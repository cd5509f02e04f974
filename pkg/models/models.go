package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus defines the possible states of a purchase request.
type RequestStatus string

// COMPLETED is the only status eligible for invoicing.
const COMPLETED RequestStatus = "COMPLETED"

// InvoiceRecord is the read-only view of a completed purchase request
// joined with the name of the property it was made for.
type InvoiceRecord struct {
	RequestID         string
	UserID            string
	BuyOrderID        string
	Amount            decimal.Decimal
	TransactionDate   *time.Time
	AuthorizationCode string
	PropertyName      string
}
