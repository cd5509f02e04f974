package mapping

import (
	"github.com/chris/reservation-invoices/pkg/api"
	"github.com/chris/reservation-invoices/pkg/invoice"
	"github.com/chris/reservation-invoices/pkg/models"
)

// ToReceipt converts a completed request record into the fields printed on its invoice.
func ToReceipt(record *models.InvoiceRecord) invoice.Receipt {
	return invoice.Receipt{
		UserID:            record.UserID,
		PropertyName:      record.PropertyName,
		BuyOrderID:        record.BuyOrderID,
		Amount:            record.Amount,
		AuthorizationCode: record.AuthorizationCode,
		TransactionDate:   record.TransactionDate,
	}
}

// ToApiInvoiceLink converts a presigned URL into the API success response.
func ToApiInvoiceLink(downloadURL string) *api.InvoiceLink {
	return &api.InvoiceLink{DownloadUrl: downloadURL}
}

// ToApiError converts a message into the API error response.
func ToApiError(message string) *api.Error {
	return &api.Error{Error: message}
}
