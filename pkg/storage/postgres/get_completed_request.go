package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chris/reservation-invoices/pkg/models"
	"github.com/chris/reservation-invoices/pkg/storage"
)

const completedRequestQuery = `
	SELECT r.buy_order_id, r.amount, r.transaction_date, r.authorization_code, p.name AS property_name
	FROM requests r
	JOIN properties p ON r.url = p.url
	WHERE r.request_id = $1 AND r.user_id = $2 AND r.status = $3
`

// GetCompletedRequest retrieves the completed request requestID owned by userID.
func (s *Store) GetCompletedRequest(ctx context.Context, requestID, userID string) (*models.InvoiceRecord, error) {
	var (
		txDate   sql.NullTime
		authCode sql.NullString
	)

	record := &models.InvoiceRecord{RequestID: requestID, UserID: userID}
	row := s.DB.QueryRowContext(ctx, completedRequestQuery, requestID, userID, string(models.COMPLETED))
	err := row.Scan(&record.BuyOrderID, &record.Amount, &txDate, &authCode, &record.PropertyName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query completed request: %w", err)
	}

	if txDate.Valid {
		t := txDate.Time
		record.TransactionDate = &t
	}
	record.AuthorizationCode = authCode.String

	return record, nil
}
