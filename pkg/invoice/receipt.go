package invoice

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Title         = "Boleta de Reserva - Grupo 7"
	SectionHeader = "Detalle de la Compra"
	Currency      = "CLP"
	DateLayout    = "2006-01-02"
	ContentType   = "application/pdf"
)

// Receipt holds the fields printed on an invoice.
type Receipt struct {
	UserID            string
	PropertyName      string
	BuyOrderID        string
	Amount            decimal.Decimal
	AuthorizationCode string
	TransactionDate   *time.Time
}

// Line is one row of the fixed receipt layout.
type Line struct {
	Text  string
	Style string // "B" for bold, "" for regular
	Size  float64
	Align string // "C" or "" (left)
	// Gap is vertical space in mm added after the line.
	Gap float64
}

// Lines returns the receipt layout from top to bottom. The date line is left out
// entirely when the transaction has no timestamp.
func (r Receipt) Lines() []Line {
	lines := []Line{
		{Text: Title, Style: "B", Size: 16, Align: "C", Gap: 10},
		{Text: "Usuario: " + r.UserID, Size: 12, Gap: 5},
		{Text: SectionHeader, Style: "B", Size: 12},
		{Text: "Propiedad: " + r.PropertyName, Size: 12},
		{Text: "Orden de Compra: " + r.BuyOrderID, Size: 12},
		{Text: fmt.Sprintf("Monto: %s %s", r.Amount.String(), Currency), Size: 12},
		{Text: "Autorización: " + r.AuthorizationCode, Size: 12},
	}
	if r.TransactionDate != nil {
		lines = append(lines, Line{Text: "Fecha: " + r.TransactionDate.Format(DateLayout), Size: 12})
	}
	return lines
}

// ObjectKey is the storage key of the invoice for buyOrderID issued to userID.
// It is deterministic so that re-issuing an invoice overwrites the previous upload.
func ObjectKey(userID, buyOrderID string) string {
	return fmt.Sprintf("boletas/%s/%s.pdf", userID, buyOrderID)
}
