package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func TestReceiptLines(t *testing.T) {
	receipt := Receipt{
		UserID:            "u1",
		PropertyName:      "Casa Sur",
		BuyOrderID:        "BO1",
		Amount:            decimal.NewFromInt(1000),
		AuthorizationCode: "AUTH1",
	}

	t.Run("Without Date", func(t *testing.T) {
		got := texts(receipt.Lines())

		assert.Equal(t, []string{
			"Boleta de Reserva - Grupo 7",
			"Usuario: u1",
			"Detalle de la Compra",
			"Propiedad: Casa Sur",
			"Orden de Compra: BO1",
			"Monto: 1000 CLP",
			"Autorización: AUTH1",
		}, got)
		for _, text := range got {
			assert.False(t, strings.HasPrefix(text, "Fecha"))
		}
	})

	t.Run("With Date", func(t *testing.T) {
		date := time.Date(2025, time.March, 7, 23, 59, 0, 0, time.UTC)
		withDate := receipt
		withDate.TransactionDate = &date

		lines := withDate.Lines()

		require.Len(t, lines, 8)
		assert.Equal(t, "Fecha: 2025-03-07", lines[7].Text)
	})

	t.Run("Layout Styles", func(t *testing.T) {
		lines := receipt.Lines()

		assert.Equal(t, "C", lines[0].Align)
		assert.Equal(t, "B", lines[0].Style)
		assert.Equal(t, float64(16), lines[0].Size)
		assert.Equal(t, "B", lines[2].Style)
		assert.Equal(t, "", lines[3].Style)
	})
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "boletas/u1/BO1.pdf", ObjectKey("u1", "BO1"))
}
