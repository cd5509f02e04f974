package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/chris/reservation-invoices/pkg/invoice"
	invoice_mocks "github.com/chris/reservation-invoices/pkg/invoice/mocks"
	"github.com/chris/reservation-invoices/pkg/models"
	objectstore_mocks "github.com/chris/reservation-invoices/pkg/objectstore/mocks"
	"github.com/chris/reservation-invoices/pkg/storage"
	storage_mocks "github.com/chris/reservation-invoices/pkg/storage/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const downloadURL = "https://invoices.s3.amazonaws.com/boletas/u1/BO1.pdf?X-Amz-Expires=3600&X-Amz-Signature=abc"

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func bearer(t *testing.T, sub string) map[string]string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("gateway-secret"))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func scenarioARecord() *models.InvoiceRecord {
	return &models.InvoiceRecord{
		RequestID:         "r1",
		UserID:            "u1",
		BuyOrderID:        "BO1",
		Amount:            decimal.NewFromInt(1000),
		AuthorizationCode: "AUTH1",
		PropertyName:      "Casa Sur",
	}
}

type deps struct {
	store    *storage_mocks.InvoiceReader
	objects  *objectstore_mocks.ObjectStore
	renderer *invoice_mocks.Renderer
}

func newHandler() (*InvoicesHandler, deps) {
	d := deps{
		store:    new(storage_mocks.InvoiceReader),
		objects:  new(objectstore_mocks.ObjectStore),
		renderer: new(invoice_mocks.Renderer),
	}
	return NewInvoicesHandler(d.store, d.objects, d.renderer, discardLogger), d
}

func (d deps) assertExpectations(t *testing.T) {
	d.store.AssertExpectations(t)
	d.objects.AssertExpectations(t)
	d.renderer.AssertExpectations(t)
}

func decodeBody(t *testing.T, body string) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}

func TestGenerate(t *testing.T) {
	pdf := []byte("%PDF-1.3 invoice")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(scenarioARecord(), nil)
		d.renderer.On("Render", mock.MatchedBy(func(r invoice.Receipt) bool {
			for _, line := range r.Lines() {
				if strings.HasPrefix(line.Text, "Fecha") {
					return false
				}
			}
			return r.UserID == "u1" && r.BuyOrderID == "BO1" && r.PropertyName == "Casa Sur"
		})).Return(pdf, nil)
		d.objects.On("PutObject", mock.Anything, "boletas/u1/BO1.pdf", pdf, "application/pdf").Return(nil)
		d.objects.On("PresignGetURL", mock.Anything, "boletas/u1/BO1.pdf", 3600*time.Second).Return(downloadURL, nil)

		// Act
		resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		// Assert
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, map[string]string{"download_url": downloadURL}, decodeBody(t, resp.Body))
		assert.NotContains(t, resp.Body, `\u0026`)
		d.assertExpectations(t)
	})

	t.Run("Idempotent", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(scenarioARecord(), nil).Twice()
		d.renderer.On("Render", mock.Anything).Return(pdf, nil).Twice()
		d.objects.On("PutObject", mock.Anything, "boletas/u1/BO1.pdf", pdf, "application/pdf").Return(nil).Twice()
		d.objects.On("PresignGetURL", mock.Anything, "boletas/u1/BO1.pdf", LinkExpiry).Return(downloadURL, nil).Twice()

		first := h.Generate(context.Background(), bearer(t, "u1"), "r1")
		second := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		assert.Equal(t, 200, first.StatusCode)
		assert.Equal(t, 200, second.StatusCode)
		d.objects.AssertNumberOfCalls(t, "PutObject", 2)
		d.assertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u2").Return(nil, storage.ErrInvoiceNotFound)

		resp := h.Generate(context.Background(), bearer(t, "u2"), "r1")

		assert.Equal(t, 404, resp.StatusCode)
		assert.JSONEq(t, `{"error": "Boleta no encontrada o no autorizada"}`, resp.Body)
		d.renderer.AssertNotCalled(t, "Render", mock.Anything)
		d.objects.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		d.assertExpectations(t)
	})

	t.Run("Missing Authorization", func(t *testing.T) {
		h, d := newHandler()

		resp := h.Generate(context.Background(), map[string]string{"Accept": "application/json"}, "r1")

		assert.Equal(t, 401, resp.StatusCode)
		assert.JSONEq(t, `{"error": "No autorizado"}`, resp.Body)
		d.store.AssertNotCalled(t, "GetCompletedRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed Token", func(t *testing.T) {
		h, _ := newHandler()

		resp := h.Generate(context.Background(), map[string]string{"authorization": "Bearer garbage"}, "r1")

		assert.Equal(t, 401, resp.StatusCode)
		assert.JSONEq(t, `{"error": "No autorizado"}`, resp.Body)
	})

	t.Run("Database Error", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").
			Return(nil, fmt.Errorf("failed to query completed request: %w", errors.New("connection reset by peer")))

		resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		assert.Equal(t, 500, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.True(t, strings.HasPrefix(body["error"], "Error interno del servidor: "))
		assert.Contains(t, body["error"], "connection reset by peer")
		d.assertExpectations(t)
	})

	t.Run("Render Error", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(scenarioARecord(), nil)
		d.renderer.On("Render", mock.Anything).Return(nil, errors.New("font not found"))

		resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		assert.Equal(t, 500, resp.StatusCode)
		assert.JSONEq(t, `{"error": "Error interno del servidor: font not found"}`, resp.Body)
		d.assertExpectations(t)
	})

	t.Run("Upload Error", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(scenarioARecord(), nil)
		d.renderer.On("Render", mock.Anything).Return(pdf, nil)
		d.objects.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access denied"))

		resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		assert.Equal(t, 500, resp.StatusCode)
		assert.Contains(t, resp.Body, "access denied")
		d.objects.AssertNotCalled(t, "PresignGetURL", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Presign Error Keeps Upload", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(scenarioARecord(), nil)
		d.renderer.On("Render", mock.Anything).Return(pdf, nil)
		d.objects.On("PutObject", mock.Anything, "boletas/u1/BO1.pdf", pdf, "application/pdf").Return(nil)
		d.objects.On("PresignGetURL", mock.Anything, "boletas/u1/BO1.pdf", LinkExpiry).Return("", errors.New("expired credentials"))

		resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		assert.Equal(t, 500, resp.StatusCode)
		assert.Contains(t, resp.Body, "expired credentials")
		d.assertExpectations(t)
	})

	t.Run("Missing Request ID", func(t *testing.T) {
		h, d := newHandler()

		resp := h.Generate(context.Background(), bearer(t, "u1"), "")

		assert.Equal(t, 500, resp.StatusCode)
		assert.Contains(t, resp.Body, ErrMissingRequestID.Error())
		d.store.AssertNotCalled(t, "GetCompletedRequest", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Panic Is Recovered", func(t *testing.T) {
		h, d := newHandler()
		d.store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(scenarioARecord(), nil)
		d.renderer.On("Render", mock.Anything).Run(func(args mock.Arguments) {
			panic("nil font table")
		}).Return(pdf, nil)

		resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

		assert.Equal(t, 500, resp.StatusCode)
		assert.JSONEq(t, `{"error": "Error interno del servidor: panic: nil font table"}`, resp.Body)
	})
}

func TestGenerate_WithPDFRenderer(t *testing.T) {
	store := new(storage_mocks.InvoiceReader)
	objects := new(objectstore_mocks.ObjectStore)
	h := NewInvoicesHandler(store, objects, invoice.NewPDFRenderer(), nil)

	date := time.Date(2025, time.February, 3, 10, 0, 0, 0, time.UTC)
	record := scenarioARecord()
	record.TransactionDate = &date

	store.On("GetCompletedRequest", mock.Anything, "r1", "u1").Return(record, nil)
	objects.On("PutObject", mock.Anything, "boletas/u1/BO1.pdf", mock.MatchedBy(func(b []byte) bool {
		return strings.HasPrefix(string(b), "%PDF-")
	}), "application/pdf").Return(nil)
	objects.On("PresignGetURL", mock.Anything, "boletas/u1/BO1.pdf", LinkExpiry).Return(downloadURL, nil)

	resp := h.Generate(context.Background(), bearer(t, "u1"), "r1")

	assert.Equal(t, 200, resp.StatusCode)
	store.AssertExpectations(t)
	objects.AssertExpectations(t)
}
