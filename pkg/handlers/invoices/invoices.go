package invoices

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/reservation-invoices/pkg/api"
	"github.com/chris/reservation-invoices/pkg/auth"
	"github.com/chris/reservation-invoices/pkg/invoice"
	"github.com/chris/reservation-invoices/pkg/mapping"
	"github.com/chris/reservation-invoices/pkg/objectstore"
	"github.com/chris/reservation-invoices/pkg/storage"
)

// LinkExpiry is how long a download link stays valid.
const LinkExpiry = 3600 * time.Second

const (
	msgUnauthorized   = "No autorizado"
	msgNotFound       = "Boleta no encontrada o no autorizada"
	msgInternalPrefix = "Error interno del servidor: "
)

// ErrMissingRequestID is returned when the route carries no requestId path parameter.
var ErrMissingRequestID = errors.New("missing path parameter requestId")

// InvoicesHandler issues invoices for completed purchase requests.
// It holds the database, object storage and rendering dependencies.
type InvoicesHandler struct {
	Store    storage.InvoiceReader
	Objects  objectstore.ObjectStore
	Renderer invoice.Renderer
	Logger   *slog.Logger
}

// NewInvoicesHandler creates a new InvoicesHandler.
func NewInvoicesHandler(store storage.InvoiceReader, objects objectstore.ObjectStore, renderer invoice.Renderer, logger *slog.Logger) *InvoicesHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesHandler{Store: store, Objects: objects, Renderer: renderer, Logger: logger}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*InvoicesHandler)(nil)

// Generate runs the whole invoice flow for one request and always returns a
// response: 200 with the download link, 401, 404 or 500.
func (h *InvoicesHandler) Generate(ctx context.Context, headers map[string]string, requestID string) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			h.Logger.ErrorContext(ctx, "invoice generation panicked", "request_id", requestID, "error", err)
			resp = internalError(err)
		}
	}()

	userID, err := auth.SubjectFromHeaders(headers)
	if err != nil {
		h.Logger.WarnContext(ctx, "authentication failed", "request_id", requestID, "error", err)
		return jsonResponse(http.StatusUnauthorized, mapping.ToApiError(msgUnauthorized))
	}

	logger := h.Logger.With("request_id", requestID, "user_id", userID)

	downloadURL, err := h.issue(ctx, userID, requestID)
	switch {
	case err == nil:
		logger.InfoContext(ctx, "invoice issued")
		return jsonResponse(http.StatusOK, mapping.ToApiInvoiceLink(downloadURL))
	case errors.Is(err, storage.ErrInvoiceNotFound):
		logger.InfoContext(ctx, "no completed request found for caller")
		return jsonResponse(http.StatusNotFound, mapping.ToApiError(msgNotFound))
	default:
		logger.ErrorContext(ctx, "failed to issue invoice", "error", err)
		return internalError(err)
	}
}

// issue renders, uploads and presigns the invoice. An upload is not undone when
// presigning fails; the key is deterministic so the next attempt overwrites it.
func (h *InvoicesHandler) issue(ctx context.Context, userID, requestID string) (string, error) {
	if requestID == "" {
		return "", ErrMissingRequestID
	}

	record, err := h.Store.GetCompletedRequest(ctx, requestID, userID)
	if err != nil {
		return "", err
	}

	document, err := h.Renderer.Render(mapping.ToReceipt(record))
	if err != nil {
		return "", err
	}

	key := invoice.ObjectKey(userID, record.BuyOrderID)
	if err := h.Objects.PutObject(ctx, key, document, invoice.ContentType); err != nil {
		return "", err
	}

	return h.Objects.PresignGetURL(ctx, key, LinkExpiry)
}

// internalError embeds err's text in the response body. This helps operators but
// discloses internal details to callers; clients rely on the format.
func internalError(err error) Response {
	return jsonResponse(http.StatusInternalServerError, mapping.ToApiError(msgInternalPrefix+err.Error()))
}
