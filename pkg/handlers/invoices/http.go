package invoices

import (
	"io"
	"net/http"
)

// GenerateInvoice serves GET /invoices/{requestId} on the local HTTP server.
func (h *InvoicesHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request, requestId string) {
	headers := map[string]string{}
	if v := r.Header.Get("Authorization"); v != "" {
		headers["Authorization"] = v
	}

	resp := h.Generate(r.Context(), headers, requestId)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		h.Logger.ErrorContext(r.Context(), "failed to write response", "error", err)
	}
}
