package invoices

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

// Response is the transport-neutral result of an invoice request.
type Response struct {
	StatusCode int
	Body       string
}

func jsonResponse(status int, payload any) Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Presigned URLs are full of '&'.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return Response{StatusCode: http.StatusInternalServerError, Body: `{"error":"Error interno del servidor"}`}
	}
	return Response{StatusCode: status, Body: strings.TrimSuffix(buf.String(), "\n")}
}
