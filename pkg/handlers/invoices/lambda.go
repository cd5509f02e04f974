package invoices

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

// HandleRequest is the API Gateway proxy entry point. Failures are reported in the
// response, so the returned error is always nil.
func (h *InvoicesHandler) HandleRequest(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	resp := h.Generate(ctx, request.Headers, request.PathParameters["requestId"])

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       resp.Body,
	}, nil
}
