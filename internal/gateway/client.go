package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/logger"
)

// client is the JSON transport shared by the gateways. It never retries.
type client struct {
	httpClient adapter.HTTPClient
	apiBaseURL string
}

func newClient(httpClient adapter.HTTPClient, apiBaseURL string) client {
	return client{
		httpClient: httpClient,
		apiBaseURL: strings.TrimRight(apiBaseURL, "/"),
	}
}

// do sends body as JSON and returns the response of any status.
// A network failure is returned as a transport error.
func (c client) do(ctx context.Context, method, path string, body interface{}) (*adapter.HTTPResponse, error) {
	var payload []byte
	headers := map[string]string{"Accept": "application/json"}
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		headers["Content-Type"] = "application/json"
	}

	url := c.apiBaseURL + path
	resp, err := c.httpClient.Do(ctx, method, url, payload, headers)
	if err != nil {
		logger.WarnCtx(ctx, "backend request failed", zap.String("url", url), zap.Error(err))
		return nil, domain.NewTransportError("failed to reach server", err)
	}

	logger.DebugCtx(ctx, "backend response", zap.String("url", url), zap.Int("status", resp.StatusCode))
	return resp, nil
}

func isSuccess(resp *adapter.HTTPResponse) bool {
	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

// statusError converts an unstructured non-success response
func statusError(resp *adapter.HTTPResponse) error {
	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return domain.NewTransportError(fmt.Sprintf("server error: %s", status), nil)
}

// validationMessage appends the details of a rejected request, e.g. the missing fields.
// Other error codes keep only the message; their details are server internals.
func validationMessage(e *apierrors.APIError) string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}
