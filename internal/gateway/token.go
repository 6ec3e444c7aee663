package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// TokenGateway persists and lists deployment records through the backend
//
//go:generate mockgen -source=token.go -destination=../mocks/token_gateway.go -package=mocks -mock_names=TokenGateway=MockTokenGateway
type TokenGateway interface {
	// Save records a deployment and returns the stored record
	Save(ctx context.Context, input domain.DeployedTokenInput) (*domain.DeployedToken, error)

	// ListByWallet returns the records of walletAddress, matched case-insensitively
	ListByWallet(ctx context.Context, walletAddress string) ([]domain.DeployedToken, error)
}

// HTTPTokenGateway implements TokenGateway over the /api/tokens endpoints
type HTTPTokenGateway struct {
	client
}

// NewTokenGateway creates a token gateway backed by the HTTP API at apiBaseURL
func NewTokenGateway(httpClient adapter.HTTPClient, apiBaseURL string) TokenGateway {
	return &HTTPTokenGateway{client: newClient(httpClient, apiBaseURL)}
}

// Save validates the input locally and posts it to the backend
func (g *HTTPTokenGateway) Save(ctx context.Context, input domain.DeployedTokenInput) (*domain.DeployedToken, error) {
	if missing := input.MissingFields(); len(missing) > 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	resp, err := g.do(ctx, http.MethodPost, "/api/tokens", input)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, tokenError(resp)
	}

	var token domain.DeployedToken
	if err := json.Unmarshal(resp.Body, &token); err != nil {
		return nil, domain.NewProtocolError("invalid response from server", err)
	}
	if token.ContractAddress == "" {
		return nil, domain.NewProtocolError("invalid response from server", nil)
	}

	return &token, nil
}

// ListByWallet fetches the wallet's deployment records
func (g *HTTPTokenGateway) ListByWallet(ctx context.Context, walletAddress string) ([]domain.DeployedToken, error) {
	if strings.TrimSpace(walletAddress) == "" {
		return nil, domain.NewValidationError("wallet address is required")
	}

	resp, err := g.do(ctx, http.MethodGet, "/api/tokens/"+url.PathEscape(walletAddress), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp) {
		return nil, tokenError(resp)
	}

	tokens := []domain.DeployedToken{}
	if err := json.Unmarshal(resp.Body, &tokens); err != nil {
		return nil, domain.NewProtocolError("invalid response from server", err)
	}

	return tokens, nil
}

// tokenError maps a non-success response of the token endpoints
func tokenError(resp *adapter.HTTPResponse) error {
	apiErr, ok := apierrors.Parse(resp.Body)
	if !ok {
		return statusError(resp)
	}

	switch apiErr.Code {
	case apierrors.ErrCodeValidationFailed, apierrors.ErrCodeBadRequest:
		return domain.NewValidationError(validationMessage(apiErr))
	case apierrors.ErrCodeDatabaseError:
		return domain.NewStoreError(apiErr.Message, nil)
	default:
		return domain.NewTransportError(apiErr.Message, nil)
	}
}
