package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
	"github.com/feral-file/ff-token-deployer/internal/compiler"
	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// CompileRequest is the body of POST /api/compile
type CompileRequest struct {
	Source       string `json:"source"`
	ContractName string `json:"contractName"`
}

// CompileGateway compiles through the backend's /api/compile endpoint
type CompileGateway struct {
	client
}

// NewCompileGateway creates a compiler backed by the HTTP API at apiBaseURL
func NewCompileGateway(httpClient adapter.HTTPClient, apiBaseURL string) compiler.Compiler {
	return &CompileGateway{client: newClient(httpClient, apiBaseURL)}
}

// Compile sends source to the backend and returns the compiled artifact of unitName
func (g *CompileGateway) Compile(ctx context.Context, source, unitName string) (*compiler.Artifact, error) {
	resp, err := g.do(ctx, http.MethodPost, "/api/compile", CompileRequest{
		Source:       source,
		ContractName: unitName,
	})
	if err != nil {
		return nil, err
	}

	if !isSuccess(resp) {
		apiErr, ok := apierrors.Parse(resp.Body)
		if !ok {
			return nil, statusError(resp)
		}
		if apiErr.Code == apierrors.ErrCodeCompilationFailed {
			return nil, &domain.CompilationError{Diagnostics: strings.Split(apiErr.Message, "\n")}
		}
		return nil, domain.NewTransportError(apiErr.Message, nil)
	}

	var artifact compiler.Artifact
	if err := json.Unmarshal(resp.Body, &artifact); err != nil {
		return nil, domain.NewProtocolError("invalid response from server", err)
	}
	if !isJSONArray(artifact.ABI) || artifact.Bytecode == "" {
		return nil, domain.NewProtocolError("invalid response from server", nil)
	}

	return &artifact, nil
}

func isJSONArray(raw json.RawMessage) bool {
	var entries []json.RawMessage
	return len(raw) > 0 && json.Unmarshal(raw, &entries) == nil
}
