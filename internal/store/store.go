package store

import (
	"context"
	"encoding/json"

	"github.com/feral-file/ff-token-deployer/internal/store/schema"
)

// CreateDeployedTokenInput holds the fields supplied by the client for a new deployment record
type CreateDeployedTokenInput struct {
	WalletAddress   string
	TokenName       string
	TokenSymbol     string
	TokenSupply     string
	ContractAddress string
	ChainID         int64
}

// SaveCompiledArtifactInput holds a successful compilation result
type SaveCompiledArtifactInput struct {
	InputHash    string
	ContractName string
	ABI          json.RawMessage
	Bytecode     string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateDeployedToken inserts a deployment record; id and deployed_at are assigned by the database
	CreateDeployedToken(ctx context.Context, input CreateDeployedTokenInput) (*schema.DeployedToken, error)
	// ListDeployedTokensByWallet returns the wallet's records in insertion order, matching the address case-insensitively
	ListDeployedTokensByWallet(ctx context.Context, walletAddress string) ([]schema.DeployedToken, error)

	// GetCompiledArtifact returns the cached compilation for inputHash, or nil when absent
	GetCompiledArtifact(ctx context.Context, inputHash string) (*schema.CompiledArtifact, error)
	// SaveCompiledArtifact caches a compilation; saving an existing hash is a no-op
	SaveCompiledArtifact(ctx context.Context, input SaveCompiledArtifactInput) error
}
