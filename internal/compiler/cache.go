package compiler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gowebpki/jcs"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/logger"
	"github.com/feral-file/ff-token-deployer/internal/store"
)

// CachedCompiler serves repeated compilations from the store.
// Cache failures are logged and never fail a compile.
type CachedCompiler struct {
	next  Compiler
	store store.Store
}

// NewCachedCompiler decorates next with the compiled artifact cache
func NewCachedCompiler(next Compiler, s store.Store) *CachedCompiler {
	return &CachedCompiler{next: next, store: s}
}

// Compile returns the cached artifact for the same source and unit, compiling on a miss
func (c *CachedCompiler) Compile(ctx context.Context, source, unitName string) (*Artifact, error) {
	key, err := CacheKey(source, unitName)
	if err != nil {
		logger.WarnCtx(ctx, "failed to compute compile cache key", zap.Error(err))
		return c.next.Compile(ctx, source, unitName)
	}

	cached, err := c.store.GetCompiledArtifact(ctx, key)
	if err != nil {
		logger.WarnCtx(ctx, "failed to read compile cache", zap.Error(err), zap.String("key", key))
	} else if cached != nil {
		logger.DebugCtx(ctx, "compile cache hit", zap.String("key", key), zap.String("contract", unitName))
		return &Artifact{ABI: json.RawMessage(cached.ABI), Bytecode: cached.Bytecode}, nil
	}

	artifact, err := c.next.Compile(ctx, source, unitName)
	if err != nil {
		return nil, err
	}

	if err := c.store.SaveCompiledArtifact(ctx, store.SaveCompiledArtifactInput{
		InputHash:    key,
		ContractName: unitName,
		ABI:          artifact.ABI,
		Bytecode:     artifact.Bytecode,
	}); err != nil {
		logger.WarnCtx(ctx, "failed to write compile cache", zap.Error(err), zap.String("key", key))
	}

	return artifact, nil
}

// CacheKey is keccak256 over the canonical (RFC 8785) compiler input followed by the unit name
func CacheKey(source, unitName string) (string, error) {
	raw, err := json.Marshal(newStandardInput(source))
	if err != nil {
		return "", fmt.Errorf("failed to encode compiler input: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize compiler input: %w", err)
	}

	return crypto.Keccak256Hash(canonical, []byte(unitName)).Hex(), nil
}
