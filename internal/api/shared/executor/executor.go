package executor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
	"github.com/feral-file/ff-token-deployer/internal/compiler"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/logger"
	"github.com/feral-file/ff-token-deployer/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateDeployedToken records a deployment
	CreateDeployedToken(ctx context.Context, req dto.CreateDeployedTokenRequest) (*dto.DeployedTokenResponse, error)

	// ListDeployedTokens returns the deployments of a wallet in insertion order
	ListDeployedTokens(ctx context.Context, walletAddress string) ([]dto.DeployedTokenResponse, error)

	// Compile compiles a contract source and returns the artifact of the named contract
	Compile(ctx context.Context, req dto.CompileRequest) (*dto.CompileResponse, error)
}

type executor struct {
	store    store.Store
	compiler compiler.Compiler
}

func NewExecutor(store store.Store, compiler compiler.Compiler) Executor {
	return &executor{store: store, compiler: compiler}
}

func (e *executor) CreateDeployedToken(ctx context.Context, req dto.CreateDeployedTokenRequest) (*dto.DeployedTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	token, err := e.store.CreateDeployedToken(ctx, store.CreateDeployedTokenInput{
		WalletAddress:   req.WalletAddress,
		TokenName:       req.TokenName,
		TokenSymbol:     req.TokenSymbol,
		TokenSupply:     req.TokenSupply,
		ContractAddress: req.ContractAddress,
		ChainID:         req.ChainID,
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("contractAddress", req.ContractAddress))
		return nil, apierrors.NewDatabaseError("Failed to save token")
	}

	return dto.MapDeployedTokenToDTO(token), nil
}

func (e *executor) ListDeployedTokens(ctx context.Context, walletAddress string) ([]dto.DeployedTokenResponse, error) {
	tokens, err := e.store.ListDeployedTokensByWallet(ctx, walletAddress)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("walletAddress", walletAddress))
		return nil, apierrors.NewDatabaseError("Failed to get tokens")
	}

	return dto.MapDeployedTokensToDTO(tokens), nil
}

func (e *executor) Compile(ctx context.Context, req dto.CompileRequest) (*dto.CompileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	artifact, err := e.compiler.Compile(ctx, req.Source, req.ContractName)
	if err != nil {
		var compErr *domain.CompilationError
		if errors.As(err, &compErr) {
			return nil, apierrors.NewCompilationError(compErr.Error())
		}

		logger.ErrorCtx(ctx, err, zap.String("contractName", req.ContractName))
		if errors.Is(err, compiler.ErrCompilerUnavailable) {
			return nil, apierrors.NewServiceError("Compiler unavailable")
		}
		return nil, apierrors.NewServiceError("Failed to compile contract")
	}

	return &dto.CompileResponse{
		ABI:      artifact.ABI,
		Bytecode: artifact.Bytecode,
	}, nil
}
