package executor_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-deployer/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
	"github.com/feral-file/ff-token-deployer/internal/api/shared/executor"
	"github.com/feral-file/ff-token-deployer/internal/compiler"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/mocks"
	"github.com/feral-file/ff-token-deployer/internal/store"
	"github.com/feral-file/ff-token-deployer/internal/store/schema"
)

func newExecutor(t *testing.T) (executor.Executor, *mocks.MockStore, *mocks.MockCompiler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := mocks.NewMockStore(ctrl)
	c := mocks.NewMockCompiler(ctrl)
	return executor.NewExecutor(s, c), s, c
}

func asAPIError(t *testing.T, err error) *apierrors.APIError {
	t.Helper()
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	return apiErr
}

func TestCreateDeployedToken(t *testing.T) {
	exec, s, _ := newExecutor(t)

	deployedAt := time.Now().UTC()
	s.EXPECT().CreateDeployedToken(gomock.Any(), store.CreateDeployedTokenInput{
		WalletAddress:   "0xABC",
		TokenName:       "Test",
		TokenSymbol:     "TST",
		TokenSupply:     "1000",
		ContractAddress: "0xdef",
		ChainID:         56,
	}).Return(&schema.DeployedToken{
		ID:              4,
		WalletAddress:   "0xabc",
		TokenName:       "Test",
		TokenSymbol:     "TST",
		TokenSupply:     "1000",
		ContractAddress: "0xdef",
		ChainID:         56,
		DeployedAt:      deployedAt,
	}, nil)

	token, err := exec.CreateDeployedToken(context.Background(), dto.CreateDeployedTokenRequest{
		WalletAddress:   "0xABC",
		TokenName:       "Test",
		TokenSymbol:     "TST",
		TokenSupply:     "1000",
		ContractAddress: "0xdef",
		ChainID:         56,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), token.ID)
	assert.Equal(t, "0xabc", token.WalletAddress)
	assert.Equal(t, deployedAt, token.DeployedAt)
}

func TestCreateDeployedToken_MissingFieldsNeverReachStore(t *testing.T) {
	exec, _, _ := newExecutor(t)

	_, err := exec.CreateDeployedToken(context.Background(), dto.CreateDeployedTokenRequest{
		WalletAddress: "0xabc",
		TokenName:     "Test",
	})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	assert.Equal(t, "tokenSymbol, tokenSupply, contractAddress, chainId", apiErr.Details)
}

func TestCreateDeployedToken_StoreFailure(t *testing.T) {
	exec, s, _ := newExecutor(t)

	s.EXPECT().CreateDeployedToken(gomock.Any(), gomock.Any()).Return(nil,
		errors.New(`ERROR: duplicate key value violates unique constraint "deployed_tokens_contract_address_key" (SQLSTATE 23505)`))

	_, err := exec.CreateDeployedToken(context.Background(), dto.CreateDeployedTokenRequest{
		WalletAddress: "0xabc", TokenName: "Test", TokenSymbol: "TST", TokenSupply: "1",
		ContractAddress: "0xdef", ChainID: 56,
	})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	assert.Equal(t, "Failed to save token", apiErr.Message)
	assert.Empty(t, apiErr.Details)
	assert.NotContains(t, apiErr.Error(), "SQLSTATE")
}

func TestListDeployedTokens_EmptyIsNotNil(t *testing.T) {
	exec, s, _ := newExecutor(t)

	s.EXPECT().ListDeployedTokensByWallet(gomock.Any(), "0xabc").Return(nil, nil)

	tokens, err := exec.ListDeployedTokens(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func TestListDeployedTokens_StoreFailure(t *testing.T) {
	exec, s, _ := newExecutor(t)

	s.EXPECT().ListDeployedTokensByWallet(gomock.Any(), "0xabc").Return(nil, errors.New("connection refused"))

	_, err := exec.ListDeployedTokens(context.Background(), "0xabc")
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	assert.Equal(t, "Failed to get tokens", apiErr.Message)
	assert.NotContains(t, apiErr.Error(), "connection refused")
}

func TestCompile(t *testing.T) {
	exec, _, c := newExecutor(t)

	c.EXPECT().Compile(gomock.Any(), "contract A {}", "A").Return(&compiler.Artifact{
		ABI:      json.RawMessage(`[{"type":"constructor","inputs":[]}]`),
		Bytecode: "6080",
	}, nil)

	out, err := exec.Compile(context.Background(), dto.CompileRequest{Source: "contract A {}", ContractName: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"constructor","inputs":[]}]`, string(out.ABI))
	assert.Equal(t, "6080", out.Bytecode)
}

func TestCompile_Diagnostics(t *testing.T) {
	exec, _, c := newExecutor(t)

	c.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &domain.CompilationError{Diagnostics: []string{"first", "second"}})

	_, err := exec.Compile(context.Background(), dto.CompileRequest{Source: "x", ContractName: "A"})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeCompilationFailed, apiErr.Code)
	assert.Equal(t, "first\nsecond", apiErr.Message)
}

func TestCompile_CompilerUnavailable(t *testing.T) {
	exec, _, c := newExecutor(t)

	c.EXPECT().Compile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, compiler.ErrCompilerUnavailable)

	_, err := exec.Compile(context.Background(), dto.CompileRequest{Source: "x", ContractName: "A"})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeServiceError, apiErr.Code)
	assert.Equal(t, "Compiler unavailable", apiErr.Message)
	assert.Empty(t, apiErr.Details)
}

func TestCompile_MissingFields(t *testing.T) {
	exec, _, _ := newExecutor(t)

	_, err := exec.Compile(context.Background(), dto.CompileRequest{Source: "  "})
	apiErr := asAPIError(t, err)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	assert.Equal(t, "source, contractName", apiErr.Details)
}
