package store

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildDeployedToken(wallet, contract string) CreateDeployedTokenInput {
	return CreateDeployedTokenInput{
		WalletAddress:   wallet,
		TokenName:       "Test",
		TokenSymbol:     "TST",
		TokenSupply:     "1000",
		ContractAddress: contract,
		ChainID:         10143,
	}
}

// RunStoreTests runs every store test against the store returned by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("CreateDeployedToken", func(t *testing.T) {
		testCreateDeployedToken(t, initDB(t))
	})
	t.Run("CreateDeployedToken_DuplicateContract", func(t *testing.T) {
		testCreateDeployedTokenDuplicate(t, initDB(t))
	})
	t.Run("ListDeployedTokensByWallet_CaseInsensitive", func(t *testing.T) {
		testListCaseInsensitive(t, initDB(t))
	})
	t.Run("ListDeployedTokensByWallet_InsertionOrder", func(t *testing.T) {
		testListInsertionOrder(t, initDB(t))
	})
	t.Run("ListDeployedTokensByWallet_Empty", func(t *testing.T) {
		testListEmpty(t, initDB(t))
	})
	t.Run("CompiledArtifact_RoundTrip", func(t *testing.T) {
		testCompiledArtifactRoundTrip(t, initDB(t))
	})
	t.Run("CompiledArtifact_Missing", func(t *testing.T) {
		testCompiledArtifactMissing(t, initDB(t))
	})
	t.Run("CompiledArtifact_SaveTwice", func(t *testing.T) {
		testCompiledArtifactSaveTwice(t, initDB(t))
	})
}

func testCreateDeployedToken(t *testing.T, store Store) {
	ctx := context.Background()
	before := time.Now().Add(-time.Minute)

	input := buildDeployedToken("0xAbCdEf0000000000000000000000000000000001", "0x1000000000000000000000000000000000000001")
	token, err := store.CreateDeployedToken(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, token)

	assert.NotZero(t, token.ID)
	assert.Equal(t, strings.ToLower(input.WalletAddress), token.WalletAddress)
	assert.Equal(t, "Test", token.TokenName)
	assert.Equal(t, "TST", token.TokenSymbol)
	assert.Equal(t, "1000", token.TokenSupply)
	assert.Equal(t, input.ContractAddress, token.ContractAddress)
	assert.Equal(t, int64(10143), token.ChainID)
	assert.True(t, token.DeployedAt.After(before), "deployed_at should be assigned by the database")
}

func testCreateDeployedTokenDuplicate(t *testing.T, store Store) {
	ctx := context.Background()
	input := buildDeployedToken("0xaaaa000000000000000000000000000000000001", "0x2000000000000000000000000000000000000001")

	_, err := store.CreateDeployedToken(ctx, input)
	require.NoError(t, err)

	_, err = store.CreateDeployedToken(ctx, input)
	assert.Error(t, err)
}

func testListCaseInsensitive(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0xAbCdEf0000000000000000000000000000000002"

	created, err := store.CreateDeployedToken(ctx, buildDeployedToken(wallet, "0x3000000000000000000000000000000000000001"))
	require.NoError(t, err)

	for _, query := range []string{wallet, strings.ToLower(wallet), strings.ToUpper(wallet)} {
		tokens, err := store.ListDeployedTokensByWallet(ctx, query)
		require.NoError(t, err)
		require.Len(t, tokens, 1, "query %s", query)
		assert.Equal(t, created.ID, tokens[0].ID)
		assert.Equal(t, created.ContractAddress, tokens[0].ContractAddress)
		assert.Equal(t, created.TokenSupply, tokens[0].TokenSupply)
	}
}

func testListInsertionOrder(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0xbbbb000000000000000000000000000000000003"
	contracts := []string{
		"0x4000000000000000000000000000000000000003",
		"0x4000000000000000000000000000000000000001",
		"0x4000000000000000000000000000000000000002",
	}
	for _, c := range contracts {
		_, err := store.CreateDeployedToken(ctx, buildDeployedToken(wallet, c))
		require.NoError(t, err)
	}
	_, err := store.CreateDeployedToken(ctx, buildDeployedToken("0xcccc000000000000000000000000000000000003", "0x4000000000000000000000000000000000000009"))
	require.NoError(t, err)

	tokens, err := store.ListDeployedTokensByWallet(ctx, wallet)
	require.NoError(t, err)
	require.Len(t, tokens, len(contracts))
	for i, c := range contracts {
		assert.Equal(t, c, tokens[i].ContractAddress)
	}
}

func testListEmpty(t *testing.T, store Store) {
	tokens, err := store.ListDeployedTokensByWallet(context.Background(), "0xdddd000000000000000000000000000000000004")
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Empty(t, tokens)
}

func testCompiledArtifactRoundTrip(t *testing.T, store Store) {
	ctx := context.Background()
	abi := json.RawMessage(`[{"type":"function","name":"pause","inputs":[],"outputs":[],"stateMutability":"nonpayable"}]`)

	err := store.SaveCompiledArtifact(ctx, SaveCompiledArtifactInput{
		InputHash:    "0xhash1",
		ContractName: "TSTToken",
		ABI:          abi,
		Bytecode:     "6080",
	})
	require.NoError(t, err)

	artifact, err := store.GetCompiledArtifact(ctx, "0xhash1")
	require.NoError(t, err)
	require.NotNil(t, artifact)
	assert.Equal(t, "TSTToken", artifact.ContractName)
	assert.Equal(t, "6080", artifact.Bytecode)
	assert.JSONEq(t, string(abi), string(artifact.ABI))
	assert.False(t, artifact.CreatedAt.IsZero())
}

func testCompiledArtifactMissing(t *testing.T, store Store) {
	artifact, err := store.GetCompiledArtifact(context.Background(), "0xmissing")
	require.NoError(t, err)
	assert.Nil(t, artifact)
}

func testCompiledArtifactSaveTwice(t *testing.T, store Store) {
	ctx := context.Background()
	input := SaveCompiledArtifactInput{
		InputHash:    "0xhash2",
		ContractName: "TSTToken",
		ABI:          json.RawMessage(`[]`),
		Bytecode:     "6080",
	}

	require.NoError(t, store.SaveCompiledArtifact(ctx, input))

	input.Bytecode = "6081"
	require.NoError(t, store.SaveCompiledArtifact(ctx, input))

	artifact, err := store.GetCompiledArtifact(ctx, "0xhash2")
	require.NoError(t, err)
	require.NotNil(t, artifact)
	assert.Equal(t, "6080", artifact.Bytecode)
}
