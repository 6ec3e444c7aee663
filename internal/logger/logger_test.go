package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-deployer/internal/logger"
)

func TestInitialize(t *testing.T) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: false}))
	assert.NotNil(t, logger.Default())

	require.NoError(t, logger.Initialize(logger.Config{Console: true, Tags: map[string]string{"service": "test"}}))
	assert.NotNil(t, logger.Default())
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, logger.RequestID(ctx))

	ctx = logger.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", logger.RequestID(ctx))
	assert.NotNil(t, logger.FromContext(ctx))
}

func TestFromContext_WithWallet(t *testing.T) {
	assert.Empty(t, logger.Wallet(context.Background()))

	ctx := logger.WithWallet(context.Background(), "0xabc")
	assert.Equal(t, "0xabc", logger.Wallet(ctx))
	assert.NotNil(t, logger.FromContext(ctx))
}
