package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
)

func TestParse(t *testing.T) {
	apiErr, ok := apierrors.Parse([]byte(`{"code":"compilation_failed","message":"a\nb"}`))
	require.True(t, ok)
	assert.Equal(t, apierrors.ErrCodeCompilationFailed, apiErr.Code)
	assert.Equal(t, "a\nb", apiErr.Message)

	for _, body := range []string{"", "<html>", `{"error":"legacy"}`, `[]`} {
		_, ok := apierrors.Parse([]byte(body))
		assert.False(t, ok, body)
	}
}

func TestConstructors(t *testing.T) {
	v := apierrors.NewValidationError("Missing required fields", "walletAddress", "chainId")
	assert.Equal(t, apierrors.ErrCodeValidationFailed, v.Code)
	assert.Equal(t, "walletAddress, chainId", v.Details)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apierrors.NewDatabaseError("x").Code)
	assert.Contains(t, apierrors.NewServiceError("down").Error(), `"code":"service_error"`)
}
