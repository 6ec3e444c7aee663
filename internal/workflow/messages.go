package workflow

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/feral-file/ff-token-deployer/internal/domain"
)

const (
	MessageCompiling = "Compiling contract..."
	MessageDeploying = "Deploying contract..."
)

// UserMessage converts an error into the text shown to the user.
// Compiler diagnostics are shown verbatim; transport, protocol and store failures
// show their message without the underlying cause.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var compErr *domain.CompilationError
	if errors.As(err, &compErr) {
		return "Compilation failed:\n" + compErr.Error()
	}

	var chainErr *domain.ChainError
	if errors.As(err, &chainErr) {
		if chainErr.Message == "" {
			return "Transaction failed"
		}
		return chainErr.Message
	}

	switch {
	case errors.Is(err, domain.ErrOperationInFlight):
		return "Another operation is in progress"
	case errors.Is(err, domain.ErrWalletUnavailable):
		return "Wallet is not available. Please install or unlock your wallet."
	case errors.Is(err, context.Canceled):
		return "Operation cancelled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Operation timed out"
	case errors.Is(err, domain.ErrValidation):
		return strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
	}

	var failure *domain.Failure
	if errors.As(err, &failure) {
		return capitalize(failure.Message)
	}

	return err.Error()
}

func capitalize(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
