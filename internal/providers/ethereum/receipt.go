package ethereum

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/logger"
)

var errReceiptPending = errors.New("transaction not yet mined")

// waitMined polls for the receipt at a constant interval until it is available or ctx is done.
// Lookup failures other than "not found" are logged and polled again.
func (c *walletConnector) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	operation := func() error {
		r, err := c.client.TransactionReceipt(ctx, hash)
		if err == nil && r != nil {
			receipt = r
			return nil
		}
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err == nil || errors.Is(err, ethereum.NotFound) {
			return errReceiptPending
		}

		logger.DebugCtx(ctx, "receipt retrieval failed", zap.String("txHash", hash.Hex()), zap.Error(err))
		return err
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(c.pollInterval), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		return nil, err
	}

	return receipt, nil
}
