package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/logger"
)

// DefaultPollInterval is the receipt polling interval used when none is configured
const DefaultPollInterval = 2 * time.Second

// Connector talks to the user's wallet and to the chain behind it
type Connector interface {
	// Connect requests account access and returns a signer for the first account
	Connect(ctx context.Context) (*Signer, error)

	// EnsureNetwork switches the wallet to chain, registering it first when the wallet does not know it
	EnsureNetwork(ctx context.Context, chain domain.ChainConfig) error

	// ChainID returns the chain id the wallet is currently on
	ChainID(ctx context.Context) (int64, error)

	// Deploy submits a contract-creation transaction and waits until it is mined
	Deploy(ctx context.Context, signer *Signer, abi json.RawMessage, bytecode string) (common.Address, error)

	// Bind returns a handle for calling functions of the contract at address
	Bind(address common.Address, abi json.RawMessage, signer *Signer) (Contract, error)
}

type walletConnector struct {
	wallet       adapter.WalletProvider
	client       adapter.EthClient
	pollInterval time.Duration
}

// NewConnector creates a connector. A nil wallet makes Connect fail with domain.ErrWalletUnavailable.
func NewConnector(wallet adapter.WalletProvider, client adapter.EthClient, pollInterval time.Duration) Connector {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &walletConnector{
		wallet:       wallet,
		client:       client,
		pollInterval: pollInterval,
	}
}

// Connect requests the wallet's accounts (eth_requestAccounts)
func (c *walletConnector) Connect(ctx context.Context) (*Signer, error) {
	if c.wallet == nil {
		return nil, domain.ErrWalletUnavailable
	}

	var accounts []common.Address
	if err := c.wallet.Request(ctx, "eth_requestAccounts", nil, &accounts); err != nil {
		var rpcErr rpc.Error
		if errors.As(err, &rpcErr) {
			return nil, toChainError(err)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrWalletUnavailable, err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: wallet returned no accounts", domain.ErrWalletUnavailable)
	}

	logger.InfoCtx(ctx, "wallet connected", zap.String("account", accounts[0].Hex()))
	return NewSigner(accounts[0]), nil
}

// EnsureNetwork switches to chain; on the unrecognized-chain code it adds the chain
// and then confirms the wallet actually landed on it
func (c *walletConnector) EnsureNetwork(ctx context.Context, chain domain.ChainConfig) error {
	if c.wallet == nil {
		return domain.ErrWalletUnavailable
	}

	switchParams := []interface{}{map[string]string{"chainId": chain.HexChainID()}}
	err := c.wallet.Request(ctx, "wallet_switchEthereumChain", switchParams, nil)
	if err == nil {
		return nil
	}

	chainErr := toChainError(err)
	var ce *domain.ChainError
	if !errors.As(chainErr, &ce) || !ce.IsUnrecognizedChain() {
		return chainErr
	}

	logger.InfoCtx(ctx, "chain unknown to wallet, adding it",
		zap.Int64("chainID", chain.ChainID),
		zap.String("chainName", chain.ChainName))

	if err := c.wallet.Request(ctx, "wallet_addEthereumChain", []interface{}{chain.AddChainParams()}, nil); err != nil {
		return toChainError(err)
	}

	current, err := c.ChainID(ctx)
	if err != nil {
		return err
	}
	if current != chain.ChainID {
		return &domain.ChainError{
			Message: fmt.Sprintf("wallet is on chain %d after adding %s (%d)", current, chain.ChainName, chain.ChainID),
		}
	}

	return nil
}

// ChainID asks the wallet for its current chain (eth_chainId)
func (c *walletConnector) ChainID(ctx context.Context) (int64, error) {
	if c.wallet == nil {
		return 0, domain.ErrWalletUnavailable
	}

	var id hexutil.Uint64
	if err := c.wallet.Request(ctx, "eth_chainId", nil, &id); err != nil {
		return 0, toChainError(err)
	}
	return int64(id), nil //nolint:gosec,G115
}

// Deploy submits the creation bytecode through the wallet and waits for the receipt
func (c *walletConnector) Deploy(ctx context.Context, signer *Signer, abi json.RawMessage, bytecode string) (common.Address, error) {
	if signer == nil {
		return common.Address{}, domain.ErrWalletUnavailable
	}

	registry, err := contract.NewRegistry(abi)
	if err != nil {
		return common.Address{}, domain.NewProtocolError("invalid contract interface", err)
	}
	ctorArgs, err := registry.PackConstructor(nil)
	if err != nil {
		return common.Address{}, domain.NewValidationError(err.Error())
	}

	code, err := hexutil.Decode(NormalizeBytecode(bytecode))
	if err != nil {
		return common.Address{}, domain.NewProtocolError("invalid bytecode", err)
	}

	hash, err := c.sendTransaction(ctx, signer, nil, append(code, ctorArgs...))
	if err != nil {
		return common.Address{}, err
	}
	logger.InfoCtx(ctx, "deployment transaction sent", zap.String("txHash", hash.Hex()))

	receipt, err := c.waitMined(ctx, hash)
	if err != nil {
		return common.Address{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Address{}, &domain.ChainError{Message: fmt.Sprintf("deployment transaction %s reverted", hash.Hex())}
	}
	if receipt.ContractAddress == (common.Address{}) {
		return common.Address{}, &domain.ChainError{Message: "receipt carries no contract address"}
	}

	deployed, err := c.client.CodeAt(ctx, receipt.ContractAddress, nil)
	if err != nil {
		return common.Address{}, toChainError(err)
	}
	if len(deployed) == 0 {
		return common.Address{}, &domain.ChainError{Message: fmt.Sprintf("no contract code at %s", receipt.ContractAddress.Hex())}
	}

	logger.InfoCtx(ctx, "contract deployed",
		zap.String("address", receipt.ContractAddress.Hex()),
		zap.String("txHash", hash.Hex()))

	return receipt.ContractAddress, nil
}

// Bind resolves the interface into a function registry once and returns the contract handle
func (c *walletConnector) Bind(address common.Address, abi json.RawMessage, signer *Signer) (Contract, error) {
	if signer == nil {
		return nil, domain.ErrWalletUnavailable
	}

	registry, err := contract.NewRegistry(abi)
	if err != nil {
		return nil, domain.NewProtocolError("invalid contract interface", err)
	}

	return &boundContract{
		address:   address,
		registry:  registry,
		signer:    signer,
		connector: c,
	}, nil
}

// sendTransaction submits an eth_sendTransaction; the wallet fills nonce, gas and signs
func (c *walletConnector) sendTransaction(ctx context.Context, signer *Signer, to *common.Address, data []byte) (common.Hash, error) {
	tx := map[string]interface{}{
		"from": signer.Address(),
		"data": hexutil.Bytes(data),
	}
	if to != nil {
		tx["to"] = *to
	}

	var hash common.Hash
	if err := c.wallet.Request(ctx, "eth_sendTransaction", []interface{}{tx}, &hash); err != nil {
		return common.Hash{}, toChainError(err)
	}
	return hash, nil
}

// NormalizeBytecode ensures the 0x prefix expected by the wallet
func NormalizeBytecode(bytecode string) string {
	bytecode = strings.TrimSpace(bytecode)
	if strings.HasPrefix(bytecode, "0x") || strings.HasPrefix(bytecode, "0X") {
		return "0x" + bytecode[2:]
	}
	return "0x" + bytecode
}

// toChainError keeps the wallet's error code and message; context errors pass through
func toChainError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var ce *domain.ChainError
	if errors.As(err, &ce) {
		return ce
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &domain.ChainError{Code: rpcErr.ErrorCode(), Message: rpcErr.Error()}
	}
	return &domain.ChainError{Message: err.Error()}
}
