package ethereum

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// Contract is a deployed contract bound to a signer
type Contract interface {
	// Address returns the contract address
	Address() common.Address

	// Invoke submits a state-changing call of function name with positional arguments
	Invoke(ctx context.Context, name string, args []string) (PendingTransaction, error)

	// Call performs a read-only call and returns the outputs rendered as strings
	Call(ctx context.Context, name string, args []string) ([]string, error)
}

// PendingTransaction is a submitted, possibly unmined, transaction
type PendingTransaction interface {
	// Hash returns the transaction hash
	Hash() common.Hash

	// Wait blocks until the transaction is mined or ctx is done
	Wait(ctx context.Context) (*types.Receipt, error)
}

type boundContract struct {
	address   common.Address
	registry  *contract.Registry
	signer    *Signer
	connector *walletConnector
}

func (b *boundContract) Address() common.Address {
	return b.address
}

func (b *boundContract) Invoke(ctx context.Context, name string, args []string) (PendingTransaction, error) {
	inv, data, err := b.pack(name, args)
	if err != nil {
		return nil, err
	}
	if inv.ReadOnly() {
		return nil, domain.NewValidationError(fmt.Sprintf("%s is read-only; use call", name))
	}

	hash, err := b.connector.sendTransaction(ctx, b.signer, &b.address, data)
	if err != nil {
		return nil, err
	}

	return &pendingTransaction{hash: hash, connector: b.connector}, nil
}

func (b *boundContract) Call(ctx context.Context, name string, args []string) ([]string, error) {
	inv, data, err := b.pack(name, args)
	if err != nil {
		return nil, err
	}
	if !inv.ReadOnly() {
		return nil, domain.NewValidationError(fmt.Sprintf("%s changes state; send it as a transaction", name))
	}

	out, err := b.connector.client.CallContract(ctx, ethereum.CallMsg{
		From: b.signer.Address(),
		To:   &b.address,
		Data: data,
	}, nil)
	if err != nil {
		return nil, toChainError(err)
	}

	values, err := inv.Unpack(out)
	if err != nil {
		return nil, domain.NewProtocolError(fmt.Sprintf("unexpected result from %s", name), err)
	}
	return values, nil
}

// pack resolves name in the registry and encodes args; both failures are caller input errors
func (b *boundContract) pack(name string, args []string) (contract.Invocation, []byte, error) {
	inv, err := b.registry.Lookup(name)
	if err != nil {
		return contract.Invocation{}, nil, domain.NewValidationError(err.Error())
	}
	data, err := inv.Pack(args)
	if err != nil {
		return contract.Invocation{}, nil, domain.NewValidationError(err.Error())
	}
	return inv, data, nil
}

type pendingTransaction struct {
	hash      common.Hash
	connector *walletConnector
}

func (p *pendingTransaction) Hash() common.Hash {
	return p.hash
}

func (p *pendingTransaction) Wait(ctx context.Context) (*types.Receipt, error) {
	receipt, err := p.connector.waitMined(ctx, p.hash)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, &domain.ChainError{Message: fmt.Sprintf("transaction %s reverted", p.hash.Hex())}
	}
	return receipt, nil
}
