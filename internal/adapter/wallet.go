package adapter

import (
	"context"

	"github.com/ethereum/go-ethereum/rpc"
)

// WalletProvider is an EIP-1193 style request channel to a wallet that holds the user's keys.
// Errors returned by the wallet implement rpc.Error.
//
//go:generate mockgen -source=wallet.go -destination=../mocks/wallet.go -package=mocks -mock_names=WalletProvider=MockWalletProvider,WalletDialer=MockWalletDialer
type WalletProvider interface {
	// Request sends method with positional params and decodes the result into result
	Request(ctx context.Context, method string, params []interface{}, result interface{}) error

	// Close closes the connection
	Close()
}

// WalletDialer defines an interface for dialing wallet providers
type WalletDialer interface {
	Dial(ctx context.Context, rawurl string) (WalletProvider, error)
}

// RPCWalletProvider implements WalletProvider over a JSON-RPC connection
type RPCWalletProvider struct {
	client *rpc.Client
}

func (w *RPCWalletProvider) Request(ctx context.Context, method string, params []interface{}, result interface{}) error {
	return w.client.CallContext(ctx, result, method, params...)
}

func (w *RPCWalletProvider) Close() {
	w.client.Close()
}

// RealWalletDialer implements WalletDialer using the go-ethereum rpc package
type RealWalletDialer struct{}

// NewWalletDialer creates a new real wallet dialer
func NewWalletDialer() WalletDialer {
	return &RealWalletDialer{}
}

func (d *RealWalletDialer) Dial(ctx context.Context, rawurl string) (WalletProvider, error) {
	client, err := rpc.DialContext(ctx, rawurl)
	if err != nil {
		return nil, err
	}
	return &RPCWalletProvider{client: client}, nil
}
