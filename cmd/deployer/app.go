package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	"github.com/feral-file/ff-token-deployer/internal/compiler"
	"github.com/feral-file/ff-token-deployer/internal/config"
	"github.com/feral-file/ff-token-deployer/internal/gateway"
	"github.com/feral-file/ff-token-deployer/internal/logger"
	"github.com/feral-file/ff-token-deployer/internal/providers/ethereum"
	"github.com/feral-file/ff-token-deployer/internal/workflow"
)

// app holds the collaborators of one CLI invocation
type app struct {
	controller *workflow.Controller
	session    workflow.Session
	wallet     adapter.WalletProvider
	client     adapter.EthClient
}

// newApp dials the wallet and wires the workflow controller against the backend.
// A wallet that cannot be dialed is not an error here; Connect reports it.
func newApp(ctx context.Context, cfg *config.DeployerConfig, progress io.Writer) *app {
	return newAppWithDialers(ctx, cfg, progress, adapter.NewWalletDialer(), adapter.NewEthClientDialer())
}

func newAppWithDialers(ctx context.Context, cfg *config.DeployerConfig, progress io.Writer, walletDialer adapter.WalletDialer, ethDialer adapter.EthClientDialer) *app {
	a := &app{session: workflow.NewSession()}

	var wallet adapter.WalletProvider
	var client adapter.EthClient
	if w, err := walletDialer.Dial(ctx, cfg.Wallet.RPCURL); err != nil {
		logger.WarnCtx(ctx, "failed to dial wallet", zap.String("url", cfg.Wallet.RPCURL), zap.Error(err))
	} else {
		wallet = w
		a.wallet = w
		// Chain reads go through the same endpoint so that they observe the wallet's network
		if c, err := ethDialer.Dial(ctx, cfg.Wallet.RPCURL); err != nil {
			logger.WarnCtx(ctx, "failed to dial chain client", zap.String("url", cfg.Wallet.RPCURL), zap.Error(err))
		} else {
			client = c
			a.client = c
		}
	}

	httpClient := adapter.NewHTTPClient(cfg.Backend.Timeout)
	var solidity compiler.Compiler = gateway.NewCompileGateway(httpClient, cfg.Backend.URL)
	tokens := gateway.NewTokenGateway(httpClient, cfg.Backend.URL)
	connector := ethereum.NewConnector(wallet, client, cfg.Wallet.PollInterval)

	a.controller = workflow.NewController(connector, solidity, tokens, cfg.Chain, progressObserver(progress))
	return a
}

// Close releases the wallet and chain connections
func (a *app) Close() {
	if a.client != nil {
		a.client.Close()
	}
	if a.wallet != nil {
		a.wallet.Close()
	}
}

// connect attaches the wallet account and loads its tokens
func (a *app) connect(ctx context.Context) error {
	s, err := a.controller.Connect(ctx, a.session)
	a.session = s
	if err != nil {
		return userError(s, err)
	}
	return nil
}

// selectToken connects and binds the stored token at contractAddress
func (a *app) selectToken(ctx context.Context, contractAddress string) error {
	if err := a.connect(ctx); err != nil {
		return err
	}
	s, err := a.controller.SelectExisting(ctx, a.session, contractAddress)
	a.session = s
	if err != nil {
		return userError(s, err)
	}
	return nil
}

// userError returns the session's user-facing message as the command error
func userError(s workflow.Session, err error) error {
	if s.Error != "" {
		return errors.New(s.Error)
	}
	return errors.New(workflow.UserMessage(err))
}

// progressObserver prints each new status message of an action in progress.
// Final sessions are reported by the command itself.
func progressObserver(w io.Writer) workflow.Observer {
	last := ""
	return func(s workflow.Session) {
		if s.State == workflow.StateIdle || s.Message == "" || s.Message == last {
			return
		}
		last = s.Message
		fmt.Fprintln(w, s.Message)
	}
}
