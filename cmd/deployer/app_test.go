package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-deployer/internal/config"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/mocks"
	"github.com/feral-file/ff-token-deployer/internal/workflow"
)

func testConfig() *config.DeployerConfig {
	return &config.DeployerConfig{
		Wallet:  config.WalletConfig{RPCURL: "http://127.0.0.1:1248", PollInterval: time.Millisecond},
		Backend: config.BackendConfig{URL: "http://127.0.0.1:1", Timeout: time.Second},
		Chain:   domain.MonadTestnet,
	}
}

func TestApp_WalletDialFailureReportsUnavailableWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	walletDialer := mocks.NewMockWalletDialer(ctrl)
	ethDialer := mocks.NewMockEthClientDialer(ctrl)
	walletDialer.EXPECT().Dial(gomock.Any(), "http://127.0.0.1:1248").Return(nil, errors.New("connection refused"))

	a := newAppWithDialers(context.Background(), testConfig(), &noopWriter{}, walletDialer, ethDialer)
	defer a.Close()

	err := a.connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Wallet is not available. Please install or unlock your wallet.", err.Error())
	assert.Equal(t, workflow.StateDisconnected, a.session.State)
}

func TestApp_CloseReleasesConnections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletProvider(ctrl)
	client := mocks.NewMockEthClient(ctrl)
	walletDialer := mocks.NewMockWalletDialer(ctrl)
	ethDialer := mocks.NewMockEthClientDialer(ctrl)

	walletDialer.EXPECT().Dial(gomock.Any(), "http://127.0.0.1:1248").Return(wallet, nil)
	ethDialer.EXPECT().Dial(gomock.Any(), "http://127.0.0.1:1248").Return(client, nil)
	client.EXPECT().Close()
	wallet.EXPECT().Close()

	a := newAppWithDialers(context.Background(), testConfig(), &noopWriter{}, walletDialer, ethDialer)
	a.Close()
}

func TestApp_ConnectRejectedByWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallet := mocks.NewMockWalletProvider(ctrl)
	client := mocks.NewMockEthClient(ctrl)
	walletDialer := mocks.NewMockWalletDialer(ctrl)
	ethDialer := mocks.NewMockEthClientDialer(ctrl)

	walletDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(wallet, nil)
	ethDialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(client, nil)
	wallet.EXPECT().Request(gomock.Any(), "eth_requestAccounts", gomock.Any(), gomock.Any()).
		Return(&rpcError{code: 4001, msg: "User rejected the request."})

	a := newAppWithDialers(context.Background(), testConfig(), &noopWriter{}, walletDialer, ethDialer)

	err := a.connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, "User rejected the request.", err.Error())
	assert.False(t, a.session.Connected())
}

type noopWriter struct{}

func (noopWriter) Write(p []byte) (int, error) { return len(p), nil }

type rpcError struct {
	code int
	msg  string
}

func (e *rpcError) Error() string  { return e.msg }
func (e *rpcError) ErrorCode() int { return e.code }
