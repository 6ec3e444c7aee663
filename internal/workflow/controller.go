package workflow

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-deployer/internal/compiler"
	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/erc20"
	"github.com/feral-file/ff-token-deployer/internal/gateway"
	"github.com/feral-file/ff-token-deployer/internal/logger"
	"github.com/feral-file/ff-token-deployer/internal/providers/ethereum"
)

// Observer receives every intermediate and final session of an action
type Observer func(Session)

// DeployRequest holds the user-entered token parameters
type DeployRequest struct {
	Name   string
	Symbol string
	Supply string
}

// Controller drives the connect, deploy, select and execute workflow.
// At most one action runs at a time.
type Controller struct {
	connector ethereum.Connector
	compiler  compiler.Compiler
	tokens    gateway.TokenGateway
	chain     domain.ChainConfig
	observer  Observer

	inFlight atomic.Bool
}

// NewController creates a workflow controller. observer may be nil.
func NewController(
	connector ethereum.Connector,
	compiler compiler.Compiler,
	tokens gateway.TokenGateway,
	chain domain.ChainConfig,
	observer Observer,
) *Controller {
	return &Controller{
		connector: connector,
		compiler:  compiler,
		tokens:    tokens,
		chain:     chain,
		observer:  observer,
	}
}

// Connect attaches the wallet, moves it to the target chain and loads the wallet's tokens
func (c *Controller) Connect(ctx context.Context, s Session) (Session, error) {
	if err := c.begin(); err != nil {
		return s, err
	}
	defer c.end()

	signer, err := c.connector.Connect(ctx)
	if err != nil {
		return c.fail(ctx, s, s.State, err)
	}
	ctx = logger.WithWallet(ctx, signer.Address().Hex())
	if err := c.connector.EnsureNetwork(ctx, c.chain); err != nil {
		return c.fail(ctx, s, s.State, err)
	}
	chainID, err := c.connector.ChainID(ctx)
	if err != nil {
		return c.fail(ctx, s, s.State, err)
	}

	next := s.clone()
	next.State = StateIdle
	next.Executing = ""
	next.Signer = signer
	next.Account = signer.Address()
	next.ChainID = chainID
	next.Error = ""
	next.Message = fmt.Sprintf("Connected: %s", shortAddress(signer.Address()))

	if s.Connected() && s.Account != signer.Address() {
		// the binding belongs to the previous account
		next.Active = nil
	}

	tokens, err := c.tokens.ListByWallet(ctx, signer.Address().Hex())
	if err != nil {
		logger.WarnCtx(ctx, "failed to load deployed tokens", zap.Error(err))
		tokens = []domain.DeployedToken{}
	}
	next.Tokens = tokens

	c.notify(next)
	return next, nil
}

// Deploy generates, compiles and deploys a token, records it and binds the session to it.
// Any failing step aborts the rest and leaves the previous binding in place.
func (c *Controller) Deploy(ctx context.Context, s Session, req DeployRequest) (Session, error) {
	if err := c.begin(); err != nil {
		return s, err
	}
	defer c.end()

	if err := requireIdle(s); err != nil {
		return c.fail(ctx, s, s.State, err)
	}
	ctx = logger.WithWallet(ctx, s.Account.Hex())

	supply, err := validateDeployRequest(req)
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	working := s.clone()
	working.State = StateDeploying
	working.Error = ""
	working.Message = MessageCompiling
	c.notify(working)

	source := erc20.Generate(req.Name, req.Symbol, supply)
	artifact, err := c.compiler.Compile(ctx, source, erc20.ContractName(req.Symbol))
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	working.Message = MessageDeploying
	c.notify(working)

	address, err := c.connector.Deploy(ctx, s.Signer, artifact.ABI, artifact.Bytecode)
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	chainID, err := c.connector.ChainID(ctx)
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	record, err := c.tokens.Save(ctx, domain.DeployedTokenInput{
		WalletAddress:   domain.NormalizeWalletAddress(s.Account.Hex()),
		TokenName:       req.Name,
		TokenSymbol:     req.Symbol,
		TokenSupply:     supply.String(),
		ContractAddress: address.Hex(),
		ChainID:         chainID,
	})
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	tokens, err := c.tokens.ListByWallet(ctx, s.Account.Hex())
	if err != nil {
		logger.WarnCtx(ctx, "failed to refresh deployed tokens", zap.Error(err))
		tokens = append(append([]domain.DeployedToken{}, s.Tokens...), *record)
	}

	binding, err := c.bind(address, artifact, s.Signer)
	if err != nil {
		// the contract is deployed and recorded; only the binding is missing
		logger.WarnCtx(ctx, "deployed token could not be bound", zap.String("address", address.Hex()))
		recorded := s.clone()
		recorded.ChainID = chainID
		recorded.Tokens = tokens
		return c.fail(ctx, recorded, StateIdle, err)
	}

	next := s.clone()
	next.State = StateIdle
	next.ChainID = chainID
	next.Tokens = tokens
	next.Active = binding
	next.Error = ""
	next.Message = fmt.Sprintf("Contract deployed at: %s", address.Hex())

	logger.InfoCtx(ctx, "token deployed",
		zap.String("symbol", req.Symbol),
		zap.String("address", address.Hex()),
		zap.Int64("chainID", chainID))

	c.notify(next)
	return next, nil
}

// SelectExisting rebinds the session to a previously deployed token of the wallet.
// The source is regenerated from the stored fields and recompiled; no transaction is sent.
func (c *Controller) SelectExisting(ctx context.Context, s Session, contractAddress string) (Session, error) {
	if err := c.begin(); err != nil {
		return s, err
	}
	defer c.end()

	if err := requireIdle(s); err != nil {
		return c.fail(ctx, s, s.State, err)
	}
	ctx = logger.WithWallet(ctx, s.Account.Hex())

	token, ok := s.FindToken(contractAddress)
	if !ok {
		return c.fail(ctx, s, StateIdle, domain.NewValidationError(fmt.Sprintf("no deployed token at %s", contractAddress)))
	}
	if !common.IsHexAddress(token.ContractAddress) {
		return c.fail(ctx, s, StateIdle, domain.NewProtocolError(fmt.Sprintf("stored contract address %q is invalid", token.ContractAddress), nil))
	}
	supply, err := erc20.ParseSupply(token.TokenSupply)
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	working := s.clone()
	working.State = StateLoading
	working.Error = ""
	working.Message = MessageCompiling
	c.notify(working)

	source := erc20.Generate(token.TokenName, token.TokenSymbol, supply)
	artifact, err := c.compiler.Compile(ctx, source, erc20.ContractName(token.TokenSymbol))
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	address := common.HexToAddress(token.ContractAddress)
	binding, err := c.bind(address, artifact, s.Signer)
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	next := s.clone()
	next.State = StateIdle
	next.Active = binding
	next.Error = ""
	next.Message = fmt.Sprintf("Loaded %s (%s) at %s", token.TokenName, token.TokenSymbol, address.Hex())

	c.notify(next)
	return next, nil
}

// SetInput records the pending value of one function parameter
func (c *Controller) SetInput(s Session, function, param, value string) Session {
	next := s.clone()
	if next.Inputs == nil {
		next.Inputs = make(map[InputKey]string)
	}
	next.Inputs[InputKey{Function: function, Param: param}] = value
	return next
}

// Execute invokes an owner function of the active contract with the pending inputs
// and waits for the transaction to be mined
func (c *Controller) Execute(ctx context.Context, s Session, function string) (Session, error) {
	if err := c.begin(); err != nil {
		return s, err
	}
	defer c.end()

	if err := requireIdle(s); err != nil {
		return c.fail(ctx, s, s.State, err)
	}
	ctx = logger.WithWallet(ctx, s.Account.Hex())

	if s.Active == nil {
		return c.fail(ctx, s, StateIdle, domain.NewValidationError("no contract selected"))
	}
	if !contract.IsOwnerFunction(function) {
		return c.fail(ctx, s, StateIdle, domain.NewValidationError(fmt.Sprintf("%s is not an owner function", function)))
	}
	entry, ok := contract.FindFunction(s.Active.Functions, function)
	if !ok {
		return c.fail(ctx, s, StateIdle, domain.NewValidationError(fmt.Sprintf("%s is not part of the contract interface", function)))
	}

	args := make([]string, len(entry.Inputs))
	for i, p := range entry.Inputs {
		args[i] = s.Input(function, p.Name)
	}

	working := s.clone()
	working.State = StateExecuting
	working.Executing = function
	working.Error = ""
	working.Message = ""
	c.notify(working)

	tx, err := s.Active.Contract.Invoke(ctx, function, args)
	if err != nil {
		return c.fail(ctx, s, StateIdle, err)
	}

	working.LastTxHash = tx.Hash()
	working.Message = fmt.Sprintf("Transaction sent: %s", tx.Hash().Hex())
	c.notify(working)

	if _, err := tx.Wait(ctx); err != nil {
		failed := s.clone()
		failed.LastTxHash = tx.Hash()
		return c.fail(ctx, failed, StateIdle, err)
	}

	next := s.clone()
	next.State = StateIdle
	next.LastTxHash = tx.Hash()
	next.Error = ""
	next.Message = fmt.Sprintf("%s executed successfully!", function)

	logger.InfoCtx(ctx, "owner function executed",
		zap.String("function", function),
		zap.String("contract", s.Active.Address.Hex()),
		zap.String("txHash", tx.Hash().Hex()))

	c.notify(next)
	return next, nil
}

// Call performs a read-only call on the active contract. The session is left unchanged.
func (c *Controller) Call(ctx context.Context, s Session, function string, args []string) ([]string, error) {
	if s.Active == nil {
		return nil, domain.NewValidationError("no contract selected")
	}
	return s.Active.Contract.Call(ctx, function, args)
}

func (c *Controller) bind(address common.Address, artifact *compiler.Artifact, signer *ethereum.Signer) (*Binding, error) {
	entries, err := artifact.Entries()
	if err != nil {
		return nil, domain.NewProtocolError("invalid contract interface", err)
	}

	handle, err := c.connector.Bind(address, artifact.ABI, signer)
	if err != nil {
		return nil, err
	}

	return &Binding{
		Address:   address,
		ABI:       artifact.ABI,
		Functions: contract.OwnerFunctions(entries),
		Contract:  handle,
	}, nil
}

func (c *Controller) begin() error {
	if !c.inFlight.CompareAndSwap(false, true) {
		return domain.ErrOperationInFlight
	}
	return nil
}

func (c *Controller) end() {
	c.inFlight.Store(false)
}

func (c *Controller) notify(s Session) {
	if c.observer != nil {
		c.observer(s)
	}
}

// fail returns base in state with the user-facing message of err
func (c *Controller) fail(ctx context.Context, base Session, state State, err error) (Session, error) {
	logger.WarnCtx(ctx, "workflow action failed", zap.String("state", string(base.State)), zap.Error(err))

	next := base.clone()
	next.State = state
	next.Executing = ""
	next.Message = ""
	next.Error = UserMessage(err)

	c.notify(next)
	return next, err
}

func requireIdle(s Session) error {
	if !s.Connected() {
		return domain.NewValidationError("please connect wallet")
	}
	if s.State != StateIdle {
		return fmt.Errorf("%w: session is %s", domain.ErrOperationInFlight, s.State)
	}
	return nil
}

func validateDeployRequest(req DeployRequest) (*big.Int, error) {
	var missing []string
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Symbol) == "" {
		missing = append(missing, "symbol")
	}
	if strings.TrimSpace(req.Supply) == "" {
		missing = append(missing, "supply")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("please fill all fields: %s", strings.Join(missing, ", ")))
	}
	return erc20.ParseSupply(req.Supply)
}

func shortAddress(a common.Address) string {
	hex := a.Hex()
	return hex[:6] + "..." + hex[len(hex)-4:]
}
