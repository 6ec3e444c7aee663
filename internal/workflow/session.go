package workflow

import (
	"encoding/json"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/providers/ethereum"
)

// State is the workflow state of a session
type State string

const (
	StateDisconnected State = "disconnected"
	StateIdle         State = "idle"
	StateDeploying    State = "deploying"
	StateLoading      State = "loading"
	StateExecuting    State = "executing"
)

// Binding is the contract the session currently interacts with
type Binding struct {
	Address   common.Address
	ABI       json.RawMessage
	Functions []contract.ABIEntry
	Contract  ethereum.Contract
}

// InputKey addresses one pending function input
type InputKey struct {
	Function string
	Param    string
}

// Session is the transient state of one user session.
// Controller actions never mutate a session they receive; they return a new one.
type Session struct {
	State      State
	Executing  string
	Account    common.Address
	Signer     *ethereum.Signer
	ChainID    int64
	Active     *Binding
	Tokens     []domain.DeployedToken
	Inputs     map[InputKey]string
	Message    string
	Error      string
	LastTxHash common.Hash
}

// NewSession returns a disconnected session
func NewSession() Session {
	return Session{State: StateDisconnected}
}

// Connected reports whether a wallet account is attached
func (s Session) Connected() bool {
	return s.Signer != nil
}

// Input returns the pending input of param for function, or the empty string
func (s Session) Input(function, param string) string {
	return s.Inputs[InputKey{Function: function, Param: param}]
}

// OwnerFunctions returns the owner functions of the active binding
func (s Session) OwnerFunctions() []contract.ABIEntry {
	if s.Active == nil {
		return nil
	}
	return s.Active.Functions
}

// FindToken returns the record of contractAddress in the session's token list
func (s Session) FindToken(contractAddress string) (domain.DeployedToken, bool) {
	for _, t := range s.Tokens {
		if sameAddress(t.ContractAddress, contractAddress) {
			return t, true
		}
	}
	return domain.DeployedToken{}, false
}

// clone copies the session so that maps and slices are not shared with the original
func (s Session) clone() Session {
	next := s
	next.Tokens = slices.Clone(s.Tokens)
	if s.Inputs != nil {
		next.Inputs = make(map[InputKey]string, len(s.Inputs))
		for k, v := range s.Inputs {
			next.Inputs[k] = v
		}
	}
	return next
}

func sameAddress(a, b string) bool {
	return domain.NormalizeWalletAddress(a) == domain.NormalizeWalletAddress(b)
}
