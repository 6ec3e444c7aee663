package dto

import (
	"strings"

	apierrors "github.com/feral-file/ff-token-deployer/internal/api/shared/errors"
	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// CreateDeployedTokenRequest represents the request body for recording a deployment
type CreateDeployedTokenRequest struct {
	WalletAddress   string `json:"walletAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenSupply     string `json:"tokenSupply"`
	ContractAddress string `json:"contractAddress"`
	ChainID         int64  `json:"chainId"`
}

// Input converts the request into the domain input
func (r *CreateDeployedTokenRequest) Input() domain.DeployedTokenInput {
	return domain.DeployedTokenInput{
		WalletAddress:   r.WalletAddress,
		TokenName:       r.TokenName,
		TokenSymbol:     r.TokenSymbol,
		TokenSupply:     r.TokenSupply,
		ContractAddress: r.ContractAddress,
		ChainID:         r.ChainID,
	}
}

// Validate validates the request body
func (r *CreateDeployedTokenRequest) Validate() error {
	if missing := r.Input().MissingFields(); len(missing) > 0 {
		return apierrors.NewValidationError("Missing required fields", strings.Join(missing, ", "))
	}
	return nil
}

// CompileRequest represents the request body for compiling a contract source
type CompileRequest struct {
	Source       string `json:"source"`
	ContractName string `json:"contractName"`
}

// Validate validates the request body
func (r *CompileRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Source) == "" {
		missing = append(missing, "source")
	}
	if strings.TrimSpace(r.ContractName) == "" {
		missing = append(missing, "contractName")
	}
	if len(missing) > 0 {
		return apierrors.NewValidationError("Missing required fields", strings.Join(missing, ", "))
	}
	return nil
}
