package domain

import (
	"strings"
	"time"
)

// DeployedToken is the persisted record of one contract deployment.
// Records are immutable once created.
type DeployedToken struct {
	ID              uint64    `json:"id"`
	WalletAddress   string    `json:"walletAddress"`
	TokenName       string    `json:"tokenName"`
	TokenSymbol     string    `json:"tokenSymbol"`
	TokenSupply     string    `json:"tokenSupply"`
	ContractAddress string    `json:"contractAddress"`
	ChainID         int64     `json:"chainId"`
	DeployedAt      time.Time `json:"deployedAt"`
}

// DeployedTokenInput holds the caller-supplied fields of a new deployment record
type DeployedTokenInput struct {
	WalletAddress   string `json:"walletAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenSupply     string `json:"tokenSupply"`
	ContractAddress string `json:"contractAddress"`
	ChainID         int64  `json:"chainId"`
}

// MissingFields returns the JSON names of the required fields that are empty
func (in DeployedTokenInput) MissingFields() []string {
	var missing []string
	if in.WalletAddress == "" {
		missing = append(missing, "walletAddress")
	}
	if in.TokenName == "" {
		missing = append(missing, "tokenName")
	}
	if in.TokenSymbol == "" {
		missing = append(missing, "tokenSymbol")
	}
	if in.TokenSupply == "" {
		missing = append(missing, "tokenSupply")
	}
	if in.ContractAddress == "" {
		missing = append(missing, "contractAddress")
	}
	if in.ChainID == 0 {
		missing = append(missing, "chainId")
	}
	return missing
}

// NormalizeWalletAddress returns the canonical (lowercase) form used for storage and lookup
func NormalizeWalletAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
