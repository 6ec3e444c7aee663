package dto

import (
	"time"

	"github.com/feral-file/ff-token-deployer/internal/store/schema"
)

// DeployedTokenResponse represents one deployment record
type DeployedTokenResponse struct {
	ID              uint64    `json:"id"`
	WalletAddress   string    `json:"walletAddress"`
	TokenName       string    `json:"tokenName"`
	TokenSymbol     string    `json:"tokenSymbol"`
	TokenSupply     string    `json:"tokenSupply"`
	ContractAddress string    `json:"contractAddress"`
	ChainID         int64     `json:"chainId"`
	DeployedAt      time.Time `json:"deployedAt"`
}

// MapDeployedTokenToDTO maps a schema.DeployedToken to DeployedTokenResponse
func MapDeployedTokenToDTO(token *schema.DeployedToken) *DeployedTokenResponse {
	if token == nil {
		return nil
	}

	return &DeployedTokenResponse{
		ID:              token.ID,
		WalletAddress:   token.WalletAddress,
		TokenName:       token.TokenName,
		TokenSymbol:     token.TokenSymbol,
		TokenSupply:     token.TokenSupply,
		ContractAddress: token.ContractAddress,
		ChainID:         token.ChainID,
		DeployedAt:      token.DeployedAt,
	}
}

// MapDeployedTokensToDTO maps a list of records; the result is never nil
func MapDeployedTokensToDTO(tokens []schema.DeployedToken) []DeployedTokenResponse {
	out := make([]DeployedTokenResponse, len(tokens))
	for i := range tokens {
		out[i] = *MapDeployedTokenToDTO(&tokens[i])
	}
	return out
}
