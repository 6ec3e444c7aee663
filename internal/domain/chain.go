package domain

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// NativeCurrency describes the gas token of a chain as wallets expect it
type NativeCurrency struct {
	Name     string `json:"name" mapstructure:"name"`
	Symbol   string `json:"symbol" mapstructure:"symbol"`
	Decimals int    `json:"decimals" mapstructure:"decimals"`
}

// ChainConfig is the target network definition handed to the wallet
type ChainConfig struct {
	ChainID           int64          `mapstructure:"chain_id"`
	ChainName         string         `mapstructure:"chain_name"`
	RPCURLs           []string       `mapstructure:"rpc_urls"`
	NativeCurrency    NativeCurrency `mapstructure:"native_currency"`
	BlockExplorerURLs []string       `mapstructure:"block_explorer_urls"`
}

// HexChainID returns the chain id in the 0x-prefixed form used by wallet_* methods
func (c ChainConfig) HexChainID() string {
	return hexutil.EncodeUint64(uint64(c.ChainID)) //nolint:gosec,G115
}

// AddChainParams is the wallet_addEthereumChain parameter object (EIP-3085)
type AddChainParams struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	RPCURLs           []string       `json:"rpcUrls"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls,omitempty"`
}

// AddChainParams returns the EIP-3085 representation of the chain
func (c ChainConfig) AddChainParams() AddChainParams {
	return AddChainParams{
		ChainID:           c.HexChainID(),
		ChainName:         c.ChainName,
		RPCURLs:           c.RPCURLs,
		NativeCurrency:    c.NativeCurrency,
		BlockExplorerURLs: c.BlockExplorerURLs,
	}
}

// MonadTestnet is the default deployment target
var MonadTestnet = ChainConfig{
	ChainID:   10143,
	ChainName: "Monad Testnet",
	RPCURLs:   []string{"https://testnet-rpc.monad.xyz/"},
	NativeCurrency: NativeCurrency{
		Name:     "MON",
		Symbol:   "MON",
		Decimals: 18,
	},
	BlockExplorerURLs: []string{"https://testnet.monadexplorer.com/"},
}
