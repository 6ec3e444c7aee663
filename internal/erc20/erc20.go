package erc20

import (
	_ "embed"
	"math/big"
	"strings"
	"text/template"

	"github.com/feral-file/ff-token-deployer/internal/domain"
)

// Decimals is the fixed decimal scaling of every generated token
const Decimals = 18

//go:embed token.sol.tmpl
var tokenSource string

var tokenTemplate = template.Must(template.New("token.sol").Option("missingkey=error").Parse(tokenSource))

// OwnerFunctionNames is the fixed set of owner-gated operations the generated contract exposes,
// in declaration order
var OwnerFunctionNames = []string{
	"pause",
	"unpause",
	"blacklist",
	"unblacklist",
	"addDexPair",
	"removeDexPair",
	"allowSellWithAmount",
	"disallowSell",
	"burn",
	"mint",
	"transferOwnership",
}

type templateData struct {
	Name   string
	Symbol string
	Supply string
}

// Generate renders the token contract source. The output depends only on its arguments.
// Callers validate supply with ParseSupply first.
func Generate(name, symbol string, supply *big.Int) string {
	var sb strings.Builder
	// the template is static and every key is provided; Execute cannot fail on a strings.Builder
	_ = tokenTemplate.Execute(&sb, templateData{
		Name:   name,
		Symbol: symbol,
		Supply: supply.String(),
	})
	return sb.String()
}

// ContractName returns the compile unit name of the contract generated for symbol
func ContractName(symbol string) string {
	return symbol + "Token"
}

// ParseSupply validates a user-entered supply: a positive base-10 integer
func ParseSupply(raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.NewValidationError("token supply is required")
	}

	supply, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, domain.NewValidationError("invalid supply amount")
	}
	if supply.Sign() <= 0 {
		return nil, domain.NewValidationError("invalid supply amount")
	}

	return supply, nil
}

// ScaledSupply returns supply * 10^Decimals, the on-chain total supply
func ScaledSupply(supply *big.Int) *big.Int {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)
	return new(big.Int).Mul(supply, scale)
}
