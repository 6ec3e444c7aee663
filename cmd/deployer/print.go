package main

import (
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/ethereum/go-ethereum/common"

	"github.com/feral-file/ff-token-deployer/internal/contract"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/erc20"
	"github.com/feral-file/ff-token-deployer/internal/workflow"
)

func printSession(w io.Writer, s workflow.Session) {
	fmt.Fprintf(w, "Account:  %s\n", s.Account.Hex())
	fmt.Fprintf(w, "Chain ID: %d\n", s.ChainID)
	if s.Active != nil {
		fmt.Fprintf(w, "Contract: %s\n", s.Active.Address.Hex())
	}
}

func printTokens(w io.Writer, tokens []domain.DeployedToken) {
	if len(tokens) == 0 {
		fmt.Fprintln(w, "No deployed tokens")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSYMBOL\tSUPPLY\tCONTRACT\tCHAIN\tDEPLOYED")
	for _, t := range tokens {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
			t.TokenName, t.TokenSymbol, t.TokenSupply, t.ContractAddress, t.ChainID,
			t.DeployedAt.Format("2006-01-02 15:04:05"))
	}
	_ = tw.Flush()
}

// printMinted shows the whole-token supply next to the on-chain amount in base units
func printMinted(w io.Writer, symbol string, supply *big.Int, owner common.Address) {
	fmt.Fprintf(w, "Minted %s %s (%s base units) to %s\n", supply, symbol, erc20.ScaledSupply(supply), owner.Hex())
}

func printFunctions(w io.Writer, functions []contract.ABIEntry) {
	fmt.Fprintln(w, "Owner functions:")
	for _, fn := range functions {
		fmt.Fprintf(w, "  %s\n", signature(fn))
	}
}

// signature renders fn as name(type name, ...)
func signature(fn contract.ABIEntry) string {
	params := make([]string, 0, len(fn.Inputs))
	for _, in := range fn.Inputs {
		params = append(params, strings.TrimSpace(in.Type+" "+in.Name))
	}
	return fmt.Sprintf("%s(%s)", fn.Name, strings.Join(params, ", "))
}
