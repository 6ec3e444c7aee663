package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-token-deployer/internal/adapter"
	"github.com/feral-file/ff-token-deployer/internal/domain"
	"github.com/feral-file/ff-token-deployer/internal/erc20"
)

var (
	sourceReq    struct{ name, symbol, supply string }
	sourceOutput string
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Print the contract source that deploy would compile",
	Long: `Generate the ERC20 source for the given name, symbol and supply without
contacting the wallet or the backend. The output is byte-identical to what
deploy compiles for the same inputs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sourceReq.name == "" || sourceReq.symbol == "" || sourceReq.supply == "" {
			return domain.NewValidationError("please fill all fields: name, symbol and supply are required")
		}
		supply, err := erc20.ParseSupply(sourceReq.supply)
		if err != nil {
			return err
		}

		source := erc20.Generate(sourceReq.name, sourceReq.symbol, supply)
		if sourceOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), source)
			return err
		}

		if err := writeSource(adapter.NewFileSystem(), sourceOutput, source); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (contract %s)\n", sourceOutput, erc20.ContractName(sourceReq.symbol))
		return nil
	},
}

func init() {
	sourceCmd.Flags().StringVar(&sourceReq.name, "name", "", "token name")
	sourceCmd.Flags().StringVar(&sourceReq.symbol, "symbol", "", "token symbol")
	sourceCmd.Flags().StringVar(&sourceReq.supply, "supply", "", "initial supply in whole tokens")
	sourceCmd.Flags().StringVarP(&sourceOutput, "output", "o", "", "write the source to a file instead of stdout")
}

func writeSource(fs adapter.FileSystem, path, source string) error {
	if err := fs.WriteFile(path, []byte(source)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
