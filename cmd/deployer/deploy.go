package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/feral-file/ff-token-deployer/internal/erc20"
	"github.com/feral-file/ff-token-deployer/internal/workflow"
)

var deployReq workflow.DeployRequest

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Generate, compile and deploy a new ERC20 token",
	Long: `Generate an ERC20 contract from the given name, symbol and whole-token
supply, compile it through the backend, and deploy it with the connected
wallet. The whole supply (times 10^18) is minted to the deploying account.

Examples:
  deployer deploy --name "Test Token" --symbol TST --supply 1000`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a := newApp(ctx, cfg, cmd.ErrOrStderr())
		defer a.Close()

		if err := a.connect(ctx); err != nil {
			return err
		}

		s, err := a.controller.Deploy(ctx, a.session, deployReq)
		a.session = s
		if err != nil {
			return userError(s, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, s.Message)
		if supply, err := erc20.ParseSupply(deployReq.Supply); err == nil {
			printMinted(out, deployReq.Symbol, supply, s.Account)
		}
		printFunctions(out, s.OwnerFunctions())
		return nil
	},
}

func init() {
	deployCmd.Flags().StringVar(&deployReq.Name, "name", "", "token name")
	deployCmd.Flags().StringVar(&deployReq.Symbol, "symbol", "", "token symbol")
	deployCmd.Flags().StringVar(&deployReq.Supply, "supply", "", "initial supply in whole tokens")
}
