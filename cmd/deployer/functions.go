package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var functionsCmd = &cobra.Command{
	Use:   "functions <contract>",
	Short: "Load a deployed token and list its owner functions",
	Long: `Select a token previously deployed from the connected wallet. Its source is
regenerated from the stored name, symbol and supply and compiled again to
recover the ABI; no transaction is sent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a := newApp(ctx, cfg, cmd.ErrOrStderr())
		defer a.Close()

		if err := a.selectToken(ctx, args[0]); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, a.session.Message)
		printFunctions(out, a.session.OwnerFunctions())
		return nil
	},
}
