package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <contract> <function> [args...]",
	Short: "Call a read-only function of a deployed token",
	Long: `Call a view or pure function (name, symbol, totalSupply, balanceOf, owner,
paused, ...) of a token deployed from the connected wallet.

Examples:
  deployer call 0xContract totalSupply
  deployer call 0xContract balanceOf 0xHolder`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a := newApp(ctx, cfg, cmd.ErrOrStderr())
		defer a.Close()

		if err := a.selectToken(ctx, args[0]); err != nil {
			return err
		}

		results, err := a.controller.Call(ctx, a.session, args[1], args[2:])
		if err != nil {
			return fmt.Errorf("contract call failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(results) == 1 {
			fmt.Fprintln(out, results[0])
			return nil
		}
		for i, r := range results {
			fmt.Fprintf(out, "[%d] %s\n", i, r)
		}
		return nil
	},
}
