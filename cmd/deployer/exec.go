package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var execArgs []string

var execCmd = &cobra.Command{
	Use:   "exec <contract> <function>",
	Short: "Execute an owner function of a deployed token",
	Long: `Send a transaction calling one of the owner functions of a token deployed
from the connected wallet, and wait until it is mined. Arguments are given
by parameter name; missing ones are sent as empty strings.

Examples:
  deployer exec 0xContract mint --arg amount=1000000000000000000
  deployer exec 0xContract allowSellWithAmount --arg user=0xHolder --arg amount=500
  deployer exec 0xContract pause`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a := newApp(ctx, cfg, cmd.ErrOrStderr())
		defer a.Close()

		if err := a.selectToken(ctx, args[0]); err != nil {
			return err
		}

		function := args[1]
		for _, kv := range execArgs {
			name, value, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid --arg %q, expected name=value", kv)
			}
			a.session = a.controller.SetInput(a.session, function, name, value)
		}

		s, err := a.controller.Execute(ctx, a.session, function)
		a.session = s
		if err != nil {
			return userError(s, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), s.Message)
		return nil
	},
}

func init() {
	execCmd.Flags().StringArrayVar(&execArgs, "arg", nil, "function argument as name=value (repeatable)")
}
