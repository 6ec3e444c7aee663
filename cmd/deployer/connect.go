package main

import (
	"github.com/spf13/cobra"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect the wallet and switch it to the target network",
	Long: `Request account access from the wallet, switch it to the configured
chain (adding the chain when the wallet does not know it yet), and list the
tokens previously deployed from the account.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext(cmd.Context())
		defer cancel()

		a := newApp(ctx, cfg, cmd.ErrOrStderr())
		defer a.Close()

		if err := a.connect(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		printSession(out, a.session)
		printTokens(out, a.session.Tokens)
		return nil
	},
}
