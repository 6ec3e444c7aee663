package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-token-deployer/internal/config"
	"github.com/feral-file/ff-token-deployer/internal/logger"
)

var (
	configFile string
	envPath    string
	verbose    bool

	cfg *config.DeployerConfig
)

var rootCmd = &cobra.Command{
	Use:   "deployer",
	Short: "Deploy and manage ERC20 tokens through your wallet",
	Long: `deployer generates an ERC20 contract from a name, symbol and supply,
compiles it through the token deployer API, and deploys it with the account
held by your wallet (any wallet exposing a JSON-RPC endpoint, e.g. Frame).

Deployed tokens are recorded per wallet so that their owner functions
(mint, burn, pause, ownership transfer, ...) can be executed later.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.LoadDeployerConfig(configFile, envPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		return logger.Initialize(logger.Config{
			Debug:           cfg.Debug || verbose,
			Console:         true,
			SentryDSN:       cfg.SentryDSN,
			BreadcrumbLevel: zapcore.InfoLevel,
			Tags: map[string]string{
				"service": "token-deployer-cli",
			},
		})
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Flush(2 * time.Second)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "path to environment files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		connectCmd,
		deployCmd,
		tokensCmd,
		functionsCmd,
		execCmd,
		callCmd,
		sourceCmd,
	)
}

// signalContext returns a context canceled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
