package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/stackline/internal/factory"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "stackline",
		Short: "Gravity-stacked 3D N-in-a-row boards",
		Long: `stackline drops pieces into the columns of a 3D board and reports
the first run of win-len same-side pieces along any of the 13 lines through a cell.

Game commands work directly on the selected storage. Use --storage redis to keep
boards between invocations and share them with a running server. The watch and
health commands talk to the server's HTTP API instead.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: memory, redis (env: STACKLINE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: STACKLINE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: STACKLINE_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for generated IDs and bot moves (0 picks one at random)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	for _, sub := range newGameCmds() {
		rootCmd.AddCommand(sub)
	}
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// openApp wires the application against the configured storage
func openApp(cmd *cobra.Command) (*factory.App, error) {
	return openAppWithLogger(cfg.Logger(cmd.ErrOrStderr()))
}

func openAppWithLogger(logger *slog.Logger) (*factory.App, error) {
	return factory.New(cfg.FactoryConfig(logger))
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
