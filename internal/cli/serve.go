package cli

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/stackline/internal/api"
	"github.com/mcoot/stackline/internal/factory"
	"github.com/mcoot/stackline/internal/sse"
)

func newServeCmd() *cobra.Command {
	serverCfg := api.DefaultServerConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve boards to renderers over HTTP",
		Long: `Run the read-only HTTP API and event stream over the selected storage.
With --storage redis, placements made by other stackline processes on the same
Redis are streamed to watchers as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelInfo}))
			if cfg.Verbose {
				logger = cfg.Logger(cmd.ErrOrStderr())
			}

			if cfg.Storage == factory.StorageTypeMemory {
				logger.Warn("serving from memory storage; games placed by other stackline processes are not visible, use --storage redis")
			}

			app, err := openAppWithLogger(logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				if err := app.RunRelay(ctx, nil); err != nil {
					logger.Error("event relay stopped", slog.String("error", err.Error()))
				}
			}()
			go app.HubManager.RunCleanup(ctx, sse.CleanupInterval)

			router := api.NewRouter(api.RouterConfig{
				Logger:         logger,
				GameController: app.GameController,
				HubManager:     app.HubManager,
			})
			server := api.NewServer(router, serverCfg, logger)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&serverCfg.Host, "host", serverCfg.Host, "Listen host")
	cmd.Flags().IntVar(&serverCfg.Port, "port", serverCfg.Port, "Listen port")

	return cmd
}
