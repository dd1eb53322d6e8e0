package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/AgentOS/vfs/internal/infrastructure/server"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var host, port string
	var noRateLimit bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the namespace over HTTP",
		Long: `Start the HTTP API: /services, /services/execute, /namespace/snapshot,
/health and /metrics. The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  # Serve with defaults (file store under /tmp/ai-os-storage/vfs)
  vfs serve

  # Serve from a badger database on a custom port
  vfs serve --store badger --store-path /var/lib/vfs --port 9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("host") {
				cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if noRateLimit {
				cfg.RateLimit.Enabled = false
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}

			srv, err := server.NewServer(cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := srv.Close(); err != nil {
					logger.Error("Shutdown error", zap.Error(err))
				}
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return err
			}
			logger.Info("Server stopped gracefully")
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (env HOST)")
	cmd.Flags().StringVar(&port, "port", "", "listen port (env PORT)")
	cmd.Flags().BoolVar(&noRateLimit, "no-rate-limit", false, "disable per-IP rate limiting")
	return cmd
}
