package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scheerer/lightsd/daemon"
)

func newServeCmd(flags *globalFlags) *cobra.Command {
	var addr string
	var metricsEnabled bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the light arbitration daemon",
		Long: `Serves the lights HTTP API, exports Prometheus metrics and, when LIFX_GROUP ` +
			`is set, mirrors the notification LED onto a LIFX group.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			if changed(cmd, "addr") {
				cfg.HTTPAddr = addr
			}
			if changed(cmd, "metrics") {
				cfg.MetricsEnabled = metricsEnabled
			}

			logger.With(zap.Any("config", cfg)).Info("Starting lightsd")
			logger.Info("Press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return daemon.Run(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "HTTP listen address [HTTP_ADDR]")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics", true, "serve Prometheus metrics on /metrics [METRICS_ENABLED]")
	return cmd
}
