package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/tzalign/internal/config"
	"github.com/oshokin/tzalign/internal/service/server"
	"github.com/oshokin/tzalign/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// defaultTimezone overrides the default timezone from settings.
	defaultTimezone string

	// rootCmd represents the base command for running the HTTP server.
	rootCmd = &cobra.Command{
		Use:   "tzalign-server [listen-address]",
		Short: "Run the timezone alignment HTTP server.",
		Long: `Starts the HTTP server exposing timezone normalization and calendar
alignment over a JSON API.

The server listens on the address from the settings file unless a listen
address is provided as argument (e.g., :9090, 0.0.0.0:8080). Naive date-times
in requests are attached to the request's timezone or the server's default.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:      configPath,
				ListenAddress:   listenAddress,
				DefaultTimezone: defaultTimezone,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the tzalign-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&defaultTimezone, "timezone", "t", "", "default timezone for naive date-times")
}
