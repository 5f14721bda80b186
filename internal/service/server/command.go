package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/oshokin/tzalign"
	api "github.com/oshokin/tzalign/internal/api/http"
	"github.com/oshokin/tzalign/internal/config"
	"github.com/oshokin/tzalign/internal/logger"
)

// Options controls the tzalign-server process and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override.
	ListenAddress string
	// DefaultTimezone provides an optional default timezone override.
	DefaultTimezone string
}

const (
	// readHeaderTimeout bounds how long a client may take to send headers.
	readHeaderTimeout = 5 * time.Second
	// shutdownTimeout bounds how long graceful shutdown may drain requests.
	shutdownTimeout = 10 * time.Second
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server stops. Loads configuration first, then applies command line overrides.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "tzalign-server")

	// Load configuration first to get server settings.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Command line options override the settings file.
	if opts.ListenAddress != "" {
		cfg.ListenAddress = opts.ListenAddress
	}

	if opts.DefaultTimezone != "" {
		cfg.DefaultTimezone = opts.DefaultTimezone
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	defaultZone, err := tzalign.ResolveZone(cfg.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("resolve default timezone: %w", err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(cfg.RequestTimeout))
	api.NewHandler(tzalign.DefaultProvider, defaultZone).Register(router)

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	logger.InfoKV(ctx, "Server listening",
		"listen_address", cfg.ListenAddress, "default_timezone", defaultZone.Name())

	// Done channel is closed after Shutdown finishes to ensure we block until
	// in-flight requests drain before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.ErrorKV(ctx, "Shutdown did not finish cleanly", "error", err)
		}

		close(done)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve HTTP: %w", err)
	}

	<-done
	logger.Info(ctx, "HTTP server stopped")

	return nil
}
