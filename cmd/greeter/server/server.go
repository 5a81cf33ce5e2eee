package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/server/apps/greeting"
	"github.com/atlanticdynamic/greeter/internal/server/runnables/listener"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Server timeouts. The greeting is a constant, so reads and writes never need long.
var serverTimeouts = listener.TimeoutOptions{
	ReadTimeout:  15 * time.Second,
	WriteTimeout: 15 * time.Second,
	IdleTimeout:  60 * time.Second,
	DrainTimeout: 5 * time.Second,
}

// NewListener builds the listener runnable serving the greeting on cfg's address.
// The startup line is written to stdout.
func NewListener(logger *slog.Logger, stdout io.Writer, cfg *config.Config) (*listener.Runner, error) {
	app := greeting.New(greeting.WithLogger(logger.WithGroup("greeting.App")))
	route, err := app.Route()
	if err != nil {
		return nil, fmt.Errorf("failed to create greeting route: %w", err)
	}

	httpRunner, err := listener.NewRunner(
		cfg.ListenAddr(),
		[]httpserver.Route{*route},
		listener.WithLogHandler(logger.Handler()),
		listener.WithStdout(stdout),
		listener.WithTimeouts(serverTimeouts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP listener runner: %w", err)
	}
	return httpRunner, nil
}

// Run starts the greeter HTTP listener for cfg and blocks until ctx is cancelled,
// a termination signal arrives, or the listener fails. A failure to bind the
// port is returned as an error.
func Run(ctx context.Context, logger *slog.Logger, stdout io.Writer, cfg *config.Config) error {
	logHandler := logger.Handler()

	httpRunner, err := NewListener(logger, stdout, cfg)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(httpRunner),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
