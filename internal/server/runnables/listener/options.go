package listener

import (
	"io"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup("listener.Runner")
		}
	}
}

// WithLogger sets a logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStdout sets where the startup line is written. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.stdout = w
		}
	}
}

// WithTimeouts overrides the HTTP server timeouts. Zero values keep the library defaults.
func WithTimeouts(timeouts TimeoutOptions) Option {
	return func(r *Runner) {
		r.timeouts = timeouts
	}
}

// TimeoutOptions contains timeout configuration for the HTTP server
type TimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

func (t TimeoutOptions) configOptions() []httpserver.ConfigOption {
	options := []httpserver.ConfigOption{}

	if t.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(t.ReadTimeout))
	}
	if t.WriteTimeout > 0 {
		options = append(options, httpserver.WithWriteTimeout(t.WriteTimeout))
	}
	if t.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(t.IdleTimeout))
	}
	if t.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(t.DrainTimeout))
	}

	return options
}
