// Package listener provides the HTTP listener runnable: one TCP socket serving
// a fixed set of routes, driven by go-supervisor.
package listener

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
	_ supervisor.Readiness = (*Runner)(nil)
)

var (
	ErrEmptyAddress = errors.New("listen address is empty")
	ErrNoRoutes     = errors.New("at least one route is required")
	ErrListen       = errors.New("failed to bind listen address")
)

// serverImplementation is an interface for abstracting the underlying HTTP server sub-runnable implementation
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// Runner owns a single HTTP listener. It does not implement supervisor.Reloadable:
// the address and routes are fixed for the process lifetime.
type Runner struct {
	address string
	port    string
	routes  []httpserver.Route
	server  serverImplementation

	logger   *slog.Logger
	stdout   io.Writer
	timeouts TimeoutOptions

	mutex     sync.Mutex
	started   bool
	announced bool
}

// NewRunner creates a listener bound to address (host:port, host may be empty) serving routes
func NewRunner(address string, routes []httpserver.Route, opts ...Option) (*Runner, error) {
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, fmt.Errorf("invalid listen address %q: %w", address, err)
	}

	r := &Runner{
		address: address,
		port:    port,
		routes:  routes,
		logger:  slog.Default().WithGroup("listener.Runner"),
		stdout:  os.Stdout,
	}

	for _, opt := range opts {
		opt(r)
	}

	if err := r.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}

	return r, nil
}

// initializeRunner creates the underlying httpserver.Runner
func (r *Runner) initializeRunner() error {
	configCallback := func() (*httpserver.Config, error) {
		r.mutex.Lock()
		routes := make([]httpserver.Route, len(r.routes))
		copy(routes, r.routes)
		timeouts := r.timeouts
		r.mutex.Unlock()

		config, err := httpserver.NewConfig(r.address, routes, timeouts.configOptions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(configCallback),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	r.server = runner
	return nil
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("Listener[%s]", r.address)
}

// Addr returns the address this runner listens on
func (r *Runner) Addr() string {
	return r.address
}

// Port returns the port part of the listen address
func (r *Runner) Port() string {
	return r.port
}

// Run binds the listener and serves until ctx is cancelled or Stop is called.
// The startup line is written once the server reports it is running.
func (r *Runner) Run(ctx context.Context) error {
	// Fail fast on a taken port: the library only reports bind errors after
	// its readiness check, which a squatting process would satisfy.
	if err := checkAvailable(r.address); err != nil {
		r.logger.Error("Failed to start HTTP server", "address", r.address, "error", err)
		return err
	}

	r.logger.Debug("Starting HTTP server", "address", r.address, "routes", len(r.routes))

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	// subscribe before booting so no transition is missed
	go r.announceWhenRunning(watchCtx, r.server.GetStateChan(watchCtx))

	r.mutex.Lock()
	r.started = true
	r.mutex.Unlock()

	if err := r.server.Run(ctx); err != nil {
		return fmt.Errorf("HTTP server on %s failed: %w", r.address, err)
	}
	return nil
}

// Stop stops the HTTP server. The underlying server's Stop waits for its Run
// to have started, so it is skipped when Run never got that far.
func (r *Runner) Stop() {
	r.mutex.Lock()
	started := r.started
	r.mutex.Unlock()

	if !started {
		r.logger.Debug("HTTP server never started, nothing to stop", "address", r.address)
		return
	}

	r.logger.Debug("Stopping HTTP server", "address", r.address)
	r.server.Stop()
}

// announceWhenRunning writes the startup line the first time the server reaches the running state
func (r *Runner) announceWhenRunning(ctx context.Context, stateCh <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-stateCh:
			if !ok {
				return
			}
			// the channel may coalesce transitions, so confirm against the current state
			if state == StatusRunning || r.server.GetState() == StatusRunning {
				r.announce()
				return
			}
		}
	}
}

func (r *Runner) announce() {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.announced {
		return
	}
	r.announced = true

	r.logger.Debug("HTTP server is accepting connections", "address", r.address)
	if _, err := fmt.Fprintf(r.stdout, "Server is running on port %s\n", r.port); err != nil {
		r.logger.Warn("Failed to write startup line", "error", err)
	}
}

// checkAvailable opens and immediately closes a socket on address
func checkAvailable(address string) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrListen, address, err)
	}
	return ln.Close()
}
