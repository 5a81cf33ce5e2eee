// Package greeting implements the only app served by greeter: a fixed text
// response on the root path.
package greeting

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	// Message is the body returned for GET /.
	Message = "Hello, Everyone! This is a practice Dockerized web app...."

	// Path is the only path answered with Message.
	Path = "/"

	defaultID = "greeting"
)

// App answers GET / with Message and every other request with 404.
type App struct {
	id     string
	logger *slog.Logger
}

// New creates a greeting app.
func New(opts ...Option) *App {
	a := &App{
		id:     defaultID,
		logger: slog.Default().WithGroup("greeting.App"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

// HandleHTTP writes the greeting. Routing has already happened.
func (a *App) HandleHTTP(
	ctx context.Context,
	w http.ResponseWriter,
	r *http.Request,
) error {
	if _, err := io.WriteString(w, Message); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// ServeHTTP matches GET on exactly Path; anything else gets the stock 404.
// The query string is ignored.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet || r.URL.Path != Path {
		http.NotFound(w, r)
		return
	}

	if err := a.HandleHTTP(r.Context(), w, r); err != nil {
		a.logger.Error("Error handling request",
			"path", r.URL.Path,
			"appID", a.id,
			"error", err)
	}
}

// Route wraps the app in a go-supervisor route mounted at Path. The mux
// treats Path as a catch-all, so ServeHTTP performs the exact match.
func (a *App) Route() (*httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc(a.id, Path, a.ServeHTTP)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP route for %s: %w", a.id, err)
	}
	return route, nil
}
