package greeting

import "log/slog"

type Option func(*App)

// WithLogger sets a logger for the app.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}
