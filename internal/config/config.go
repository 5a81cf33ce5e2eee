// Package config resolves the runtime settings of the greeter server.
//
// The listen port comes from the PORT environment variable and falls back to
// DefaultPort when the variable is absent or unusable. Logging settings never
// affect the HTTP surface.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultPort is used when PORT is unset, empty or invalid.
	DefaultPort = 3000

	EnvPort      = "PORT"
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"

	minPort = 1
	maxPort = 65535
)

// Config holds the resolved settings. It is built once at startup and never mutated.
type Config struct {
	Port    int
	Logging LoggingConfig
}

// New resolves a Config from raw string values, as read from flags or the environment.
// The returned Config is always usable: when rawPort cannot be used the port
// falls back to DefaultPort and the parse error is returned alongside it so the
// caller can report it.
func New(rawPort, logLevel, logFormat string) (*Config, error) {
	cfg := &Config{
		Port: DefaultPort,
		Logging: LoggingConfig{
			Format: ParseLogFormat(logFormat),
			Level:  ParseLogLevel(logLevel),
		},
	}

	port, err := ParsePort(rawPort)
	if err != nil {
		return cfg, err
	}
	cfg.Port = port
	return cfg, nil
}

// ParsePort converts a raw PORT value into a TCP port number. An empty value
// yields DefaultPort with no error.
func ParsePort(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultPort, fmt.Errorf("%w: %q is not an integer", ErrInvalidPort, raw)
	}
	if port < minPort || port > maxPort {
		return DefaultPort, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidPort, port, minPort, maxPort)
	}
	return port, nil
}

// ListenAddr returns the address the HTTP listener binds, on all interfaces.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
