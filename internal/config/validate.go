package config

import (
	"errors"
	"fmt"
)

// Validate checks the resolved configuration, reporting every problem found
func (c *Config) Validate() error {
	errz := []error{}

	if c.Port < minPort || c.Port > maxPort {
		errz = append(errz, fmt.Errorf("%w: %d", ErrInvalidPort, c.Port))
	}

	if !c.Logging.Format.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %s", ErrInvalidLogFormat, c.Logging.Format))
	}

	if !c.Logging.Level.IsValid() {
		errz = append(errz, fmt.Errorf("%w: %s", ErrInvalidLogLevel, c.Logging.Level))
	}

	return errors.Join(errz...)
}
