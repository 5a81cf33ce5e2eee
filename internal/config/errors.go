package config

import "errors"

var (
	ErrInvalidPort      = errors.New("invalid port")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)
