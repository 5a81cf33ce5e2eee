package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/atlanticdynamic/greeter/internal/logging"
	"github.com/urfave/cli/v3"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Print the resolved configuration",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		_, err = fmt.Fprintln(outputWriter(cmd), cfg)
		return err
	},
}

// loadConfig resolves the configuration from flags and their environment sources,
// then installs the default logger writing to the root command's error writer.
// An unusable PORT is reported as a warning and replaced by the default port.
func loadConfig(cmd *cli.Command) (*config.Config, *slog.Logger, error) {
	rawPort := cmd.String("port")
	cfg, portErr := config.New(rawPort, cmd.String("log-level"), cmd.String("log-format"))
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.SetupLogger(
		cfg.Logging.Format.String(),
		cfg.Logging.Level.String(),
		errorWriter(cmd),
	)

	if portErr != nil {
		logger.Warn("Ignoring unusable port, falling back to default",
			"value", rawPort,
			"default", config.DefaultPort,
			"error", portErr)
	}

	return cfg, logger, nil
}
