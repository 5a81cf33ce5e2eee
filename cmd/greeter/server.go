package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/greeter/cmd/greeter/server"
	"github.com/urfave/cli/v3"
)

var serverCmd = &cli.Command{
	Name:  "serve",
	Usage: "Start the HTTP server (default when no command is given)",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		if err := server.Run(ctx, logger, outputWriter(cmd), cfg); err != nil {
			return cli.Exit(fmt.Errorf("server failed: %w", err), 1)
		}
		return nil
	},
}
