package main

import (
	"io"
	"os"

	"github.com/atlanticdynamic/greeter/internal/config"
	"github.com/urfave/cli/v3"
)

// newApp builds the root command. Running it without a subcommand serves HTTP.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "greeter",
		Version: Version,
		Usage:   "Serve a static greeting over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "TCP port to listen on",
				Aliases: []string{"p"},
				Sources: cli.EnvVars(config.EnvPort),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (trace, debug, info, warn, error)",
				Value:   string(config.LogLevelInfo),
				Sources: cli.EnvVars(config.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format (text, json)",
				Value:   string(config.LogFormatText),
				Sources: cli.EnvVars(config.EnvLogFormat),
			},
		},
		Action: serverCmd.Action,
		Commands: []*cli.Command{
			serverCmd,
			configCmd,
			versionCmd,
		},
	}
}

// outputWriter returns the root command's writer, stdout when unset
func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// errorWriter returns the root command's error writer, stderr when unset. Logs go here.
func errorWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
