package config

import (
	"fmt"

	"github.com/atlanticdynamic/greeter/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Greeter Config"))

	format := cfg.Logging.Format
	if format == LogFormatUnspecified {
		format = LogFormatText
	}
	level := cfg.Logging.Level
	if level == LogLevelUnspecified {
		level = LogLevelInfo
	}

	t.Child(
		fancy.BranchNode("Logging", "").
			Child(fmt.Sprintf("Format: %s", format)).
			Child(fmt.Sprintf("Level: %s", level)),
	)
	t.Child(
		fancy.BranchNode("Listener", fancy.ListenerText(cfg.ListenAddr())).
			Child(fmt.Sprintf("Route: GET / -> %s", fancy.AppText("greeting"))),
	)

	return t.String()
}
